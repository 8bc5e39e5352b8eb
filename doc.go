// seehuhn.de/go/pal - a library for reading and writing JASC-PAL palette files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pal reads and writes palette files in the JASC-PAL text format.
//
// A JASC-PAL file consists of a fixed three-line header followed by one
// line per color:
//
//	JASC-PAL
//	0100
//	2
//	255 0 0
//	0 255 0
//
// The second line holds the format version and the third line the number of
// colors.  When reading, both values are ignored; the palette consists of
// all color lines found in the file.  When writing, the version is always
// "0100", the count is the current palette size, and all lines are
// terminated by CRLF.
//
// Use [Read] or [ParseString] to load a palette:
//
//	p, err := pal.Read(r, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, c := range p.All() {
//	    fmt.Println(i, c)
//	}
//
// A [Palette] holds pointers to its colors.  Colors obtained from a palette
// are live: modifying them modifies the palette.
//
// Channel values are not restricted to the range 0, ..., 255.  Only the
// conversion to [image/color] values checks the range.
package pal
