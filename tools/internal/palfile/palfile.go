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

// Package palfile opens the palette files named on the command line of the
// tools.  The name "-" stands for standard input or standard output.
package palfile

import (
	"io"
	"os"

	"seehuhn.de/go/pal"
	"seehuhn.de/go/pal/palio"
)

// Load reads a palette from the named file.  Compressed files and files
// with a byte order mark are accepted, see [palio.NewReader].
func Load(fname string) (*pal.Palette, error) {
	var src io.Reader = os.Stdin
	if fname != "-" {
		fd, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		src = fd
	}
	return Decode(src)
}

// Decode reads a palette from r and closes r, if it implements [io.Closer].
func Decode(r io.Reader) (*pal.Palette, error) {
	rc, err := palio.NewReader(r)
	if err != nil {
		return nil, err
	}
	return pal.Read(rc, nil)
}

// Create opens the named file for writing.  For "-", the returned writer
// writes to standard output and closing it leaves standard output open.
func Create(fname string) (io.WriteCloser, error) {
	if fname == "-" {
		return palio.NewWriter(os.Stdout, palio.None)
	}
	return os.Create(fname)
}
