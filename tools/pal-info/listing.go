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

package main

import (
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/pal"
)

// cellWidth is the width of one color entry in terminal output.
const cellWidth = 24

// listing prints the colors of a palette, one entry per color.
type listing struct {
	// swatches enables a 24-bit color block in front of each entry.
	swatches bool

	// columns is the number of entries per output line.
	columns int
}

func (l *listing) write(w io.Writer, p *pal.Palette) {
	line := &strings.Builder{}
	for i, c := range p.All() {
		entry := fmt.Sprintf("%3d: %d %d %d", i, c.R, c.G, c.B)
		if l.swatches {
			r, g, b, _ := c.RGBA()
			fmt.Fprintf(line, "\x1b[48;2;%d;%d;%dm  \x1b[0m ", r>>8, g>>8, b>>8)
		}
		line.WriteString(entry)

		if (i+1)%l.columns == 0 || i == p.Len()-1 {
			fmt.Fprintln(w, line.String())
			line.Reset()
		} else if pad := cellWidth - len(entry) - 3; pad > 0 {
			line.WriteString(strings.Repeat(" ", pad))
		} else {
			line.WriteString(" ")
		}
	}
}
