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

package pal

import (
	"io"
	"strconv"
)

// Version is the version string written to the second line of a file.
const Version = "0100"

// WriteTo writes the palette in JASC-PAL format to w.
// This implements the [io.WriterTo] interface.
func (p *Palette) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.appendText(nil))
	return int64(n), err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p *Palette) MarshalText() ([]byte, error) {
	return p.appendText(nil), nil
}

// FormatString returns the palette in JASC-PAL format.
func (p *Palette) FormatString() string {
	return string(p.appendText(nil))
}

func (p *Palette) appendText(buf []byte) []byte {
	buf = append(buf, Magic+"\r\n"+Version+"\r\n"...)
	buf = strconv.AppendInt(buf, int64(len(p.colors)), 10)
	buf = append(buf, "\r\n"...)
	for _, c := range p.colors {
		buf = strconv.AppendInt(buf, int64(c.R), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(c.G), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(c.B), 10)
		buf = append(buf, "\r\n"...)
	}
	return buf
}
