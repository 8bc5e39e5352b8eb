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
	"fmt"
	stdcolor "image/color"
)

// Color is a single palette entry.
//
// The channel values are not range checked.  Values outside 0, ..., 255
// can be stored, read and written, but cannot be converted to
// [stdcolor.NRGBA].
type Color struct {
	R, G, B int
}

// Color implements the [stdcolor.Color] interface.
var _ stdcolor.Color = Color{}

// SetRed sets the red channel and returns c.
func (c *Color) SetRed(r int) *Color {
	c.R = r
	return c
}

// SetGreen sets the green channel and returns c.
func (c *Color) SetGreen(g int) *Color {
	c.G = g
	return c
}

// SetBlue sets the blue channel and returns c.
func (c *Color) SetBlue(b int) *Color {
	c.B = b
	return c
}

// Set sets all three channels and returns c.
func (c *Color) Set(r, g, b int) *Color {
	c.R, c.G, c.B = r, g, b
	return c
}

// SetColor copies the channels of other into c and returns c.
func (c *Color) SetColor(other Color) *Color {
	*c = other
	return c
}

// SetStd copies the channels of an [image/color] value into c and returns c.
// The value is first converted to non-premultiplied 8-bit RGB; the alpha
// channel is discarded.
func (c *Color) SetStd(col stdcolor.Color) *Color {
	n := stdcolor.NRGBAModel.Convert(col).(stdcolor.NRGBA)
	return c.Set(int(n.R), int(n.G), int(n.B))
}

// NRGBA converts c to an opaque [stdcolor.NRGBA] value.
// If any channel is outside the range 0, ..., 255, a [*RangeError] is
// returned.
func (c Color) NRGBA() (stdcolor.NRGBA, error) {
	if !inByteRange(c.R) || !inByteRange(c.G) || !inByteRange(c.B) {
		return stdcolor.NRGBA{}, &RangeError{Color: c}
	}
	return stdcolor.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xFF}, nil
}

// RGBA implements the [stdcolor.Color] interface.
// Channel values outside 0, ..., 255 are clamped.  The result is opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clampByte(c.R))
	r |= r << 8
	g = uint32(clampByte(c.G))
	g |= g << 8
	b = uint32(clampByte(c.B))
	b |= b << 8
	return r, g, b, 0xFFFF
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

func inByteRange(x int) bool {
	return x >= 0 && x <= 255
}

func clampByte(x int) uint8 {
	switch {
	case x < 0:
		return 0
	case x > 255:
		return 255
	default:
		return uint8(x)
	}
}
