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
	stdcolor "image/color"
	"iter"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/slices"
)

// Palette is an ordered list of colors.
//
// The zero value is an empty palette, ready to use.  A Palette is not safe
// for concurrent use.
type Palette struct {
	colors []*Color
}

// New returns a palette holding the given colors, in order.
// Nil entries are skipped.
func New(colors ...*Color) *Palette {
	p := &Palette{colors: make([]*Color, 0, len(colors))}
	for _, c := range colors {
		p.Add(c)
	}
	return p
}

// FromStd returns a new palette with the colors of an [image/color] palette.
func FromStd(p stdcolor.Palette) *Palette {
	res := &Palette{colors: make([]*Color, len(p))}
	for i, c := range p {
		res.colors[i] = new(Color).SetStd(c)
	}
	return res
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}

// At returns the color at position i.
// The returned pointer refers to the palette entry, so that changes to the
// color are visible through the palette.
func (p *Palette) At(i int) (*Color, error) {
	if i < 0 || i >= len(p.colors) {
		return nil, &IndexError{Index: i, Len: len(p.colors)}
	}
	return p.colors[i], nil
}

// Colors returns the colors of the palette.
// The slice is a copy and is not affected by later calls to Add or Remove,
// but the colors it points to are shared with the palette.
func (p *Palette) Colors() []*Color {
	return slices.Clone(p.colors)
}

// All iterates over the colors in palette order.
func (p *Palette) All() iter.Seq2[int, *Color] {
	return func(yield func(int, *Color) bool) {
		for i := 0; i < len(p.colors); i++ {
			if !yield(i, p.colors[i]) {
				return
			}
		}
	}
}

// Add appends c to the palette and returns p.
// The palette stores c itself, not a copy.  If c is nil, p is unchanged.
func (p *Palette) Add(c *Color) *Palette {
	if c != nil {
		p.colors = append(p.colors, c)
	}
	return p
}

// RemoveAt removes the color at position i.
func (p *Palette) RemoveAt(i int) error {
	if i < 0 || i >= len(p.colors) {
		return &IndexError{Index: i, Len: len(p.colors)}
	}
	p.colors = slices.Delete(p.colors, i, i+1)
	return nil
}

// Remove removes the first occurrence of c from the palette and returns p.
// Colors are compared by identity, not by value.  If c is not part of the
// palette, p is unchanged.
func (p *Palette) Remove(c *Color) *Palette {
	if i := slices.Index(p.colors, c); i >= 0 {
		p.colors = slices.Delete(p.colors, i, i+1)
	}
	return p
}

// Clear removes all colors from the palette and returns p.
func (p *Palette) Clear() *Palette {
	clear(p.colors)
	p.colors = p.colors[:0]
	return p
}

// Std converts the palette to an [image/color] palette.
// If a color has channels outside 0, ..., 255, a [*RangeError] is returned.
func (p *Palette) Std() (stdcolor.Palette, error) {
	res := make(stdcolor.Palette, len(p.colors))
	for i, c := range p.colors {
		n, err := c.NRGBA()
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

// Fingerprint returns a 64-bit hash of the palette contents.
// Palettes with the same colors in the same order have the same
// fingerprint.
func (p *Palette) Fingerprint() uint64 {
	h := xxhash.New()
	p.WriteTo(h)
	return h.Sum64()
}

func (p *Palette) String() string {
	b := &strings.Builder{}
	b.WriteString("Palette[count=")
	b.WriteString(strconv.Itoa(len(p.colors)))
	b.WriteString(", colors=[")
	for i, c := range p.colors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteString("]]")
	return b.String()
}
