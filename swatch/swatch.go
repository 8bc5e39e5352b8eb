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

// Package swatch renders palettes as images.
//
// Each palette color is shown as a square cell.  Cells are laid out left to
// right and top to bottom, in palette order.
package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"seehuhn.de/go/pal"
)

// ErrEmpty is returned when an image is requested for a palette without
// colors.
var ErrEmpty = errors.New("swatch: empty palette")

// Options control the layout of a swatch image.
type Options struct {
	// Columns is the number of cells per row.  The default is 16.
	Columns int

	// Size is the width and height of a cell in pixels.  The default is 16.
	Size int
}

// MaxDim is the largest width or height, in pixels, of a swatch image.
const MaxDim = 1 << 15

var defaultOptions = &Options{
	Columns: 16,
	Size:    16,
}

// Image returns an image showing the colors of p.
//
// Unused cells in the last row are transparent.  Layouts where the image
// would be wider or taller than [MaxDim] pixels are rejected.  All channel
// values must be in the range 0, ..., 255, otherwise a [*pal.RangeError] is
// returned.
func Image(p *pal.Palette, opt *Options) (*image.NRGBA, error) {
	if opt == nil {
		opt = defaultOptions
	}
	columns := opt.Columns
	if columns == 0 {
		columns = defaultOptions.Columns
	}
	size := opt.Size
	if size == 0 {
		size = defaultOptions.Size
	}
	if columns < 0 || size < 0 {
		return nil, fmt.Errorf("swatch: invalid layout %dx%d", columns, size)
	}

	colors, err := p.Std()
	if err != nil {
		return nil, err
	}
	n := len(colors)
	if n == 0 {
		return nil, ErrEmpty
	}
	columns = min(columns, n)
	rows := (n + columns - 1) / columns
	if size > MaxDim/columns || size > MaxDim/rows {
		return nil, fmt.Errorf("swatch: image for %d colors at size %d exceeds %d pixels",
			n, size, MaxDim)
	}

	// one pixel per cell, then scale up
	cells := image.NewNRGBA(image.Rect(0, 0, columns, rows))
	for i, c := range colors {
		cells.Set(i%columns, i/columns, c)
	}

	img := image.NewNRGBA(image.Rect(0, 0, columns*size, rows*size))
	draw.NearestNeighbor.Scale(img, img.Bounds(), cells, cells.Bounds(), draw.Src, nil)
	return img, nil
}

// Format is an image file format.
type Format int

// These are the supported image formats.
const (
	PNG Format = iota
	BMP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case BMP:
		return "BMP"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromName chooses an image format based on the extension of a file
// name.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	}
	return 0, fmt.Errorf("swatch: unsupported image file %q", name)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("swatch: unsupported format %s", format)
	}
}
