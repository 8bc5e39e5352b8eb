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
	"bytes"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pal"
	"seehuhn.de/go/pal/palio"
)

func TestConvertText(t *testing.T) {
	p := pal.New(&pal.Color{R: 1, G: 2, B: 3}, &pal.Color{R: 4, G: 5, B: 6})

	for _, comp := range []palio.Compression{palio.None, palio.Gzip, palio.Zstd} {
		t.Run(comp.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			err := convert(buf, "out.pal", p, comp)
			if err != nil {
				t.Fatal(err)
			}

			r, err := palio.NewReader(buf)
			if err != nil {
				t.Fatal(err)
			}
			p2, err := pal.Read(r, nil)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(p.FormatString(), p2.FormatString()); diff != "" {
				t.Errorf("round trip failed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertImage(t *testing.T) {
	p := pal.New(&pal.Color{R: 255}, &pal.Color{B: 255})

	buf := &bytes.Buffer{}
	err := convert(buf, "swatch.PNG", p, palio.None)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 2*16 || b.Dy() != 16 {
		t.Errorf("wrong image size %v", b)
	}
}
