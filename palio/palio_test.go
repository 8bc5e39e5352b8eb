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

package palio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/unicode"
	"seehuhn.de/go/pal"
)

const testPalette = "JASC-PAL\r\n0100\r\n2\r\n255 0 0\r\n0 255 0\r\n"

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()

	rc, err := NewReader(r)
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	err = rc.Close()
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestPlainPassThrough(t *testing.T) {
	for _, in := range []string{"", "J", testPalette, "\x1f"} {
		got := readAll(t, strings.NewReader(in))
		if got != in {
			t.Errorf("wrong data %q != %q", got, in)
		}
	}
}

func TestCompressionRoundTrip(t *testing.T) {
	for _, c := range []Compression{None, Gzip, Zstd} {
		t.Run(c.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			w, err := NewWriter(buf, c)
			if err != nil {
				t.Fatal(err)
			}
			_, err = io.WriteString(w, testPalette)
			if err != nil {
				t.Fatal(err)
			}
			err = w.Close()
			if err != nil {
				t.Fatal(err)
			}

			if got := Detect(buf.Bytes()); got != c {
				t.Errorf("detected %s, expected %s", got, c)
			}

			got := readAll(t, bytes.NewReader(buf.Bytes()))
			if got != testPalette {
				t.Errorf("wrong data %q", got)
			}
		})
	}
}

func TestByteOrderMark(t *testing.T) {
	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(testPalette)
	if err != nil {
		t.Fatal(err)
	}
	utf16be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().String(testPalette)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]string{
		"utf8":    "\ufeff" + testPalette,
		"utf16le": utf16le,
		"utf16be": utf16be,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			rc, err := NewReader(strings.NewReader(in))
			if err != nil {
				t.Fatal(err)
			}
			p, err := pal.Read(rc, nil)
			if err != nil {
				t.Fatal(err)
			}
			want := []pal.Color{{R: 255}, {G: 255}}
			var got []pal.Color
			for _, c := range p.All() {
				got = append(got, *c)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("wrong colors (-want +got):\n%s", diff)
			}
		})
	}
}

type closeCounter struct {
	io.Reader
	n int
}

func (c *closeCounter) Close() error {
	c.n++
	return nil
}

func TestCloseUnderlying(t *testing.T) {
	buf := &bytes.Buffer{}
	w, _ := NewWriter(buf, Gzip)
	io.WriteString(w, testPalette)
	w.Close()

	src := &closeCounter{Reader: buf}
	rc, err := NewReader(src)
	if err != nil {
		t.Fatal(err)
	}
	_, err = pal.Read(rc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if src.n != 1 {
		t.Errorf("underlying reader closed %d times", src.n)
	}
}

func TestCorruptGzip(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte{0x1f, 0x8b, 0x00}))
	if err == nil {
		t.Error("expected error for truncated gzip header")
	}
}

func TestParseCompression(t *testing.T) {
	for _, c := range []Compression{None, Gzip, Zstd} {
		got, err := ParseCompression(c.String())
		if err != nil {
			t.Error(err)
			continue
		}
		if got != c {
			t.Errorf("wrong compression %s != %s", got, c)
		}
	}

	_, err := ParseCompression("lzw")
	if err == nil {
		t.Error("expected error for unknown compression")
	}
	_, err = NewWriter(io.Discard, Compression(17))
	if err == nil || errors.Is(err, io.EOF) {
		t.Errorf("unexpected result %v for invalid compression", err)
	}
}
