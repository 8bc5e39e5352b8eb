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

// Package palio prepares byte streams for reading and writing palette files.
//
// [NewReader] undoes gzip or zstd compression and normalizes the text
// encoding, so that files written by other tools can be passed to
// [seehuhn.de/go/pal.Read].  [NewWriter] optionally compresses the output.
package palio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Compression identifies a compression format.
type Compression int

// These are the supported compression formats.
const (
	None Compression = iota
	Gzip
	Zstd
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// ParseCompression converts a compression name, as returned by
// [Compression.String], back to a Compression value.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "", "none":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zstd", "zst":
		return Zstd, nil
	}
	return None, fmt.Errorf("unknown compression %q", name)
}

// Detect determines the compression format from the first bytes of a
// stream.
func Detect(prefix []byte) Compression {
	switch {
	case bytes.HasPrefix(prefix, gzipMagic):
		return Gzip
	case bytes.HasPrefix(prefix, zstdMagic):
		return Zstd
	default:
		return None
	}
}

// NewReader returns a reader for the palette text contained in r.
//
// Compressed input is decompressed.  The text is then checked for a byte
// order mark: a UTF-8 BOM is removed, and UTF-16 text is converted to
// UTF-8.  Input without BOM is passed through unchanged.
//
// Closing the returned reader releases the decompressor and closes r, if r
// implements [io.Closer].
func NewReader(r io.Reader) (io.ReadCloser, error) {
	res := &readCloser{}
	if c, ok := r.(io.Closer); ok {
		res.closers = append(res.closers, c.Close)
	}

	br := bufio.NewReader(r)
	prefix, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		res.Close()
		return nil, err
	}

	var src io.Reader = br
	switch Detect(prefix) {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			res.Close()
			return nil, err
		}
		res.closers = append(res.closers, zr.Close)
		src = zr
	case Zstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			res.Close()
			return nil, err
		}
		rc := zr.IOReadCloser()
		res.closers = append(res.closers, rc.Close)
		src = rc
	}

	res.Reader = transform.NewReader(src, unicode.BOMOverride(transform.Nop))
	return res, nil
}

type readCloser struct {
	io.Reader
	closers []func() error
}

// Close closes the decompressor first and the underlying reader last.
func (r *readCloser) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}
	r.closers = nil
	return errors.Join(errs...)
}

// NewWriter returns a writer which compresses data using c before writing
// it to w.  The returned writer must be closed to flush all data.  Closing
// it does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
		if err != nil {
			return nil, err
		}
		return zw, nil
	case Zstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		return zw, nil
	default:
		return nil, fmt.Errorf("unsupported compression %s", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
