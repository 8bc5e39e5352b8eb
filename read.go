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
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Magic is the first line of every JASC-PAL file.
const Magic = "JASC-PAL"

// maxLineLength limits the length of a single input line.
const maxLineLength = 1 << 20

// Read reads a JASC-PAL file from r.
//
// If target is nil, a new palette is allocated.  Otherwise the colors of
// target are replaced by the colors read from r, and target is returned.
// On error, nil is returned and target is left unchanged.
//
// Format errors are reported as [*MalformedFileError].  Numbers which
// cannot be parsed give a [*MalformedFileError] wrapping a
// [*strconv.NumError].  Errors from r are returned as they are.
//
// Lines longer than 1 MiB are rejected with a [*MalformedFileError]
// wrapping [bufio.ErrTooLong].
//
// If r implements [io.Closer], it is closed before Read returns.
func Read(r io.Reader, target *Palette) (*Palette, error) {
	colors, err := readColors(r)
	if c, ok := r.(io.Closer); ok {
		closeErr := c.Close()
		if err == nil {
			err = closeErr
		}
	}
	if err != nil {
		return nil, err
	}

	if target == nil {
		target = &Palette{}
	}
	target.Clear()
	target.colors = append(target.colors, colors...)
	return target, nil
}

// ParseString parses a JASC-PAL file held in a string.
// See [Read] for the meaning of target and for error handling.
func ParseString(s string, target *Palette) (*Palette, error) {
	return Read(strings.NewReader(s), target)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (p *Palette) UnmarshalText(data []byte) error {
	_, err := Read(bytes.NewReader(data), p)
	return err
}

func readColors(r io.Reader) ([]*Color, error) {
	lr := newLineReader(r)

	header, err := lr.require(ErrHeader)
	if err != nil {
		return nil, err
	}
	if header != Magic {
		return nil, &MalformedFileError{Line: lr.line, Err: ErrHeader}
	}
	if _, err := lr.require(ErrVersion); err != nil {
		return nil, err
	}
	// The declared number of colors is not used.
	if _, err := lr.require(ErrColorCount); err != nil {
		return nil, err
	}

	var colors []*Color
	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		c, err := parseColor(line)
		if err != nil {
			return nil, &MalformedFileError{Line: lr.line, Err: err}
		}
		colors = append(colors, c)
	}
	if err := lr.err(); err != nil {
		return nil, err
	}
	return colors, nil
}

// parseColor parses a line of the form "r g b".
func parseColor(line string) (*Color, error) {
	fields := splitSpaces(line)
	if len(fields) != 3 {
		return nil, ErrColorFormat
	}
	var val [3]int
	for i, f := range fields {
		x, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, err
		}
		val[i] = int(x)
	}
	return &Color{R: val[0], G: val[1], B: val[2]}, nil
}

// splitSpaces splits line at every single space character.  Empty fields
// at the end of the line are dropped, all other fields are kept.
func splitSpaces(line string) []string {
	fields := strings.Split(line, " ")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

type lineReader struct {
	s    *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineLength)
	s.Split(scanLines)
	return &lineReader{s: s}
}

func (lr *lineReader) next() (string, bool) {
	if !lr.s.Scan() {
		return "", false
	}
	lr.line++
	return lr.s.Text(), true
}

// require reads a header line.  If the input ends early, a
// MalformedFileError with the given reason is returned.
func (lr *lineReader) require(missing error) (string, error) {
	line, ok := lr.next()
	if ok {
		return line, nil
	}
	if err := lr.err(); err != nil {
		return "", err
	}
	return "", &MalformedFileError{Line: lr.line + 1, Err: missing}
}

// err returns the error which stopped the scanner, if any.  Over-long lines
// are reported as format errors, all other errors are returned unchanged.
func (lr *lineReader) err() error {
	err := lr.s.Err()
	if err == bufio.ErrTooLong {
		return &MalformedFileError{Line: lr.line + 1, Err: err}
	}
	return err
}

// scanLines is a [bufio.SplitFunc] which accepts "\n", "\r\n" and "\r" as
// line terminators.  A final line without terminator is returned as well.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// need one more byte to decide between "\r" and "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
