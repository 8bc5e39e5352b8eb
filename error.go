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
	"errors"
	"strconv"
)

// Errors used as the Err field of a [MalformedFileError].
var (
	ErrHeader      = errors.New("header is not provided")
	ErrVersion     = errors.New("version is not provided")
	ErrColorCount  = errors.New("color count is not provided")
	ErrColorFormat = errors.New("invalid color format")
)

// MalformedFileError indicates that the input could not be parsed as a
// JASC-PAL file.
type MalformedFileError struct {
	Line int // 1-based line number, or 0 if unknown
	Err  error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (line " + strconv.Itoa(err.Line) + ")"
	}
	return "not a valid JASC-PAL file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// IndexError is returned when a palette is accessed at a position which does
// not hold a color.
type IndexError struct {
	Index int
	Len   int
}

func (err *IndexError) Error() string {
	return "palette index " + strconv.Itoa(err.Index) +
		" out of range [0:" + strconv.Itoa(err.Len) + "]"
}

// RangeError indicates that a color cannot be represented with 8 bits per
// channel.
type RangeError struct {
	Color Color
}

func (err *RangeError) Error() string {
	return "color " + err.Color.String() + " has channels outside [0, 255]"
}
