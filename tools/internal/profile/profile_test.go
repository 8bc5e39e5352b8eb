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

package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStartStop(t *testing.T) {
	dir := t.TempDir()
	mem := filepath.Join(dir, "mem.prof")

	stop, err := Start("", mem)
	if err != nil {
		t.Fatal(err)
	}
	err = stop()
	if err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(mem)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Errorf("%s is empty", mem)
	}
}

func TestDisabled(t *testing.T) {
	stop, err := Start("", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := stop(); err != nil {
		t.Error(err)
	}
}

func TestBadPath(t *testing.T) {
	_, err := Start(filepath.Join(t.TempDir(), "missing", "cpu.prof"), "")
	if err == nil {
		t.Error("expected error for unwritable profile path")
	}
}
