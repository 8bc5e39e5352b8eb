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
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/pal/tools/internal/buildinfo"
	"seehuhn.de/go/pal/tools/internal/palfile"
	"seehuhn.de/go/pal/tools/internal/profile"
)

var (
	quiet      = flag.Bool("q", false, "only print a summary line per file")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pal-info \u2014 show the contents of JASC-PAL palette files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pal-info"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pal-info [options] <file.pal>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file.pal   palette files, optionally gzip or zstd compressed;\n")
		fmt.Fprintf(os.Stderr, "             use - to read from standard input\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pal-info default.pal\n")
		fmt.Fprintf(os.Stderr, "  pal-info -q *.pal *.pal.gz\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := stop(); err == nil {
			err = stopErr
		}
	}()

	layout := &listing{columns: 1}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		layout.swatches = true
		if width, _, err := term.GetSize(fd); err == nil {
			layout.columns = max(1, width/cellWidth)
		}
	}

	for _, fname := range flag.Args() {
		p, err := palfile.Load(fname)
		if err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}
		fmt.Printf("%s: %d colors, fingerprint %016x\n", fname, p.Len(), p.Fingerprint())
		if !*quiet {
			layout.write(os.Stdout, p)
		}
	}
	return nil
}
