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
	"io"
	"os"

	"seehuhn.de/go/pal"
	"seehuhn.de/go/pal/palio"
	"seehuhn.de/go/pal/swatch"
	"seehuhn.de/go/pal/tools/internal/buildinfo"
	"seehuhn.de/go/pal/tools/internal/palfile"
	"seehuhn.de/go/pal/tools/internal/profile"
)

var (
	compressArg = flag.String("z", "none", "compress the output (`none`, gzip or zstd)")
	columnsArg  = flag.Int("columns", 16, "number of swatches per row in image output")
	sizeArg     = flag.Int("size", 16, "swatch size in pixels for image output")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile  = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pal-convert \u2014 rewrite or render a JASC-PAL palette\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pal-convert"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pal-convert [options] <in> <out>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  in    palette file, optionally compressed, or - for standard input\n")
		fmt.Fprintf(os.Stderr, "  out   output file, or - for standard output; names ending in\n")
		fmt.Fprintf(os.Stderr, "        .png or .bmp produce a swatch image\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pal-convert old.pal clean.pal\n")
		fmt.Fprintf(os.Stderr, "  pal-convert -z gzip game.pal game.pal.gz\n")
		fmt.Fprintf(os.Stderr, "  pal-convert -columns 8 -size 32 game.pal game.png\n")
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(inName, outName string) (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := stop(); err == nil {
			err = stopErr
		}
	}()

	comp, err := palio.ParseCompression(*compressArg)
	if err != nil {
		return err
	}

	p, err := palfile.Load(inName)
	if err != nil {
		return fmt.Errorf("%s: %w", inName, err)
	}

	out, err := palfile.Create(outName)
	if err != nil {
		return err
	}

	err = convert(out, outName, p, comp)
	closeErr := out.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", outName, err)
	}
	return closeErr
}

// convert writes p to w.  If name has an image file extension, a swatch
// image is written, otherwise the palette text using compression comp.
func convert(w io.Writer, name string, p *pal.Palette, comp palio.Compression) error {
	if format, err := swatch.FormatFromName(name); err == nil {
		img, err := swatch.Image(p, &swatch.Options{Columns: *columnsArg, Size: *sizeArg})
		if err != nil {
			return err
		}
		return swatch.Encode(w, img, format)
	}

	zw, err := palio.NewWriter(w, comp)
	if err != nil {
		return err
	}
	_, err = p.WriteTo(zw)
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
