// seehuhn.de/go/icongen - procedural app icon generator
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

// Package icongen generates the CleanLoop launcher and splash screen
// icons.  A house pictogram is drawn from a fixed table of proportions
// and written as PNG files, and optionally as PDF vector masters.
package icongen

import (
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/icongen/icon"
)

// DefaultDir is the output directory used when Options.Dir is empty.
const DefaultDir = "assets/icon"

// Options controls a generation run.
type Options struct {
	// Dir is the output directory.  It is created if needed.
	Dir string

	// PDF enables an additional vector version of every asset.
	PDF bool

	// Variants lists the assets to write.  If empty, the app icon,
	// the adaptive icon foreground and the splash icon are written.
	Variants []icon.Variant
}

// Result describes one file written by Generate.
type Result struct {
	Name   string // variant name
	Path   string
	Width  int
	Height int
}

// Generate renders all variants and writes them to opts.Dir.
// The run stops at the first error.  Results are returned for all files
// written before the error occurred.
func Generate(opts Options) ([]Result, error) {
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	variants := opts.Variants
	if len(variants) == 0 {
		variants = icon.Variants()
	}
	for _, v := range variants {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var res []Result
	for _, v := range variants {
		scene := icon.Build(v)

		fname := filepath.Join(dir, v.FileName())
		img := icon.Paint(scene)
		if err := icon.WritePNG(fname, img); err != nil {
			return res, fmt.Errorf("%s: %w", v.Name, err)
		}
		b := img.Bounds()
		res = append(res, Result{Name: v.Name, Path: fname, Width: b.Dx(), Height: b.Dy()})

		if opts.PDF {
			fname := filepath.Join(dir, v.Name+".pdf")
			if err := icon.WritePDF(fname, scene); err != nil {
				return res, fmt.Errorf("%s: %w", v.Name, err)
			}
			res = append(res, Result{Name: v.Name, Path: fname, Width: scene.Width, Height: scene.Height})
		}
	}
	return res, nil
}
