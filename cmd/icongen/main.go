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

// Command icongen writes the CleanLoop app icon, adaptive icon foreground
// and splash screen icon.
//
// Run from the app root directory:
//
//	go run seehuhn.de/go/icongen/cmd/icongen [-out dir] [-pdf]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"seehuhn.de/go/icongen"
)

var nextSteps = []string{
	"flutter pub get",
	"dart run flutter_launcher_icons",
	"dart run flutter_native_splash:create",
}

func main() {
	out := flag.String("out", icongen.DefaultDir, "output `directory`")
	withPDF := flag.Bool("pdf", false, "also write PDF vector versions")
	flag.Parse()

	if err := run(os.Stdout, icongen.Options{Dir: *out, PDF: *withPDF}); err != nil {
		fmt.Fprintln(os.Stderr, "icongen:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, opts icongen.Options) error {
	rule := strings.Repeat("-", 40)

	fmt.Fprintln(w, "Generating CleanLoop app icons...")
	fmt.Fprintln(w, rule)

	res, err := icongen.Generate(opts)
	for _, r := range res {
		fmt.Fprintf(w, "Created: %s (%dx%d)\n", r.Path, r.Width, r.Height)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Done! Icons saved to %s/\n", opts.Dir)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	for i, step := range nextSteps {
		fmt.Fprintf(w, "%d. Run: %s\n", i+1, step)
	}
	return nil
}
