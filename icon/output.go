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

package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// WritePNG encodes img as a PNG file.  The data is first written to a
// temporary file in the same directory, which is then renamed, so that
// an existing file is never left truncated.
func WritePNG(fname string, img image.Image) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(fname), "."+filepath.Base(fname)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	err = png.Encode(tmp, img)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", fname, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fname)
}

// WritePDF writes the scene as a single page PDF file.  One PDF unit
// corresponds to one pixel of the raster version.
func WritePDF(fname string, s Scene) error {
	paper := &pdf.Rectangle{
		URx: float64(s.Width),
		URy: float64(s.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has the origin at the bottom-left, scenes at the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(s.Height)})

	for _, sh := range s.Shapes {
		page.SetFillColor(deviceRGB(sh.Color))
		var current, start vec.Vec2
		k := 0
		for _, cmd := range sh.Path.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				current = sh.Path.Coords[k]
				start = current
				page.MoveTo(current.X, current.Y)
				k++
			case path.CmdLineTo:
				current = sh.Path.Coords[k]
				page.LineTo(current.X, current.Y)
				k++
			case path.CmdQuadTo:
				// PDF has no quadratic curves; raise the degree
				c, end := sh.Path.Coords[k], sh.Path.Coords[k+1]
				c1 := current.Add(c.Sub(current).Mul(2.0 / 3.0))
				c2 := end.Add(c.Sub(end).Mul(2.0 / 3.0))
				page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
				current = end
				k += 2
			case path.CmdCubeTo:
				c1, c2, end := sh.Path.Coords[k], sh.Path.Coords[k+1], sh.Path.Coords[k+2]
				page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
				current = end
				k += 3
			case path.CmdClose:
				page.ClosePath()
				current = start
			}
		}
		page.Fill()
	}

	return page.Close()
}

// deviceRGB converts an opaque colour to the PDF DeviceRGB space.
// Scenes only contain opaque colours, so alpha is ignored.
func deviceRGB(c color.NRGBA) pdfcolor.DeviceRGB {
	return pdfcolor.DeviceRGB{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
	}
}
