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
	"image"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/icongen/raster"
)

// Render draws the variant into a new image.
func Render(v Variant) *image.NRGBA {
	return Paint(Build(v))
}

// Paint rasterises the shapes of s, in order, onto a transparent canvas.
// Every shape is anti-aliased and composited using source-over.
func Paint(s Scene) *image.NRGBA {
	bounds := image.Rect(0, 0, s.Width, s.Height)
	p := &painter{
		dst:  image.NewNRGBA(bounds),
		mask: image.NewAlpha(bounds),
		r:    raster.NewRasteriser(rect.Rect{URx: float64(s.Width), URy: float64(s.Height)}),
	}
	for _, sh := range s.Shapes {
		p.fill(sh)
	}
	return p.dst
}

type painter struct {
	dst  *image.NRGBA
	mask *image.Alpha
	r    *raster.Rasteriser
}

func (p *painter) fill(sh Shape) {
	var touched image.Rectangle
	p.r.Fill(sh.Path, raster.NonZero, func(y, xMin int, coverage []float32) {
		row := p.mask.Pix[y*p.mask.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(min(c, 1)*255 + 0.5)
		}
		touched = touched.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if touched.Empty() {
		return
	}

	src := image.NewUniform(sh.Color)
	draw.DrawMask(p.dst, touched, src, image.Point{}, p.mask, touched.Min, draw.Over)

	// leave the mask blank for the next shape
	for y := touched.Min.Y; y < touched.Max.Y; y++ {
		off := y * p.mask.Stride
		clear(p.mask.Pix[off+touched.Min.X : off+touched.Max.X])
	}
}
