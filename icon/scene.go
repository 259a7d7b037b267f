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
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/icongen/house"
)

// Shape is a filled region of a Scene.
type Shape struct {
	Name  string
	Path  *path.Data
	Color color.NRGBA
}

// Scene is the list of shapes making up one asset, in painting order.
// All coordinates are in pixels, with the origin at the top-left corner.
type Scene struct {
	Width, Height int
	Shapes        []Shape
}

const (
	// gradientShare is the fraction of the canvas height, counted from the
	// top edge, which is lightened.
	gradientShare = 3

	// gradientStrength is the opacity of the white overlay at the top edge.
	gradientStrength = 0.3
)

// Build converts a variant into a scene.
// Shapes are ordered background, body, roof, door, windows.
func Build(v Variant) Scene {
	s := Scene{Width: v.Size, Height: v.Size}

	if v.Background == Gradient {
		s.Shapes = append(s.Shapes, gradient(v.Size)...)
	}

	l := house.Fit(v.Size, v.Padding)
	s.Shapes = append(s.Shapes,
		Shape{Name: "body", Path: l.BodyPath(), Color: White},
		Shape{Name: "roof", Path: l.RoofPath(), Color: White},
	)
	if v.Details {
		windows := l.WindowPaths()
		s.Shapes = append(s.Shapes,
			Shape{Name: "door", Path: l.DoorPath(), Color: PrimaryGreen},
			Shape{Name: "left window", Path: windows[0], Color: LightGreen},
			Shape{Name: "right window", Path: windows[1], Color: LightGreen},
		)
	}
	return s
}

// gradient returns the background of the app icon: a PrimaryGreen canvas
// with white blended over the top rows.  Row i of the top third gets an
// overlay opacity of (1 - i/n) * gradientStrength.  Rows with equal
// opacity are merged into a single band, and every band is pre-composited
// to an opaque colour.
func gradient(size int) []Shape {
	full := float64(size)
	shapes := []Shape{{
		Name:  "background",
		Path:  house.Rect(rect.Rect{URx: full, URy: full}),
		Color: PrimaryGreen,
	}}

	n := size / gradientShare
	start := 0
	for start < n {
		alpha := bandAlpha(start, n)
		end := start + 1
		for end < n && bandAlpha(end, n) == alpha {
			end++
		}
		if alpha > 0 {
			shapes = append(shapes, Shape{
				Name:  "gradient",
				Path:  house.Rect(rect.Rect{LLy: float64(start), URx: full, URy: float64(end)}),
				Color: over(PrimaryGreen, White, alpha),
			})
		}
		start = end
	}
	return shapes
}

func bandAlpha(row, n int) uint8 {
	return uint8(255 * (1 - float64(row)/float64(n)) * gradientStrength)
}
