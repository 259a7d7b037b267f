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

// Package house describes the house pictogram as a table of fractions
// of its bounding square and turns this table into device coordinates.
//
// All coordinates use a top-left origin, with y growing downwards.
package house

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Fractions of the bounding square.
const (
	bodyLeft   = 0.20
	bodyTop    = 0.35
	bodyRight  = 0.80
	bodyBottom = 0.85

	roofApexX  = 0.50
	roofApexY  = 0.10
	roofLeft   = 0.10
	roofRight  = 0.90
	roofBottom = 0.40

	doorWidth  = 0.15
	doorHeight = 0.25

	windowSize   = 0.12
	windowMargin = 0.08 // horizontal inset from the body sides
	windowOffset = 0.10 // vertical offset below the body top
)

// Layout holds the absolute geometry of one house.
// Rectangles use LL for the top-left and UR for the bottom-right corner.
type Layout struct {
	Body        rect.Rect
	Roof        [3]vec.Vec2 // apex, bottom-left, bottom-right
	Door        rect.Rect
	LeftWindow  rect.Rect
	RightWindow rect.Rect
}

// Place computes the house geometry for a bounding square of side size
// with top-left corner (x, y).
func Place(x, y, size float64) Layout {
	var l Layout

	l.Body = rect.Rect{
		LLx: x + size*bodyLeft,
		LLy: y + size*bodyTop,
		URx: x + size*bodyRight,
		URy: y + size*bodyBottom,
	}

	l.Roof = [3]vec.Vec2{
		{X: x + size*roofApexX, Y: y + size*roofApexY},
		{X: x + size*roofLeft, Y: y + size*roofBottom},
		{X: x + size*roofRight, Y: y + size*roofBottom},
	}

	dw := size * doorWidth
	dx := x + size*roofApexX - dw/2
	l.Door = rect.Rect{
		LLx: dx,
		LLy: l.Body.URy - size*doorHeight,
		URx: dx + dw,
		URy: l.Body.URy,
	}

	ws := size * windowSize
	wm := size * windowMargin
	wy := l.Body.LLy + size*windowOffset
	l.LeftWindow = rect.Rect{
		LLx: l.Body.LLx + wm,
		LLy: wy,
		URx: l.Body.LLx + wm + ws,
		URy: wy + ws,
	}
	l.RightWindow = rect.Rect{
		LLx: l.Body.URx - wm - ws,
		LLy: wy,
		URx: l.Body.URx - wm,
		URy: wy + ws,
	}

	return l
}

// Inset returns the bounding square of a house centred on a square
// canvas, leaving padding*canvas pixels free on every side.
func Inset(canvas int, padding float64) (origin, size float64) {
	origin = float64(canvas) * padding
	return origin, float64(canvas) - 2*origin
}

// Fit places a house on a square canvas with the given padding fraction.
func Fit(canvas int, padding float64) Layout {
	origin, size := Inset(canvas, padding)
	return Place(origin, origin, size)
}

// Bounds returns the smallest rectangle containing all parts of the house.
func (l Layout) Bounds() rect.Rect {
	b := l.Body
	for _, p := range l.Roof {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// BodyPath returns the outline of the house body.
func (l Layout) BodyPath() *path.Data { return Rect(l.Body) }

// RoofPath returns the outline of the roof triangle.
func (l Layout) RoofPath() *path.Data {
	return (&path.Data{}).
		MoveTo(l.Roof[0]).
		LineTo(l.Roof[1]).
		LineTo(l.Roof[2]).
		Close()
}

// DoorPath returns the outline of the door.
func (l Layout) DoorPath() *path.Data { return Rect(l.Door) }

// WindowPaths returns the outlines of the left and right window.
func (l Layout) WindowPaths() [2]*path.Data {
	return [2]*path.Data{Rect(l.LeftWindow), Rect(l.RightWindow)}
}

// Rect returns a closed path around r.
func Rect(r rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
}
