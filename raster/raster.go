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

// Package raster converts filled vector paths into anti-aliased pixel
// coverage.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule determines which points are inside a path.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// EmitFunc receives the coverage of one pixel row, starting at column xMin.
// The coverage slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates, with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the path runs downwards, -1 if upwards
}

// Rasteriser computes, for every pixel, the fraction of its area covered
// by a filled path.  Buffers are kept between calls, so a single instance
// should be reused for all shapes drawn onto the same canvas.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip limits the output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	// device space bounding box of the current path
	hasBBox      bool
	bxMin, bxMax float64
	byMin, byMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset prepares the Rasteriser for a new canvas.  The transformation is
// set back to the identity; internal buffers are retained.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	if r.Flatness <= 0 {
		r.Flatness = defaultFlatness
	}
}

// Fill rasterises the interior of p according to rule.
// Rows without coverage are skipped, and zero coverage at both ends of a
// row is trimmed before emit is called.
func (r *Rasteriser) Fill(p *path.Data, rule FillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.buildEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := top + 1

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}

		// drop edges which ended above this row
		keep := r.active[:0]
		for _, idx := range r.active {
			if r.edges[idx].y1 > top {
				keep = append(keep, idx)
			}
		}
		r.active = keep
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, idx := range r.active {
			r.scanEdge(&r.edges[idx], top, bottom, xMin, xMax)
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}

		if span, offset := trimZeros(r.cover); span != nil {
			emit(y, xMin+offset, span)
		}
	}
}

// buildEdges walks the path, converts it to device space and returns the
// bounding box of the result, clipped to r.Clip.
func (r *Rasteriser) buildEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.hasBBox = false

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// filled subpaths are implicitly closed
	if current != start {
		r.addEdge(current, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax = min(int(math.Ceil(r.byMax)), int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// device maps a user space point to device space.
func (r *Rasteriser) device(p vec.Vec2) (x, y float64) {
	m := r.CTM
	return m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]
}

func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	x0, y0 := r.device(p0)
	x1, y1 := r.device(p1)

	lo, hi := min(x0, x1), max(x0, x1)
	if !r.hasBBox {
		r.bxMin, r.bxMax = lo, hi
		r.byMin, r.byMax = min(y0, y1), max(y0, y1)
		r.hasBBox = true
	} else {
		r.bxMin, r.bxMax = min(r.bxMin, lo), max(r.bxMax, hi)
		r.byMin, r.byMax = min(r.byMin, y0, y1), max(r.byMax, y0, y1)
	}

	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}
	e := edge{dir: 1}
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		e.dir = -1
	}
	e.x0, e.y0, e.x1, e.y1 = x0, y0, x1, y1
	e.dxdy = (x1 - x0) / (y1 - y0)
	r.edges = append(r.edges, e)
}

// linearLen returns the device space length of the user space vector v,
// ignoring the translation part of the CTM.
func (r *Rasteriser) linearLen(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	dev := r.linearLen(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	// Wang's formula
	dev := max(r.linearLen(p0.Sub(p1.Mul(2)).Add(p2)), r.linearLen(p1.Sub(p2.Mul(2)).Add(p3)))
	n := 1
	if dev > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(0.75*dev/r.Flatness))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// Coverage accumulation.
//
// Every part of an edge inside a pixel deposits two numbers: cover, the
// signed height of the part, and area, the share of cover lying to the
// right of the edge within the pixel.  Summing cover from the left edge
// of the row and adding the area of the current pixel yields the signed
// covered area of each pixel.

// scanEdge deposits the part of e between the scanlines top and bottom.
func (r *Rasteriser) scanEdge(e *edge, top, bottom float64, xMin, xMax int) {
	ya := max(top, e.y0)
	yb := min(bottom, e.y1)
	if yb <= ya {
		return
	}
	xa := e.x0 + e.dxdy*(ya-e.y0)
	xb := e.x0 + e.dxdy*(yb-e.y0)

	colA := int(math.Floor(min(xa, xb)))
	colB := int(math.Floor(max(xa, xb)))
	if colA >= xMax {
		return
	}
	if colA == colB {
		r.deposit(colA, e.dir*float32(yb-ya), (xa+xb)/2, xMin, xMax)
		return
	}

	dydx := 1 / e.dxdy
	for col := colA; col <= colB && col < xMax; col++ {
		yl := e.y0 + dydx*(float64(col)-e.x0)
		yr := e.y0 + dydx*(float64(col+1)-e.x0)
		y0 := max(min(yl, yr), ya)
		y1 := min(max(yl, yr), yb)
		if y1 <= y0 {
			continue
		}
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		r.deposit(col, e.dir*float32(y1-y0), xMid, xMin, xMax)
	}
}

// deposit records a piece of edge with signed height h, crossing pixel
// column col at horizontal position x.
func (r *Rasteriser) deposit(col int, h float32, x float64, xMin, xMax int) {
	switch {
	case col < xMin:
		// everything to the right of the clip edge is covered
		r.cover[0] += h
		r.area[0] += h
	case col < xMax:
		frac := float32(x - float64(col))
		i := col - xMin
		r.cover[i] += h
		r.area[i] += h * (1 - frac)
	}
}

// integrateNonZero turns accumulated cover/area into coverage values,
// in place, using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd is like integrateNonZero, but for the even-odd rule.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(math.Floor(float64(v/2)))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entries, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is well below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10
)
