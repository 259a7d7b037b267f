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

package house

import (
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func inside(inner, outer rect.Rect) bool {
	return inner.LLx >= outer.LLx-eps && inner.LLy >= outer.LLy-eps &&
		inner.URx <= outer.URx+eps && inner.URy <= outer.URy+eps
}

func TestPlace(t *testing.T) {
	l := Place(100, 100, 800)

	want := map[string][4]float64{
		"body":  {260, 380, 740, 780},
		"door":  {440, 580, 560, 780},
		"left":  {324, 460, 420, 556},
		"right": {580, 460, 676, 556},
	}
	got := map[string]rect.Rect{
		"body":  l.Body,
		"door":  l.Door,
		"left":  l.LeftWindow,
		"right": l.RightWindow,
	}
	for name, w := range want {
		g := got[name]
		if !near(g.LLx, w[0]) || !near(g.LLy, w[1]) || !near(g.URx, w[2]) || !near(g.URy, w[3]) {
			t.Errorf("%s: got %v, want %v", name, g, w)
		}
	}

	roof := [3][2]float64{{500, 180}, {180, 420}, {820, 420}}
	for i, w := range roof {
		if !near(l.Roof[i].X, w[0]) || !near(l.Roof[i].Y, w[1]) {
			t.Errorf("roof[%d]: got %v, want %v", i, l.Roof[i], w)
		}
	}
}

func TestDetailsInsideBody(t *testing.T) {
	l := Place(0, 0, 1)
	for name, r := range map[string]rect.Rect{
		"door":  l.Door,
		"left":  l.LeftWindow,
		"right": l.RightWindow,
	} {
		if !inside(r, l.Body) {
			t.Errorf("%s %v not inside body %v", name, r, l.Body)
		}
	}
	if l.LeftWindow.URx >= l.Door.LLx || l.RightWindow.LLx <= l.Door.URx {
		t.Error("windows overlap the door")
	}
	if !near(l.Door.URy, l.Body.URy) {
		t.Error("door does not sit on the body bottom")
	}
}

func TestBoundsInsideCanvas(t *testing.T) {
	paddings := []float64{0, 0.1, 0.15, 0.25, 0.4}
	for _, size := range []int{16, 17, 48, 512, 1024, 4096} {
		canvas := rect.Rect{URx: float64(size), URy: float64(size)}
		for _, pad := range paddings {
			t.Run(fmt.Sprintf("%d_%g", size, pad), func(t *testing.T) {
				l := Fit(size, pad)
				if !inside(l.Body, canvas) {
					t.Errorf("body %v outside canvas", l.Body)
				}
				if !inside(l.Bounds(), canvas) {
					t.Errorf("bounds %v outside canvas", l.Bounds())
				}
			})
		}
	}
}

func TestInset(t *testing.T) {
	origin, size := Inset(1024, 0.25)
	if origin != 256 || size != 512 {
		t.Errorf("got origin %g size %g, want 256 512", origin, size)
	}
}

func TestBounds(t *testing.T) {
	b := Place(0, 0, 10).Bounds()
	want := rect.Rect{LLx: 1, LLy: 1, URx: 9, URy: 8.5}
	if !near(b.LLx, want.LLx) || !near(b.LLy, want.LLy) || !near(b.URx, want.URx) || !near(b.URy, want.URy) {
		t.Errorf("got %v, want %v", b, want)
	}
}

func TestPaths(t *testing.T) {
	l := Place(0, 0, 100)
	check := func(name string, p *path.Data, n int) {
		t.Helper()
		if len(p.Cmds) != n+1 || p.Cmds[0] != path.CmdMoveTo || p.Cmds[n] != path.CmdClose {
			t.Errorf("%s: unexpected commands %v", name, p.Cmds)
		}
		if len(p.Coords) != n {
			t.Errorf("%s: got %d points, want %d", name, len(p.Coords), n)
		}
	}
	check("body", l.BodyPath(), 4)
	check("roof", l.RoofPath(), 3)
	check("door", l.DoorPath(), 4)
	for i, w := range l.WindowPaths() {
		check(fmt.Sprintf("window %d", i), w, 4)
	}
}
