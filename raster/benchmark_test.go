package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
)

var benchSizes = []int{64, 512, 1024}

// housePolygon returns the outline of a body-and-roof silhouette
// scaled to the given canvas size.
func housePolygon(size float64) []vec.Vec2 {
	f := []vec.Vec2{
		{X: 0.50, Y: 0.18}, {X: 0.82, Y: 0.42}, {X: 0.74, Y: 0.42},
		{X: 0.74, Y: 0.78}, {X: 0.26, Y: 0.78}, {X: 0.26, Y: 0.42},
		{X: 0.18, Y: 0.42},
	}
	for i := range f {
		f[i] = f[i].Mul(size)
	}
	return f
}

func BenchmarkRasteriserHouse(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := clipRect(size, size)
			r := NewRasteriser(clip)
			p := polygon(housePolygon(float64(size))...)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Fill(p, NonZero, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

func BenchmarkVectorHouse(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			pts := housePolygon(float64(size))
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
				for _, pt := range pts[1:] {
					r.LineTo(float32(pt.X), float32(pt.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
