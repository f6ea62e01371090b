package line

import (
	"image"
)

// PointsBetween returns all points on a line between a,b (inclusive), ordered
// from a to b.
func PointsBetween(a, b image.Point) []image.Point {
	pts := []image.Point{}
	bresenham(a.X, a.Y, b.X, b.Y, func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	return pts
}
