package geom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/unixpickle/model3d/model2d"
)

// Direction returns the unit vector for a heading given in degrees.
// A heading of 0 points along +y ("forward") and positive headings turn
// towards +x, ie. the vector is (sin θ, cos θ).
func Direction(degrees float64) model2d.Coord {
	rad := (s1.Angle(degrees) * s1.Degree).Radians()
	return model2d.XY(math.Sin(rad), math.Cos(rad))
}

// Cross returns the z component of the cross product a x b
func Cross(a, b model2d.Coord) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Intersects returns if segments (a0, a1) and (b0, b1) properly cross.
//
// Both "which side" products must be strictly negative, so segments that
// only touch (shared endpoints, an endpoint resting on the other segment)
// or that are collinear do not count.
func Intersects(a0, a1, b0, b1 model2d.Coord) bool {
	da := a1.Sub(a0)
	db := b1.Sub(b0)

	sa := Cross(da, b0.Sub(a0))
	sb := Cross(da, b1.Sub(a0))
	if sa*sb >= 0 {
		return false
	}

	ta := Cross(db, a0.Sub(b0))
	tb := Cross(db, a1.Sub(b0))
	return ta*tb < 0
}

// Finite returns true if none of the given values are NaN or infinite.
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// FiniteCoords is Finite for every component of the given coords.
func FiniteCoords(cs ...model2d.Coord) bool {
	for _, c := range cs {
		if !Finite(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Rect builds a bounding rect from two corners (in any order).
func Rect(x0, y0, x1, y1 float64) r2.Rect {
	return r2.RectFromPoints(r2.Point{X: x0, Y: y0}, r2.Point{X: x1, Y: y1})
}

// Contains returns if c lies within (or on the border of) r.
func Contains(r r2.Rect, c model2d.Coord) bool {
	return r.ContainsPoint(r2.Point{X: c.X, Y: c.Y})
}
