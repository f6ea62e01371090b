package line

import (
	"image"
	"reflect"
	"testing"
)

func TestPointsBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
		want []image.Point
	}{
		{
			name: "single point",
			a:    image.Pt(3, 3), b: image.Pt(3, 3),
			want: []image.Point{image.Pt(3, 3)},
		},
		{
			name: "horizontal",
			a:    image.Pt(0, 1), b: image.Pt(3, 1),
			want: []image.Point{image.Pt(0, 1), image.Pt(1, 1), image.Pt(2, 1), image.Pt(3, 1)},
		},
		{
			name: "vertical reversed",
			a:    image.Pt(2, 2), b: image.Pt(2, 0),
			want: []image.Point{image.Pt(2, 2), image.Pt(2, 1), image.Pt(2, 0)},
		},
		{
			name: "diagonal",
			a:    image.Pt(0, 0), b: image.Pt(-2, -2),
			want: []image.Point{image.Pt(0, 0), image.Pt(-1, -1), image.Pt(-2, -2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointsBetween(tt.a, tt.b)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PointsBetween(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPointsBetweenConnected(t *testing.T) {
	// every step moves at most one cell in each axis & we end where asked
	ends := [][2]image.Point{
		{image.Pt(0, 0), image.Pt(7, 3)},
		{image.Pt(5, -4), image.Pt(-6, 9)},
		{image.Pt(-3, 8), image.Pt(1, -10)},
	}
	for _, e := range ends {
		pts := PointsBetween(e[0], e[1])
		if pts[0] != e[0] || pts[len(pts)-1] != e[1] {
			t.Fatalf("line %v: got ends %v, %v", e, pts[0], pts[len(pts)-1])
		}
		for i := 1; i < len(pts); i++ {
			d := pts[i].Sub(pts[i-1])
			if abs(d.X) > 1 || abs(d.Y) > 1 {
				t.Errorf("line %v: gap between %v and %v", e, pts[i-1], pts[i])
			}
		}
	}
}
