package spatial

import (
	"image"
	"math"
	"sort"

	"github.com/boljen/go-bitmap"
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/roadgraph/internal/line"
)

// Grid is a uniform grid over the plane that remembers which segment ids
// pass through (or near) each cell. It only narrows down which segments are
// worth an exact test; it never gives a false negative.
type Grid struct {
	size  float64
	cells map[image.Point][]int
	ids   int // one more than the highest id inserted

	// segments too long (or too far out) to walk cell by cell; every
	// query gets these
	oversized []int

	// every id inserted, returned as-is for oversized queries
	all []int
}

const (
	// maxSpan is the most cells a segment may cross on either axis
	// before it's kept as oversized instead
	maxSpan = 1 << 10

	// maxCell keeps cell coordinates well inside the int range
	maxCell = 1 << 30
)

// NewGrid returns a grid with square cells of the given size.
func NewGrid(size float64) *Grid {
	return &Grid{size: size, cells: map[image.Point][]int{}}
}

// Insert registers segment (a, b) under id.
// Ids are expected to be small non-negative ints (ie. slice indexes).
func (g *Grid) Insert(id int, a, b model2d.Coord) {
	g.all = append(g.all, id)

	set, ok := g.cover(a, b)
	if !ok {
		g.oversized = append(g.oversized, id)
	}
	for c := range set {
		g.cells[c] = append(g.cells[c], id)
	}
	if id >= g.ids {
		g.ids = id + 1
	}
}

// Query returns the ids of all segments that might intersect (a, b),
// each id once, in ascending order.
func (g *Grid) Query(a, b model2d.Coord) []int {
	found := []int{}
	if g.ids == 0 {
		return found
	}

	set, ok := g.cover(a, b)
	if !ok {
		found = append(found, g.all...)
		sort.Ints(found)
		return found
	}

	seen := bitmap.New(g.ids)
	add := func(ids []int) {
		for _, id := range ids {
			if seen.Get(id) {
				continue
			}
			seen.Set(id, true)
			found = append(found, id)
		}
	}
	add(g.oversized)
	for c := range set {
		add(g.cells[c])
	}

	sort.Ints(found)
	return found
}

// Len returns how many cells have at least one segment in them
func (g *Grid) Len() int {
	return len(g.cells)
}

// cell returns the grid cell containing c, ok is false if the cell is too
// far out to address.
func (g *Grid) cell(c model2d.Coord) (image.Point, bool) {
	x := math.Floor(c.X / g.size)
	y := math.Floor(c.Y / g.size)
	if !(math.Abs(x) <= maxCell && math.Abs(y) <= maxCell) { // nb. also catches NaN
		return image.Point{}, false
	}
	return image.Pt(int(x), int(y)), true
}

// cover returns a set of cells that includes every cell the segment (a, b)
// touches. We walk the cell-level line & pad it by one cell in every
// direction; the true segment never strays more than one cell away from the
// walked line.
// ok is false (and the set empty) if the segment spans more than maxSpan
// cells or lies outside of the addressable cells.
func (g *Grid) cover(a, b model2d.Coord) (map[image.Point]bool, bool) {
	set := map[image.Point]bool{}
	ca, okA := g.cell(a)
	cb, okB := g.cell(b)
	if !okA || !okB {
		return set, false
	}
	if d := ca.Sub(cb); d.X > maxSpan || d.X < -maxSpan || d.Y > maxSpan || d.Y < -maxSpan {
		return set, false
	}

	for _, p := range line.PointsBetween(ca, cb) {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				set[image.Pt(p.X+dx, p.Y+dy)] = true
			}
		}
	}
	return set, true
}
