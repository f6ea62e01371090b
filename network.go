package roadgraph

import (
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/roadgraph/internal/geom"
	"github.com/voidshard/roadgraph/internal/spatial"
)

// Network is the append-only list of accepted segments. It's both what
// new roads are checked against & the final output.
type Network struct {
	segments []*Segment
	grid     *spatial.Grid // nil if we check every segment
}

// newNetwork returns an empty network, indexed if cellSize > 0
func newNetwork(cellSize float64) *Network {
	n := &Network{segments: []*Segment{}}
	if cellSize > 0 {
		n.grid = spatial.NewGrid(cellSize)
	}
	return n
}

// Len returns the number of accepted segments
func (n *Network) Len() int {
	return len(n.segments)
}

// Segments returns accepted segments in the order they were accepted
func (n *Network) Segments() []*Segment {
	return n.segments
}

// Crosses returns if (a, b) properly crosses any accepted segment.
// Touching at an endpoint is fine.
func (n *Network) Crosses(a, b model2d.Coord) bool {
	return n.crossesRange(a, b, 0, len(n.segments))
}

// crossesRange is Crosses but only considers segments with from <= Index < to.
// Safe to call from multiple goroutines so long as nothing is being added.
func (n *Network) crossesRange(a, b model2d.Coord, from, to int) bool {
	if from >= to {
		return false
	}

	if n.grid == nil {
		for _, s := range n.segments[from:to] {
			if geom.Intersects(a, b, s.Path[0], s.Path[1]) {
				return true
			}
		}
		return false
	}

	for _, id := range n.grid.Query(a, b) {
		if id < from {
			continue
		}
		if id >= to {
			break // ids come back sorted
		}
		s := n.segments[id]
		if geom.Intersects(a, b, s.Path[0], s.Path[1]) {
			return true
		}
	}
	return false
}

// add appends s to the network, setting it's Index
func (n *Network) add(s *Segment) {
	s.Index = len(n.segments)
	n.segments = append(n.segments, s)
	if n.grid != nil {
		n.grid.Insert(s.Index, s.Path[0], s.Path[1])
	}
}
