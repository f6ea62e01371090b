package roadgraph

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"

	"github.com/voidshard/roadgraph/internal/geom"
)

// Elevation is the height at which segments are embedded in 3D space.
const Elevation = 0.0

// RoadSpec is the shape of a proposed road
type RoadSpec struct {
	// Angle in degrees relative to the incoming heading (positive turns
	// clockwise, ie. from +y towards +x)
	Angle float64

	// Length in world units
	Length float64
}

// GrowthContext is where a proposed road grows from
type GrowthContext struct {
	// Origin of the road
	Origin model2d.Coord

	// PrevAngle is the absolute heading (degrees) of the road we're
	// continuing from. 0 points along +y.
	PrevAngle float64
}

// RoadQuery is a proposed road that is waiting to be checked.
// Queries are values; expanding one makes new queries rather than
// changing it.
type RoadQuery struct {
	// Timer is the tick at which this query is processed, lowest first
	Timer int

	// Lifetime is how many generations came before this one in it's lineage
	Lifetime int

	Spec    RoadSpec
	Context GrowthContext

	// Valid queries may be accepted, invalid ones are always rejected
	Valid bool
}

// NewSeed returns the first query of a network; a road of the given length
// starting at origin heading in the given direction (degrees).
func NewSeed(origin model2d.Coord, heading, length float64) RoadQuery {
	return RoadQuery{
		Spec:    RoadSpec{Length: length},
		Context: GrowthContext{Origin: origin, PrevAngle: heading},
		Valid:   true,
	}
}

// Heading returns the absolute heading (degrees) of the road this query
// proposes.
func (q RoadQuery) Heading() float64 {
	return q.Context.PrevAngle + q.Spec.Angle
}

// End returns where the proposed road would end
func (q RoadQuery) End() model2d.Coord {
	return q.Context.Origin.Add(geom.Direction(q.Heading()).Scale(q.Spec.Length))
}

// Segment is a road that has been accepted into the network
type Segment struct {
	// Index in the network, segments are numbered in the order accepted
	Index int

	// Path from origin to end
	Path [2]model2d.Coord

	// Heading is the absolute heading (degrees) from Path[0] to Path[1]
	Heading float64

	// Timer & Lifetime of the query this came from
	Timer    int
	Lifetime int
}

// Materialize turns a query into the segment it proposes.
// The returned segment isn't part of any network (Index is -1).
func Materialize(q RoadQuery) *Segment {
	return &Segment{
		Index:    -1,
		Path:     [2]model2d.Coord{q.Context.Origin, q.End()},
		Heading:  q.Heading(),
		Timer:    q.Timer,
		Lifetime: q.Lifetime,
	}
}

// Length of the segment
func (s *Segment) Length() float64 {
	return s.Path[0].Dist(s.Path[1])
}

// Line3D returns the segment embedded in 3D at the given elevation (z).
func (s *Segment) Line3D(elevation float64) model3d.Segment {
	return model3d.Segment{
		model3d.XYZ(s.Path[0].X, s.Path[0].Y, elevation),
		model3d.XYZ(s.Path[1].X, s.Path[1].Y, elevation),
	}
}

// Rejection is why a query was not accepted.
type Rejection string

const (
	Accepted           Rejection = ""              // not rejected at all
	RejectInvalid      Rejection = "invalid"       // query marked not Valid
	RejectExpired      Rejection = "expired"       // lifetime past MaxLifetime
	RejectNonFinite    Rejection = "non-finite"    // NaN or Inf somewhere in the geometry
	RejectDegenerate   Rejection = "degenerate"    // zero, negative or too short length
	RejectOutOfBounds  Rejection = "out-of-bounds" // outside of the configured Bounds
	RejectUnbuildable  Rejection = "unbuildable"   // Outline says no
	RejectIntersection Rejection = "intersection"  // crosses an accepted segment
)

// GrowthStats holds generic stats about a growth run
type GrowthStats struct {
	// Accepted number of segments
	Accepted int

	// Rejected count of queries by reason
	Rejected map[Rejection]int

	// Processed number of queries popped from the queue
	Processed int

	// Pruned number of children never queued because they'd be past
	// MaxLifetime
	Pruned int

	// PeakQueue is the most queries ever waiting at once
	PeakQueue int

	// Ticks is the number of distinct timer values processed
	Ticks int

	// Depth is the highest lifetime of any accepted segment
	Depth int
}

// newGrowthStats returns blank GrowthStats
func newGrowthStats() *GrowthStats {
	return &GrowthStats{Rejected: map[Rejection]int{}}
}

// reject increments Rejected by 1
func (g *GrowthStats) reject(r Rejection) {
	g.Rejected[r]++
}

// accept records an accepted segment
func (g *GrowthStats) accept(s *Segment) {
	g.Accepted++
	if s.Lifetime > g.Depth {
		g.Depth = s.Lifetime
	}
}

// TotalRejected returns the number of rejected queries (for any reason)
func (g *GrowthStats) TotalRejected() int {
	total := 0
	for _, count := range g.Rejected {
		total += count
	}
	return total
}
