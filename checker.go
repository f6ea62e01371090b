package roadgraph

import (
	"github.com/voidshard/roadgraph/internal/geom"
)

// Legal returns if q could be accepted into the network as it stands.
func (r *Roadgraph) Legal(q RoadQuery) bool {
	return r.legal(q, r.network)
}

// legal returns if q may be added to network n
func (r *Roadgraph) legal(q RoadQuery, n *Network) bool {
	return r.check(q, n, n.Len()) == Accepted
}

// check decides if a query may be accepted, returning the reason if not.
// Only segments with Index < limit are considered for crossings, which
// lets us check against a snapshot of the network while it's growing.
// Cheap tests come first; the crossing test is last.
func (r *Roadgraph) check(q RoadQuery, n *Network, limit int) Rejection {
	if !q.Valid {
		return RejectInvalid
	}
	if q.Lifetime > r.cfg.MaxLifetime {
		return RejectExpired
	}

	if !geom.Finite(q.Spec.Angle, q.Spec.Length, q.Context.PrevAngle) || !geom.FiniteCoords(q.Context.Origin) {
		return RejectNonFinite
	}
	if q.Spec.Length <= 0 || q.Spec.Length < r.cfg.MinLength {
		return RejectDegenerate
	}

	start := q.Context.Origin
	end := q.End()
	if !geom.FiniteCoords(end) { // ie. overflow from absurd lengths
		return RejectNonFinite
	}

	if r.cfg.Bounds != nil {
		if !geom.Contains(r.bounds, start) || !geom.Contains(r.bounds, end) {
			return RejectOutOfBounds
		}
	}
	if r.outline != nil && !r.outline.CanBuildOn(end.X, end.Y) {
		return RejectUnbuildable
	}

	if n.crossesRange(start, end, 0, limit) {
		return RejectIntersection
	}

	return Accepted
}
