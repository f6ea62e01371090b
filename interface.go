package roadgraph

// Outline tells roadgraph roughly what is at a given location.
// We only have one question; can a road end here?
// Ie. water, cliffs, parks or anything else the caller wants to keep free
// of roads.
type Outline interface {
	// true if a road may be placed at x,y
	CanBuildOn(x, y float64) bool
}
