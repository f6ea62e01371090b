package roadgraph

// expand returns the three follow on queries of an accepted query q, in
// order; straight ahead, left turn, right turn.
// Children start where q ends, continue from q's heading, are one
// generation older & are always timed after q.
func (r *Roadgraph) expand(q RoadQuery) [3]RoadQuery {
	ctx := GrowthContext{Origin: q.End(), PrevAngle: q.Heading()}
	length := q.Spec.Length * r.cfg.LengthFalloff

	straight := q.Timer + r.cfg.TimerIncrement
	turn := straight + r.cfg.BranchDelay

	child := func(angle float64, timer int) RoadQuery {
		return RoadQuery{
			Timer:    timer,
			Lifetime: q.Lifetime + 1,
			Spec:     RoadSpec{Angle: angle + r.jitter(), Length: length},
			Context:  ctx,
			Valid:    true,
		}
	}

	return [3]RoadQuery{
		child(0, straight),
		child(-r.cfg.BranchAngles[0], turn),
		child(r.cfg.BranchAngles[1], turn),
	}
}

// jitter returns a random angle in [-AngleJitter, AngleJitter)
func (r *Roadgraph) jitter() float64 {
	if r.cfg.AngleJitter <= 0 {
		return 0 // nb. don't touch the rng
	}
	return (r.rng.Float64()*2 - 1) * r.cfg.AngleJitter
}
