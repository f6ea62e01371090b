package roadgraph

import (
	"math/rand"
	"sync"
	"time"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/voidshard/roadgraph/internal/queue"
)

var (
	// ErrInvalidConfig implies a GrowthConfig setting is out of range.
	ErrInvalidConfig = errors.New("invalid growth config")
)

// Roadgraph holds our road network & handles growing it
type Roadgraph struct {
	outline Outline
	cfg     *GrowthConfig

	rng    *rand.Rand
	bounds r2.Rect

	queue   *queue.Queue
	network *Network

	// Segments are the accepted roads, in the order they were accepted
	Segments []*Segment
	Stats    *GrowthStats
	Seed     int64
}

// New grows a road network from the seed query given configuration & an
// (optional) Outline. The whole network is built before New returns.
// A nil config uses DefaultConfig().
func New(cfg *GrowthConfig, seed RoadQuery, o Outline) (*Roadgraph, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	rg := &Roadgraph{
		cfg:     cfg,
		outline: o,
	}
	rg.init()
	rg.build(seed)

	return rg, nil
}

// Network returns the accepted network
func (r *Roadgraph) Network() *Network {
	return r.network
}

// build runs the growth loop until there is nothing left to do.
func (r *Roadgraph) build(seed RoadQuery) {
	start := time.Now()

	r.push(seed)
	if r.cfg.Workers > 1 {
		r.growParallel()
	} else {
		r.grow()
	}

	r.Segments = r.network.Segments()

	klog.V(1).Infof(
		"roadgraph: grew %d segments from %d queries in %v (%d rejected, %d pruned, peak queue %d, depth %d)",
		r.Stats.Accepted, r.Stats.Processed, time.Since(start),
		r.Stats.TotalRejected(), r.Stats.Pruned, r.Stats.PeakQueue, r.Stats.Depth,
	)
}

// grow pops one query at a time & settles it.
func (r *Roadgraph) grow() {
	tick, started := 0, false
	for !r.queue.Empty() {
		q := r.pop()
		if !started || q.Timer != tick {
			tick, started = q.Timer, true
			r.Stats.Ticks++
		}
		r.settle(q, r.check(q, r.network, r.network.Len()))
	}
}

// growParallel works a tick (all queries sharing the lowest timer) at a
// time. Queries in the tick are checked concurrently against the network
// as it was at the start of the tick, then settled one by one in queue order.
// Anything that passed is re-checked against segments accepted earlier in
// the same tick before it's accepted, so two roads racing for the same
// space are decided in queue order, exactly like grow().
func (r *Roadgraph) growParallel() {
	for !r.queue.Empty() {
		tick := r.popTick()
		r.Stats.Ticks++

		snapshot := r.network.Len()
		verdicts := make([]Rejection, len(tick))

		workers := r.cfg.Workers
		if workers > len(tick) {
			workers = len(tick)
		}

		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					verdicts[i] = r.check(tick[i], r.network, snapshot)
				}
			}()
		}
		for i := range tick {
			jobs <- i
		}
		close(jobs)
		wg.Wait()

		klog.V(3).Infof("roadgraph: tick %d checked %d queries with %d workers", tick[0].Timer, len(tick), workers)

		for i, q := range tick {
			why := verdicts[i]
			if why == Accepted && r.network.crossesRange(q.Context.Origin, q.End(), snapshot, r.network.Len()) {
				why = RejectIntersection
			}
			r.settle(q, why)
		}
	}
}

// settle either records why q was rejected or accepts it, adding it's
// segment to the network & queueing it's children.
func (r *Roadgraph) settle(q RoadQuery, why Rejection) {
	if why != Accepted {
		r.Stats.reject(why)
		klog.V(4).Infof("roadgraph: rejected query at tick %d lifetime %d: %s", q.Timer, q.Lifetime, why)
		return
	}

	seg := Materialize(q)
	r.network.add(seg)
	r.Stats.accept(seg)

	for _, child := range r.expand(q) {
		if child.Lifetime > r.cfg.MaxLifetime {
			r.Stats.Pruned++
			continue
		}
		r.push(child)
	}
}

// push adds q to the queue
func (r *Roadgraph) push(q RoadQuery) {
	r.queue.Push(q.Timer, q)
	if r.queue.Len() > r.Stats.PeakQueue {
		r.Stats.PeakQueue = r.queue.Len()
	}
}

// pop removes the next query from the queue.
// Nb. the queue must not be empty
func (r *Roadgraph) pop() RoadQuery {
	v, _, _ := r.queue.Pop()
	r.Stats.Processed++
	return v.(RoadQuery)
}

// popTick removes every query sharing the lowest timer, in queue order
func (r *Roadgraph) popTick() []RoadQuery {
	first := r.pop()
	tick := []RoadQuery{first}
	for {
		next, ok := r.queue.Peek()
		if !ok || next != first.Timer {
			return tick
		}
		tick = append(tick, r.pop())
	}
}

// init sets up the rng, queue & an empty network.
func (r *Roadgraph) init() {
	if r.cfg.Seed == 0 {
		r.cfg.Seed = time.Now().UnixNano()
	}
	r.Seed = r.cfg.Seed
	r.rng = rand.New(rand.NewSource(r.cfg.Seed))

	if r.cfg.Bounds != nil {
		r.bounds = r.cfg.Bounds.rect()
	}

	r.queue = queue.New()
	r.network = newNetwork(r.cfg.IndexCellSize)
	r.Stats = newGrowthStats()
	r.Segments = []*Segment{}
}
