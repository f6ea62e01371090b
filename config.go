package roadgraph

import (
	"io/ioutil"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/voidshard/roadgraph/internal/geom"
)

// GrowthConfig outlines the growth policy. Most of these settings decide
// the look of the network (grid-like vs. organic) rather than it's
// correctness; see DefaultConfig for a sane starting point.
type GrowthConfig struct {
	// MaxLifetime is the deepest a lineage may grow. Children of a query
	// at MaxLifetime are never queued, so at most 3^MaxLifetime queries
	// are ever waiting at once.
	MaxLifetime int `yaml:"max_lifetime"`

	// BranchAngles are the left & right divergence (degrees) from
	// straight ahead of the two turning branches.
	BranchAngles [2]float64 `yaml:"branch_angles"`

	// LengthFalloff is multiplied into a road's length each generation.
	// Must be in (0,1]; lower values keep the network compact.
	LengthFalloff float64 `yaml:"length_falloff"`

	// TimerIncrement is the number of ticks added to the timer of each
	// generation. Must be at least 1 so children are always processed after
	// their parent.
	TimerIncrement int `yaml:"timer_increment"`

	// BranchDelay is extra ticks given to the turning branches on top of
	// TimerIncrement. Larger values let straight roads run further before
	// side roads claim space.
	BranchDelay int `yaml:"branch_delay"`

	// MinLength is the shortest road we'll accept. Roads of length 0 or
	// less are always rejected.
	MinLength float64 `yaml:"min_length"`

	// Bounds constrains where roads may be placed. Optional.
	Bounds *Area `yaml:"bounds,omitempty"`

	// AngleJitter adds up to +/- this many degrees of random turn to every
	// child road. 0 turns randomness off entirely.
	AngleJitter float64 `yaml:"angle_jitter"`

	// Seed for rng (random number chosen if not set). Only used if
	// AngleJitter is set.
	Seed int64 `yaml:"seed"`

	// IndexCellSize is the cell size of the grid used to find nearby roads
	// when checking for crossings. 0 or less checks every road instead.
	// Something around the length of a typical road works well.
	IndexCellSize float64 `yaml:"index_cell_size"`

	// Workers sets how many goroutines check queries of the same tick for
	// crossings. Roads are still accepted one at a time in order, so the
	// result is the same regardless. 1 or less runs everything serially.
	// If set, the Outline given to New must be safe for concurrent use.
	Workers int `yaml:"workers"`
}

// Area is a rectangle in world units
type Area struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// rect returns the area as an r2.Rect
func (a *Area) rect() r2.Rect {
	return geom.Rect(a.MinX, a.MinY, a.MaxX, a.MaxY)
}

// DefaultConfig returns a reasonable default GrowthConfig; mostly right
// angled branching with a slow falloff.
func DefaultConfig() *GrowthConfig {
	return &GrowthConfig{
		MaxLifetime:    8,
		BranchAngles:   [2]float64{90, 90},
		LengthFalloff:  0.9,
		TimerIncrement: 1,
		BranchDelay:    1,
		MinLength:      0.5,
		IndexCellSize:  20,
		Workers:        1,
	}
}

// LoadConfig reads a yaml file over the top of DefaultConfig, so the file
// need only set what it wants to change.
func LoadConfig(fpath string) (*GrowthConfig, error) {
	cfg := DefaultConfig()
	err := cfg.Load(fpath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a yaml file over the top of c; settings the file doesn't
// mention keep their current values. The result is validated.
func (c *GrowthConfig) Load(fpath string) error {
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", fpath)
	}

	err = yaml.Unmarshal(data, c)
	if err != nil {
		return errors.Wrapf(err, "failed to parse %s", fpath)
	}

	return c.Validate()
}

// Validate returns an error wrapping ErrInvalidConfig if any setting is out
// of range.
func (c *GrowthConfig) Validate() error {
	if c.MaxLifetime < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max lifetime %d is negative", c.MaxLifetime)
	}
	if !geom.Finite(c.BranchAngles[0], c.BranchAngles[1]) {
		return errors.Wrapf(ErrInvalidConfig, "branch angles %v are not finite", c.BranchAngles)
	}
	if !geom.Finite(c.LengthFalloff) || c.LengthFalloff <= 0 || c.LengthFalloff > 1 {
		return errors.Wrapf(ErrInvalidConfig, "length falloff %v not in (0,1]", c.LengthFalloff)
	}
	if c.TimerIncrement < 1 {
		return errors.Wrapf(ErrInvalidConfig, "timer increment %d is less than 1", c.TimerIncrement)
	}
	if c.BranchDelay < 0 {
		return errors.Wrapf(ErrInvalidConfig, "branch delay %d is negative", c.BranchDelay)
	}
	// the deepest turning branch is timed at (MaxLifetime+1) steps, which
	// must fit in an int
	if c.BranchDelay > math.MaxInt-c.TimerIncrement {
		return errors.Wrapf(ErrInvalidConfig, "timer increment %d plus branch delay %d overflows", c.TimerIncrement, c.BranchDelay)
	}
	if step := c.TimerIncrement + c.BranchDelay; c.MaxLifetime >= math.MaxInt/step {
		return errors.Wrapf(ErrInvalidConfig, "max lifetime %d with %d ticks per generation overflows", c.MaxLifetime, step)
	}
	if !geom.Finite(c.MinLength) || c.MinLength < 0 {
		return errors.Wrapf(ErrInvalidConfig, "min length %v is invalid", c.MinLength)
	}
	if !geom.Finite(c.AngleJitter) || c.AngleJitter < 0 {
		return errors.Wrapf(ErrInvalidConfig, "angle jitter %v is invalid", c.AngleJitter)
	}
	if !geom.Finite(c.IndexCellSize) {
		return errors.Wrapf(ErrInvalidConfig, "index cell size %v is not finite", c.IndexCellSize)
	}
	if c.Bounds != nil {
		b := c.Bounds
		if !geom.Finite(b.MinX, b.MinY, b.MaxX, b.MaxY) {
			return errors.Wrapf(ErrInvalidConfig, "bounds %+v are not finite", *b)
		}
		if b.MaxX <= b.MinX || b.MaxY <= b.MinY {
			return errors.Wrapf(ErrInvalidConfig, "bounds %+v have no area", *b)
		}
	}
	return nil
}
