package roadgraph

import (
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *GrowthConfig)
		ok     bool
	}{
		{"default", func(c *GrowthConfig) {}, true},
		{"zero lifetime", func(c *GrowthConfig) { c.MaxLifetime = 0 }, true},
		{"negative lifetime", func(c *GrowthConfig) { c.MaxLifetime = -1 }, false},
		{"nan branch angle", func(c *GrowthConfig) { c.BranchAngles[1] = math.NaN() }, false},
		{"falloff of one", func(c *GrowthConfig) { c.LengthFalloff = 1 }, true},
		{"falloff of zero", func(c *GrowthConfig) { c.LengthFalloff = 0 }, false},
		{"falloff over one", func(c *GrowthConfig) { c.LengthFalloff = 1.1 }, false},
		{"nan falloff", func(c *GrowthConfig) { c.LengthFalloff = math.NaN() }, false},
		{"zero timer increment", func(c *GrowthConfig) { c.TimerIncrement = 0 }, false},
		{"negative branch delay", func(c *GrowthConfig) { c.BranchDelay = -2 }, false},
		{"huge timer increment", func(c *GrowthConfig) { c.TimerIncrement = math.MaxInt }, false},
		{"huge branch delay", func(c *GrowthConfig) { c.BranchDelay = math.MaxInt }, false},
		{"huge max lifetime", func(c *GrowthConfig) { c.MaxLifetime = math.MaxInt }, false},
		{"timers overflow at depth", func(c *GrowthConfig) {
			c.MaxLifetime = 4
			c.TimerIncrement = math.MaxInt / 8
			c.BranchDelay = math.MaxInt / 8
		}, false},
		{"timers just fit", func(c *GrowthConfig) {
			c.MaxLifetime = 3
			c.TimerIncrement = math.MaxInt / 16
			c.BranchDelay = math.MaxInt / 16
		}, true},
		{"negative min length", func(c *GrowthConfig) { c.MinLength = -1 }, false},
		{"negative jitter", func(c *GrowthConfig) { c.AngleJitter = -1 }, false},
		{"infinite cell size", func(c *GrowthConfig) { c.IndexCellSize = math.Inf(1) }, false},
		{"no index", func(c *GrowthConfig) { c.IndexCellSize = 0 }, true},
		{"bounds", func(c *GrowthConfig) { c.Bounds = &Area{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1} }, true},
		{"flat bounds", func(c *GrowthConfig) { c.Bounds = &Area{MinX: -1, MinY: 1, MaxX: 1, MaxY: 1} }, false},
		{"nan bounds", func(c *GrowthConfig) { c.Bounds = &Area{MinX: math.NaN(), MaxX: 1, MaxY: 1} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if errors.Cause(err) != ErrInvalidConfig {
					t.Errorf("Validate() = %v, want cause ErrInvalidConfig", err)
				}
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "growth.yaml")
	data := []byte(`
max_lifetime: 4
branch_angles: [30, 60]
length_falloff: 0.75
workers: 3
bounds:
  min_x: -10
  min_y: -20
  max_x: 10
  max_y: 20
`)
	if err := ioutil.WriteFile(fpath, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(fpath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.MaxLifetime != 4 {
		t.Errorf("MaxLifetime = %d, want 4", cfg.MaxLifetime)
	}
	if cfg.BranchAngles != [2]float64{30, 60} {
		t.Errorf("BranchAngles = %v, want [30 60]", cfg.BranchAngles)
	}
	if cfg.LengthFalloff != 0.75 {
		t.Errorf("LengthFalloff = %v, want 0.75", cfg.LengthFalloff)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.Bounds == nil || *cfg.Bounds != (Area{MinX: -10, MinY: -20, MaxX: 10, MaxY: 20}) {
		t.Errorf("Bounds = %+v", cfg.Bounds)
	}

	// untouched settings keep their defaults
	def := DefaultConfig()
	if cfg.TimerIncrement != def.TimerIncrement || cfg.IndexCellSize != def.IndexCellSize {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	} else if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("LoadConfig() = %v, want cause not-exist", err)
	}

	garbled := filepath.Join(dir, "garbled.yaml")
	if err := ioutil.WriteFile(garbled, []byte("max_lifetime: [nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(garbled); err == nil {
		t.Error("expected error for unparsable yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := ioutil.WriteFile(invalid, []byte("timer_increment: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadConfig(invalid)
	if errors.Cause(err) != ErrInvalidConfig {
		t.Errorf("LoadConfig() = %v, want cause ErrInvalidConfig", err)
	}
}

func TestLoadOverBase(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "growth.yaml")
	if err := ioutil.WriteFile(fpath, []byte("max_lifetime: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.AngleJitter = 15
	cfg.Bounds = &Area{MinX: -250, MinY: -250, MaxX: 250, MaxY: 250}

	if err := cfg.Load(fpath); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxLifetime != 5 {
		t.Errorf("MaxLifetime = %d, want 5", cfg.MaxLifetime)
	}
	if cfg.AngleJitter != 15 {
		t.Errorf("AngleJitter = %v, want 15 kept from base", cfg.AngleJitter)
	}
	if cfg.Bounds == nil || cfg.Bounds.MaxX != 250 {
		t.Errorf("Bounds = %+v, want kept from base", cfg.Bounds)
	}
}
