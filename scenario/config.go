package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ballcollision/physics"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds simulation and window configuration
type Config struct {
	// Width and Height of the simulation domain (and window) in pixels
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Regions is the partition cell count; must be a perfect square
	Regions int `yaml:"regions"`

	// Workers caps concurrent region scans (0 = one per region)
	Workers int `yaml:"workers"`

	// Population size is drawn from [MinBodies, MaxBodies)
	MinBodies int `yaml:"min_bodies"`
	MaxBodies int `yaml:"max_bodies"`

	// Radius is drawn from [MinRadius, MaxRadius)
	MinRadius int `yaml:"min_radius"`
	MaxRadius int `yaml:"max_radius"`

	// Speed is drawn from [MinSpeed, MaxSpeed) in pixels per second
	MinSpeed int `yaml:"min_speed"`
	MaxSpeed int `yaml:"max_speed"`

	// FastSpeed is the speed of the first body
	FastSpeed float64 `yaml:"fast_speed"`

	// SpawnMargin keeps spawn positions away from the right and bottom edges
	SpawnMargin int `yaml:"spawn_margin"`

	// Seed for population generation; 0 picks a time-based seed
	Seed uint64 `yaml:"seed"`

	// MaxDeltaTime clamps the per-frame step in seconds
	MaxDeltaTime float64 `yaml:"max_delta_time"`

	// FPSWindow is the number of frames averaged for the FPS readout
	FPSWindow int `yaml:"fps_window"`

	// ProfileBelowFPS triggers a CPU profile and trace capture when the
	// averaged frame rate falls under it (0 disables)
	ProfileBelowFPS float64 `yaml:"profile_below_fps"`
	ProfileDir      string  `yaml:"profile_dir"`

	Title    string `yaml:"title"`
	ShowGrid bool   `yaml:"show_grid"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:        1024,
		Height:       768,
		Regions:      4,
		Workers:      0,
		MinBodies:    299,
		MaxBodies:    300,
		MinRadius:    5,
		MaxRadius:    10,
		MinSpeed:     30,
		MaxSpeed:     60,
		FastSpeed:    1000,
		SpawnMargin:  50,
		Seed:         0,
		MaxDeltaTime: 0.1,
		FPSWindow:    100,
		ProfileDir:   "profiles",
		Title:        "ball collision demo",
		ShowGrid:     false,
	}
}

// Load reads a YAML file over DefaultConfig and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.Width <= c.SpawnMargin || c.Height <= c.SpawnMargin {
		return fmt.Errorf("%w: domain %dx%d must exceed spawn margin %d", ErrInvalidConfig, c.Width, c.Height, c.SpawnMargin)
	}
	if c.SpawnMargin < 0 {
		return fmt.Errorf("%w: negative spawn margin", ErrInvalidConfig)
	}
	if _, err := physics.RegionSide(c.Regions); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MinBodies < 0 || c.MaxBodies <= c.MinBodies {
		return fmt.Errorf("%w: body range [%d, %d)", ErrInvalidConfig, c.MinBodies, c.MaxBodies)
	}
	if c.MinRadius <= 0 || c.MaxRadius <= c.MinRadius {
		return fmt.Errorf("%w: radius range [%d, %d)", ErrInvalidConfig, c.MinRadius, c.MaxRadius)
	}
	if c.MinSpeed < 0 || c.MaxSpeed <= c.MinSpeed {
		return fmt.Errorf("%w: speed range [%d, %d)", ErrInvalidConfig, c.MinSpeed, c.MaxSpeed)
	}
	if c.MaxDeltaTime <= 0 {
		return fmt.Errorf("%w: max delta time %v", ErrInvalidConfig, c.MaxDeltaTime)
	}
	if c.FPSWindow < 1 {
		return fmt.Errorf("%w: fps window %d", ErrInvalidConfig, c.FPSWindow)
	}
	if c.ProfileBelowFPS < 0 || (c.ProfileBelowFPS > 0 && c.ProfileDir == "") {
		return fmt.Errorf("%w: profiling needs a non-negative threshold and a directory", ErrInvalidConfig)
	}
	return nil
}

// Settings returns the physics settings for this configuration
func (c Config) Settings() physics.Settings {
	return physics.Settings{
		Width:   c.Width,
		Height:  c.Height,
		Regions: c.Regions,
		Workers: c.Workers,
	}
}
