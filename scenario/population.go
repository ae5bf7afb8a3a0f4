package scenario

import (
	"math/rand/v2"
	"time"

	"ballcollision/physics"
)

// NewRand returns the population generator for a seed; 0 seeds from the clock
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Population creates the initial bodies. Ids follow creation order starting at 0.
func Population(cfg Config, rng *rand.Rand) []*physics.Body {
	count := cfg.MinBodies + rng.IntN(cfg.MaxBodies-cfg.MinBodies)
	bodies := make([]*physics.Body, 0, count)

	for i := 0; i < count; i++ {
		x := float64(rng.IntN(cfg.Width - cfg.SpawnMargin))
		y := float64(rng.IntN(cfg.Height - cfg.SpawnMargin))

		// Direction components in {-5/3 .. 4/3}; may be zero
		dirX := float64(-5+rng.IntN(10)) / 3
		dirY := float64(-5+rng.IntN(10)) / 3

		radius := float64(cfg.MinRadius + rng.IntN(cfg.MaxRadius-cfg.MinRadius))

		speed := cfg.FastSpeed
		if i > 0 {
			speed = float64(cfg.MinSpeed + rng.IntN(cfg.MaxSpeed-cfg.MinSpeed))
		}

		bodies = append(bodies, physics.NewBody(uint32(i), x, y, dirX, dirY, radius, speed))
	}

	return bodies
}
