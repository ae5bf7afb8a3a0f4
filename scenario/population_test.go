package scenario

import (
	"math"
	"testing"

	"ballcollision/physics"
)

func TestPopulation_Ranges(t *testing.T) {
	cfg := DefaultConfig()
	bodies := Population(cfg, NewRand(1))

	if len(bodies) < cfg.MinBodies || len(bodies) >= cfg.MaxBodies {
		t.Fatalf("Expected count in [%d, %d), got %d", cfg.MinBodies, cfg.MaxBodies, len(bodies))
	}

	for i, b := range bodies {
		if b.ID() != uint32(i) {
			t.Errorf("Expected id %d, got %d", i, b.ID())
		}
		if b.X() < 0 || b.X() >= float64(cfg.Width-cfg.SpawnMargin) ||
			b.Y() < 0 || b.Y() >= float64(cfg.Height-cfg.SpawnMargin) {
			t.Errorf("Body %d spawned outside range: (%v, %v)", i, b.X(), b.Y())
		}
		if b.Radius() < float64(cfg.MinRadius) || b.Radius() >= float64(cfg.MaxRadius) {
			t.Errorf("Body %d radius out of range: %v", i, b.Radius())
		}
	}
}

// TestPopulation_FastFirstBody tests that only the first body moves at FastSpeed
func TestPopulation_FastFirstBody(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinBodies, cfg.MaxBodies = 50, 51

	// Scan seeds until the first body has a non-zero direction
	for seed := uint64(1); seed < 100; seed++ {
		bodies := Population(cfg, NewRand(seed))
		speed := speedOf(bodies[0])
		if speed == 0 {
			continue
		}
		if diff := speed - cfg.FastSpeed; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("Expected first body speed %v, got %v", cfg.FastSpeed, speed)
		}
		for _, b := range bodies[1:] {
			if s := speedOf(b); s >= float64(cfg.MaxSpeed) {
				t.Errorf("Body %d too fast: %v", b.ID(), s)
			}
		}
		return
	}
	t.Fatalf("No seed produced a moving first body")
}

func speedOf(b *physics.Body) float64 {
	return math.Hypot(b.Vel.X, b.Vel.Y)
}

// TestPopulation_Seeded tests that a fixed seed reproduces the population
func TestPopulation_Seeded(t *testing.T) {
	cfg := DefaultConfig()
	a := Population(cfg, NewRand(7))
	b := Population(cfg, NewRand(7))

	if len(a) != len(b) {
		t.Fatalf("Expected equal counts, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Pos != b[i].Pos || a[i].Vel != b[i].Vel || a[i].Radius() != b[i].Radius() {
			t.Fatalf("Body %d differs", i)
		}
	}

	if _, err := physics.NewWorld(cfg.Settings(), a); err != nil {
		t.Errorf("Expected population to build a world: %v", err)
	}
}
