package physics

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestNewWorld_Validation(t *testing.T) {
	bodies := []*Body{NewBody(1, 10, 10, 0, 0, 5, 0)}

	if _, err := NewWorld(Settings{Width: 100, Height: 100, Regions: 3}, bodies); !errors.Is(err, ErrRegionCount) {
		t.Errorf("Expected ErrRegionCount, got %v", err)
	}
	if _, err := NewWorld(Settings{Width: 0, Height: 100, Regions: 4}, bodies); !errors.Is(err, ErrBounds) {
		t.Errorf("Expected ErrBounds, got %v", err)
	}

	dup := append(bodies, NewBody(1, 50, 50, 0, 0, 5, 0))
	if _, err := NewWorld(Settings{Width: 100, Height: 100, Regions: 4}, dup); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Expected ErrDuplicateID, got %v", err)
	}

	w, err := NewWorld(Settings{Width: 100, Height: 80, Regions: 4}, bodies)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	if w.Width() != 100 || w.Height() != 80 || len(w.RegionBounds()) != 4 || len(w.Bodies()) != 1 {
		t.Errorf("Unexpected world state")
	}
}

// TestScan_SharedPairRegisteredOnce tests that a pair found by two regions yields one entry
func TestScan_SharedPairRegisteredOnce(t *testing.T) {
	p, _ := NewPartitioner(100, 100, 4)
	a := NewBody(1, 46, 25, 1, 0, 5, 10)
	b := NewBody(2, 54, 25, -1, 0, 5, 10)

	regions := p.Partition([]*Body{a, b})
	if len(regions[0].Bodies) != 2 || len(regions[1].Bodies) != 2 {
		t.Fatalf("Expected both bodies in regions 0 and 1")
	}

	reg := NewRegistry()
	s := Scanner{}
	if err := s.Scan(regions, reg); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if reg.Len() != 1 {
		t.Errorf("Expected 1 unique pair, got %d", reg.Len())
	}
	if reg.Discovered() < 2 {
		t.Errorf("Expected the pair discovered by both regions, got %d", reg.Discovered())
	}
	if d := a.DistanceBetweenCenters(b); d != 10 {
		t.Errorf("Expected bodies tangent, got distance %v", d)
	}
}

// TestScan_NonFinite tests that a displacement producing NaN fails the scan
func TestScan_NonFinite(t *testing.T) {
	a := NewBody(1, 10, 10, 0, 0, math.Inf(1), 0)
	b := NewBody(2, 12, 10, 0, 0, 5, 0)

	s := Scanner{Workers: 1}
	err := s.Scan([]Region{{Bodies: []*Body{a, b}}}, NewRegistry())
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("Expected ErrNonFinite, got %v", err)
	}
}

// TestStep_OneResponsePerPair tests that a pair seen by several regions is resolved once
func TestStep_OneResponsePerPair(t *testing.T) {
	a := NewBody(1, 46, 25, 1, 0, 5, 10)
	b := NewBody(2, 54, 25, -1, 0, 5, 10)

	w, err := NewWorld(Settings{Width: 100, Height: 100, Regions: 4}, []*Body{a, b})
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}

	stats, err := w.Step(0)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	if stats.Pairs != 1 {
		t.Errorf("Expected 1 response, got %d", stats.Pairs)
	}
	if stats.Discovered < 2 {
		t.Errorf("Expected duplicate discoveries, got %d", stats.Discovered)
	}
	if stats.Regions != 4 || stats.Assigned != 4 {
		t.Errorf("Expected 4 regions and 4 assignments, got %d and %d", stats.Regions, stats.Assigned)
	}

	// A double response would restore the approach velocities
	if !approx(a.Vel.X, -10, tolerance) || !approx(b.Vel.X, 10, tolerance) {
		t.Errorf("Expected single exchange, got %v and %v", a.Vel.X, b.Vel.X)
	}
}

// TestStep_BorderBeforeMove tests that the border pass runs on last tick's position
func TestStep_BorderBeforeMove(t *testing.T) {
	b := NewBody(1, 4, 50, -1, 0, 5, 10)

	w, _ := NewWorld(Settings{Width: 100, Height: 100, Regions: 1}, []*Body{b})
	stats, err := w.Step(0.5)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	if stats.BorderHits != 1 {
		t.Errorf("Expected 1 border hit, got %d", stats.BorderHits)
	}
	// Repositioned to x = 5, then moved by 10 * 0.5
	if b.X() != 10 || b.Vel.X != 10 {
		t.Errorf("Expected x=10 vx=10, got x=%v vx=%v", b.X(), b.Vel.X)
	}
}

func newPopulation(seed uint64) []*Body {
	rng := rand.New(rand.NewPCG(seed, seed))
	bodies := make([]*Body, 200)
	for i := range bodies {
		bodies[i] = NewBody(uint32(i),
			20+rng.Float64()*(testWidth-60), 20+rng.Float64()*(testHeight-60),
			rng.Float64()-0.5, rng.Float64()-0.5,
			5+rng.Float64()*5, 30+rng.Float64()*30)
	}
	return bodies
}

// TestStep_Deterministic tests that a single-worker scan reproduces the same trajectory
func TestStep_Deterministic(t *testing.T) {
	settings := Settings{Width: testWidth, Height: testHeight, Regions: 16, Workers: 1}

	w1, err := NewWorld(settings, newPopulation(42))
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	w2, _ := NewWorld(settings, newPopulation(42))

	for i := 0; i < 100; i++ {
		if _, err := w1.Step(1.0 / 60); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		if _, err := w2.Step(1.0 / 60); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	for i, b := range w1.Bodies() {
		o := w2.Bodies()[i]
		if b.Pos != o.Pos || b.Vel != o.Vel {
			t.Fatalf("Body %d diverged: %v/%v vs %v/%v", i, b.Pos, b.Vel, o.Pos, o.Vel)
		}
	}
}

// TestStep_ParallelStaysFinite runs the concurrent scan over a dense population
func TestStep_ParallelStaysFinite(t *testing.T) {
	w, err := NewWorld(Settings{Width: testWidth, Height: testHeight, Regions: 16}, newPopulation(9))
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}

	for i := 0; i < 200; i++ {
		if _, err := w.Step(1.0 / 60); err != nil {
			t.Fatalf("Step %d failed: %v", i, err)
		}
	}

	for _, b := range w.Bodies() {
		if !b.finite() {
			t.Fatalf("Body %d is not finite: %v %v", b.ID(), b.Pos, b.Vel)
		}
	}
}
