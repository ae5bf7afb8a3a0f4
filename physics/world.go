package physics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDuplicateID is returned when two bodies share an id
var ErrDuplicateID = errors.New("duplicate body id")

// Settings describes the simulation domain
type Settings struct {
	Width, Height int

	// Regions must be a perfect square; the grid has sqrt(Regions) cells per axis
	Regions int

	// Workers caps concurrent region scans; <= 0 means one task per region
	Workers int
}

// TickStats summarizes one Step
type TickStats struct {
	BorderHits int // bodies repositioned against an edge
	Regions    int // regions scanned
	Assigned   int // body references across all regions
	Discovered int // displaced pairs found, duplicates included
	Pairs      int // unique pairs that received a collision response
}

// World owns the fixed body population and advances it one tick at a time
type World struct {
	width, height float64

	bodies      []*Body
	partitioner *Partitioner
	scanner     Scanner
}

// NewWorld validates the settings and the population. Configuration defects are
// reported here, never from Step.
func NewWorld(s Settings, bodies []*Body) (*World, error) {
	partitioner, err := NewPartitioner(float64(s.Width), float64(s.Height), s.Regions)
	if err != nil {
		return nil, fmt.Errorf("partition: %w", err)
	}

	seen := make(map[uint32]struct{}, len(bodies))
	for _, b := range bodies {
		if _, ok := seen[b.id]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, b.id)
		}
		seen[b.id] = struct{}{}
	}

	return &World{
		width:       float64(s.Width),
		height:      float64(s.Height),
		bodies:      bodies,
		partitioner: partitioner,
		scanner:     Scanner{Workers: s.Workers},
	}, nil
}

// Bodies returns the population. The slice is shared; do not modify it while stepping.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Width returns the domain width
func (w *World) Width() float64 {
	return w.width
}

// Height returns the domain height
func (w *World) Height() float64 {
	return w.height
}

// RegionBounds returns the partition cell rectangles in row-major order
func (w *World) RegionBounds() []r2.Box {
	return w.partitioner.Bounds()
}

// Step advances the simulation by dt seconds:
//  1. border collision then move, per body
//  2. partition into regions
//  3. parallel overlap scan per region, joined before continuing
//  4. one elastic response per unique colliding pair
func (w *World) Step(dt float64) (TickStats, error) {
	var stats TickStats

	for _, b := range w.bodies {
		if b.ProcessBorderCollision(w.width, w.height) {
			stats.BorderHits++
		}
		b.Move(dt)
	}

	regions := w.partitioner.Partition(w.bodies)
	stats.Regions = len(regions)
	for _, r := range regions {
		stats.Assigned += len(r.Bodies)
	}

	reg := NewRegistry()
	if err := w.scanner.Scan(regions, reg); err != nil {
		return stats, fmt.Errorf("scan: %w", err)
	}
	stats.Discovered = reg.Discovered()

	// Pairs sharing a body resolve in key order
	for _, p := range reg.Pairs() {
		Collide(p.A, p.B)
		stats.Pairs++
	}

	return stats, nil
}
