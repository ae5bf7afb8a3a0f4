package physics

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrNonFinite is returned when a body ends a scan with a NaN or infinite position
var ErrNonFinite = errors.New("body state is not finite")

// Scanner runs the pairwise overlap scan of every region concurrently, one task per region
type Scanner struct {
	// Workers caps concurrent region tasks; <= 0 runs all regions at once
	Workers int
}

// Scan displaces every overlapping pair inside each region and records the pair in reg.
// It returns once every region task has finished.
func (s *Scanner) Scan(regions []Region, reg *Registry) error {
	var g errgroup.Group
	if s.Workers > 0 {
		g.SetLimit(s.Workers)
	}

	for i := range regions {
		region := &regions[i]
		g.Go(func() error {
			return scanRegion(region, reg)
		})
	}

	return g.Wait()
}

// scanRegion checks every ordered pair (body, other) of the region
func scanRegion(region *Region, reg *Registry) error {
	for _, body := range region.Bodies {
		for _, other := range region.Bodies {
			if body == other {
				continue
			}
			displaced, finite := displaceLocked(body, other)
			if !displaced {
				continue
			}
			if !finite {
				return fmt.Errorf("%w: region %d, pair %d/%d", ErrNonFinite, region.Index, body.id, other.id)
			}
			reg.Insert(body, other)
		}
	}
	return nil
}

// displaceLocked runs Displace holding both body locks, acquired in id order.
// A body sitting on a cell edge belongs to several regions scanned in parallel.
// finite is false when either body left the displacement with a NaN or Inf position.
func displaceLocked(a, b *Body) (displaced, finite bool) {
	first, second := a, b
	if b.id < a.id {
		first, second = b, a
	}
	first.mu.Lock()
	second.mu.Lock()
	defer first.mu.Unlock()
	defer second.mu.Unlock()

	if !Displace(a, b) {
		return false, true
	}
	return true, a.finite() && b.finite()
}
