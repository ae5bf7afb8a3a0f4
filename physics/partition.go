package physics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrRegionCount is returned when the region count is not a perfect square >= 1
	ErrRegionCount = errors.New("region count must be a perfect square >= 1")

	// ErrBounds is returned for a non-positive domain width or height
	ErrBounds = errors.New("domain width and height must be positive")
)

// Region is one cell of the partition grid and the bodies assigned to it for a single tick
type Region struct {
	// Col and Row locate the cell; Index is Row*side + Col
	Col, Row, Index int

	Bounds r2.Box
	Bodies []*Body
}

// Partitioner divides the domain into a side × side grid of equal rectangles
type Partitioner struct {
	side  int
	cells []r2.Box
}

// RegionSide returns the per-axis cell count for a region count, or ErrRegionCount
func RegionSide(regions int) (int, error) {
	if regions < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrRegionCount, regions)
	}
	side := int(math.Round(math.Sqrt(float64(regions))))
	if side*side != regions {
		return 0, fmt.Errorf("%w: got %d", ErrRegionCount, regions)
	}
	return side, nil
}

// NewPartitioner precomputes the cell rectangles for a width × height domain
func NewPartitioner(width, height float64, regions int) (*Partitioner, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: %vx%v", ErrBounds, width, height)
	}
	side, err := RegionSide(regions)
	if err != nil {
		return nil, err
	}

	cellW := width / float64(side)
	cellH := height / float64(side)

	cells := make([]r2.Box, 0, regions)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			cells = append(cells, r2.Box{
				Min: r2.Vec{X: float64(col) * cellW, Y: float64(row) * cellH},
				Max: r2.Vec{X: float64(col+1) * cellW, Y: float64(row+1) * cellH},
			})
		}
	}

	return &Partitioner{side: side, cells: cells}, nil
}

// Side returns the number of cells per axis
func (p *Partitioner) Side() int {
	return p.side
}

// Bounds returns the cell rectangles in row-major order
func (p *Partitioner) Bounds() []r2.Box {
	out := make([]r2.Box, len(p.cells))
	copy(out, p.cells)
	return out
}

// Partition groups bodies by cell using the bounding-square corner test.
// A body straddling a cell edge lands in every region holding one of its corners,
// and a body with all four corners outside the domain lands in none.
func (p *Partitioner) Partition(bodies []*Body) []Region {
	regions := make([]Region, len(p.cells))
	for i, cell := range p.cells {
		regions[i] = Region{
			Col:    i % p.side,
			Row:    i / p.side,
			Index:  i,
			Bounds: cell,
		}
		for _, b := range bodies {
			if b.ContainedIn(cell.Min, cell.Max) {
				regions[i].Bodies = append(regions[i].Bodies, b)
			}
		}
	}
	return regions
}
