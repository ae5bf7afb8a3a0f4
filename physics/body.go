package physics

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// Body is a circular rigid body that translates in the simulation plane.
// Mass is derived from the radius once at construction; neither changes afterwards.
type Body struct {
	// Position of the center in world coordinates
	Pos r2.Vec

	// Velocity in units per second
	Vel r2.Vec

	id     uint32
	radius float64
	mass   float64

	// Guards Pos/Vel while a region scan displaces this body
	mu sync.Mutex
}

// NewBody creates a body centered at (x, y) moving along (dirX, dirY) at the given speed.
// The direction does not need to be normalized. A zero direction produces a body at rest.
func NewBody(id uint32, x, y, dirX, dirY, radius, speed float64) *Body {
	vel := r2.Vec{X: dirX, Y: dirY}
	if hypot := r2.Norm(vel); hypot > 0 {
		vel = r2.Scale(speed/hypot, vel)
	} else {
		vel = r2.Vec{}
	}

	return &Body{
		Pos:    r2.Vec{X: x, Y: y},
		Vel:    vel,
		id:     id,
		radius: radius,
		mass:   radius * radius * math.Pi,
	}
}

// ID returns the stable identity assigned at creation
func (b *Body) ID() uint32 {
	return b.id
}

// Radius returns the body radius
func (b *Body) Radius() float64 {
	return b.radius
}

// Mass returns radius² · π
func (b *Body) Mass() float64 {
	return b.mass
}

// X returns the center x coordinate
func (b *Body) X() float64 {
	return b.Pos.X
}

// Y returns the center y coordinate
func (b *Body) Y() float64 {
	return b.Pos.Y
}

// Move advances the position by velocity · dt
func (b *Body) Move(dt float64) {
	b.Pos = r2.Add(b.Pos, r2.Scale(dt, b.Vel))
}

// Overlaps reports whether the two circles touch or intersect
func (b *Body) Overlaps(other *Body) bool {
	sum := b.radius + other.radius
	return r2.Norm2(r2.Sub(b.Pos, other.Pos)) <= sum*sum
}

// DistanceBetweenCenters returns the Euclidean distance between the two centers.
// Callers dividing by the result must handle zero (coincident centers).
func (b *Body) DistanceBetweenCenters(other *Body) float64 {
	return r2.Norm(r2.Sub(b.Pos, other.Pos))
}

// Corners returns the four corners of the axis-aligned square circumscribing the body
func (b *Body) Corners() [4]r2.Vec {
	r := b.radius
	return [4]r2.Vec{
		{X: b.Pos.X - r, Y: b.Pos.Y - r},
		{X: b.Pos.X + r, Y: b.Pos.Y - r},
		{X: b.Pos.X + r, Y: b.Pos.Y + r},
		{X: b.Pos.X - r, Y: b.Pos.Y + r},
	}
}

// ContainedIn reports whether any corner of the bounding square lies inside the
// rectangle [start, end] (inclusive). This is a corner test, not a true
// circle-rectangle intersection: a body spanning a rectangle without any corner
// inside it is not reported.
func (b *Body) ContainedIn(start, end r2.Vec) bool {
	for _, p := range b.Corners() {
		if p.X >= start.X && p.X <= end.X && p.Y >= start.Y && p.Y <= end.Y {
			return true
		}
	}
	return false
}

// finite reports whether position and velocity hold real numbers
func (b *Body) finite() bool {
	for _, v := range [4]float64{b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
