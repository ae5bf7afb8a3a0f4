package physics

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Epsilon is the center distance below which two bodies are treated as coincident
const Epsilon = 1e-9

// contactNormal returns the unit vector pointing from a's center toward b's center.
// Coincident centers fall back to the x axis, oriented so the lower id sits on the negative side.
func contactNormal(a, b *Body) (r2.Vec, float64) {
	d := r2.Sub(b.Pos, a.Pos)
	dist := r2.Norm(d)
	if dist < Epsilon {
		if a.id < b.id {
			return r2.Vec{X: 1}, dist
		}
		return r2.Vec{X: -1}, dist
	}
	return r2.Scale(1/dist, d), dist
}

// Displace pushes two overlapping bodies apart along the line of centers until they are
// exactly tangent. The correction is split evenly, independent of mass.
// Returns false without touching either body when they do not overlap.
func Displace(a, b *Body) bool {
	if !a.Overlaps(b) {
		return false
	}

	n, dist := contactNormal(a, b)

	// Negative: how far each body has to retreat
	each := (dist - (a.radius + b.radius)) * 0.5

	// n points a→b, so a moves along -n and b along +n
	a.Pos = r2.Add(a.Pos, r2.Scale(each, n))
	b.Pos = r2.Sub(b.Pos, r2.Scale(each, n))

	return true
}

// Collide exchanges momentum between two bodies with the 2D elastic impulse along the
// contact normal. Calling it twice for the same contact applies the impulse twice.
func Collide(a, b *Body) {
	n, _ := contactNormal(a, b)

	k := 2 * r2.Dot(n, r2.Sub(a.Vel, b.Vel)) / (a.mass + b.mass)

	a.Vel = r2.Sub(a.Vel, r2.Scale(k*b.mass, n))
	b.Vel = r2.Add(b.Vel, r2.Scale(k*a.mass, n))
}
