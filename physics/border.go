package physics

// BorderCollision identifies which domain edge a body crossed
type BorderCollision int

const (
	BorderNone BorderCollision = iota
	BorderLeft
	BorderRight
	BorderBottom
	BorderUpper
)

// String returns the edge name
func (c BorderCollision) String() string {
	switch c {
	case BorderLeft:
		return "left"
	case BorderRight:
		return "right"
	case BorderBottom:
		return "bottom"
	case BorderUpper:
		return "upper"
	default:
		return "none"
	}
}

// FindBorderCollision returns the first violated edge in the order
// left, right, bottom, upper. Corner violations resolve to whichever edge is checked first.
func (b *Body) FindBorderCollision(width, height float64) BorderCollision {
	switch {
	case b.Pos.X-b.radius <= 0:
		return BorderLeft
	case b.Pos.X+2*b.radius >= width:
		return BorderRight
	case b.Pos.Y+2*b.radius >= height:
		return BorderBottom
	case b.Pos.Y <= b.radius:
		return BorderUpper
	}
	return BorderNone
}

// ProcessBorderCollision repositions the body against the violated edge and inverts
// the matching velocity component. Returns false when no edge was violated.
func (b *Body) ProcessBorderCollision(width, height float64) bool {
	switch b.FindBorderCollision(width, height) {
	case BorderLeft:
		b.Pos.X = b.radius
		b.Vel.X = -b.Vel.X
	case BorderRight:
		b.Pos.X = width - 2*b.radius
		b.Vel.X = -b.Vel.X
	case BorderBottom:
		b.Pos.Y = height - 2*b.radius
		b.Vel.Y = -b.Vel.Y
	case BorderUpper:
		b.Pos.Y = b.radius
		b.Vel.Y = -b.Vel.Y
	default:
		return false
	}
	return true
}
