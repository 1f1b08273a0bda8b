package entity

// Size is a width/height pair in pixels
type Size struct {
	W float64
	H float64
}

// Body represents the physical body of a moving entity.
// X, Y is the top-left corner; velocities are px/s.
type Body struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
}

// Box returns the current bounding box
func (b *Body) Box() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Bottom returns the y coordinate of the body's lower edge
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// Resize changes the box size and keeps the lower edge on the ground line
func (b *Body) Resize(s Size, ground float64) {
	b.W = s.W
	b.H = s.H
	b.Y = ground - s.H
}

// OffField reports whether the body is fully outside the horizontal bounds
func (b *Body) OffField(field Playfield) bool {
	return b.X+b.W < 0 || b.X > field.Width
}
