package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Rect is an axis-aligned box in pixels. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// CenteredRect returns a w×h box centered on (cx, cy)
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the lower edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// OverlapsX reports whether the horizontal ranges intersect
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X
}

// Playfield is the fixed world every entity lives in
type Playfield struct {
	Width  float64
	Height float64
	Ground float64 // y of the ground line; grounded entities have Bottom() == Ground
}

// Direction is a horizontal travel direction
type Direction int

const (
	DirLeft  Direction = -1
	DirNone  Direction = 0
	DirRight Direction = 1
)

// Input is the intent sample taken once per tick
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// Direction resolves the horizontal intent. Holding both keys cancels out.
func (in Input) Direction() Direction {
	switch {
	case in.Left && !in.Right:
		return DirLeft
	case in.Right && !in.Left:
		return DirRight
	default:
		return DirNone
	}
}

// RandomSource is the subset of *rand.Rand used by entities and the spawner
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}
