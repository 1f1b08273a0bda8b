package entity

// SizeClass is the player's power-up size
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeLarge
)

// String returns the string representation of the size class
func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// JumpState tracks whether the player is on the ground
type JumpState int

const (
	Grounded JumpState = iota
	Airborne
)

// String returns the string representation of the jump state
func (s JumpState) String() string {
	if s == Airborne {
		return "airborne"
	}
	return "grounded"
}

// JumpModel drives vertical motion while the player is airborne.
// Implementations live in the system package.
type JumpModel interface {
	// Launch sets up the initial upward motion on liftoff
	Launch(p *Player)
	// Advance moves the player vertically for one tick and reports
	// whether the jump has run its full course
	Advance(p *Player, dt float64) (done bool)
	// Rebound gives a small upward bounce after a stomp
	Rebound(p *Player)
}

// PlayerSpec holds the fixed player parameters
type PlayerSpec struct {
	Small          Size
	Large          Size
	Speed          float64 // px/s
	Lives          int
	StompTolerance float64 // px the feet may sink below an enemy's top and still stomp
}

// Player is the controllable character
type Player struct {
	Body

	Size  SizeClass
	State JumpState
	Lives int
	Coins int // tally toward the next extra life

	Invincible     bool
	InvincibleTime float64 // remaining seconds

	// JumpTick is the frame counter used by counter-based jump models
	JumpTick int

	spec  PlayerSpec
	field Playfield
	jump  JumpModel
}

// NewPlayer creates a small, grounded player at x
func NewPlayer(x float64, field Playfield, spec PlayerSpec, jump JumpModel) *Player {
	p := &Player{
		Lives: spec.Lives,
		spec:  spec,
		field: field,
		jump:  jump,
	}
	p.X = x
	p.Resize(spec.Small, field.Ground)
	return p
}

// Spec returns the player's fixed parameters
func (p *Player) Spec() PlayerSpec {
	return p.spec
}

// Field returns the playfield the player is bound to
func (p *Player) Field() Playfield {
	return p.field
}

// SetHorizontalIntent moves the player for this tick and clamps to the playfield
func (p *Player) SetHorizontalIntent(dir Direction, dt float64) {
	p.VX = float64(dir) * p.spec.Speed
	p.X += p.VX * dt

	maxX := p.field.Width - p.W
	if p.X < 0 {
		p.X = 0
	}
	if p.X > maxX {
		p.X = maxX
	}
}

// RequestJump starts a jump. It reports false when already airborne.
func (p *Player) RequestJump() bool {
	if p.State == Airborne {
		return false
	}
	p.State = Airborne
	p.jump.Launch(p)
	return true
}

// IntegratePhysics advances vertical motion and lands on the ground line
func (p *Player) IntegratePhysics(dt float64) {
	if p.State != Airborne {
		return
	}
	done := p.jump.Advance(p, dt)
	if done || p.Bottom() >= p.field.Ground {
		p.land()
	}
}

// Rebound bounces the player upward after a successful stomp
func (p *Player) Rebound() {
	p.State = Airborne
	p.jump.Rebound(p)
}

// TakeEnemyHit applies one hit. Large players shrink, small players lose a life.
// It reports whether the hit changed anything (false while invincible).
func (p *Player) TakeEnemyHit() bool {
	if p.Invincible {
		return false
	}
	if p.Size == SizeLarge {
		p.setSize(SizeSmall)
		return true
	}
	if p.Lives > 0 {
		p.Lives--
	}
	return true
}

// Grow promotes the player to the large size class
func (p *Player) Grow() {
	p.setSize(SizeLarge)
}

// GrantExtraLife adds one life
func (p *Player) GrantExtraLife() {
	p.Lives++
}

// ActivateInvincibility starts (or restarts) the invincibility countdown
func (p *Player) ActivateInvincibility(duration float64) {
	p.Invincible = true
	p.InvincibleTime = duration
}

// TickStatus counts down timed status effects
func (p *Player) TickStatus(dt float64) {
	if !p.Invincible {
		return
	}
	p.InvincibleTime -= dt
	if p.InvincibleTime <= 0 {
		p.Invincible = false
		p.InvincibleTime = 0
	}
}

// IsStomping reports whether the player is landing on top of box rather than walking into it
func (p *Player) IsStomping(box Rect) bool {
	if p.State != Airborne {
		return false
	}
	return p.Bottom() <= box.Y+p.spec.StompTolerance && p.Box().OverlapsX(box)
}

// IsDead reports whether the player has no lives left
func (p *Player) IsDead() bool {
	return p.Lives <= 0
}

func (p *Player) setSize(s SizeClass) {
	if p.Size == s {
		return
	}
	p.Size = s
	size := p.spec.Small
	if s == SizeLarge {
		size = p.spec.Large
	}
	p.Resize(size, p.field.Ground)
	// Re-anchoring puts the feet on the ground, so any jump in progress ends here.
	p.land()
}

func (p *Player) land() {
	p.Y = p.field.Ground - p.H
	p.VY = 0
	p.JumpTick = 0
	p.State = Grounded
}
