package entity

// EnemyKind identifies an enemy variant
type EnemyKind int

const (
	KindGoomba EnemyKind = iota
	KindTurtle
)

// String returns the config name of the kind
func (k EnemyKind) String() string {
	switch k {
	case KindGoomba:
		return "goomba"
	case KindTurtle:
		return "turtle"
	default:
		return "unknown"
	}
}

// Contact is the outcome of the player touching an enemy
type Contact int

const (
	ContactNone     Contact = iota // nothing happened
	ContactHit                     // the player took a hit
	ContactShielded                // a hit was absorbed by invincibility
	ContactStomp                   // the player landed on the enemy and rebounded
)

// Enemy is the capability set every enemy variant provides
type Enemy interface {
	ID() EntityID
	Kind() EnemyKind
	Box() Rect
	Active() bool
	Deactivate()
	// Walking reports whether the enemy is in its normal walking form
	// and can therefore be knocked out by a projectile shell
	Walking() bool
	Advance(dt float64, field Playfield)
	OnPlayerContact(p *Player) Contact
}

// Projectile is implemented by enemies that can turn into a weapon against other enemies
type Projectile interface {
	IsProjectile() bool
}

// GoombaSpec holds the fixed goomba parameters
type GoombaSpec struct {
	Size      Size
	Speed     float64
	Stompable bool
}

// Goomba walks left at a constant speed and hurts the player on contact
type Goomba struct {
	Body
	Variant string // sprite tag, e.g. "brown" or "black"

	id        EntityID
	speed     float64
	stompable bool
	active    bool
}

// NewGoomba creates a goomba standing on the ground at x
func NewGoomba(id EntityID, x float64, field Playfield, spec GoombaSpec, variant string) *Goomba {
	g := &Goomba{
		Variant:   variant,
		id:        id,
		speed:     spec.Speed,
		stompable: spec.Stompable,
		active:    true,
	}
	g.X = x
	g.VX = -spec.Speed
	g.Resize(spec.Size, field.Ground)
	return g
}

func (g *Goomba) ID() EntityID    { return g.id }
func (g *Goomba) Kind() EnemyKind { return KindGoomba }
func (g *Goomba) Active() bool    { return g.active }
func (g *Goomba) Deactivate()     { g.active = false }
func (g *Goomba) Walking() bool   { return g.active }

// Advance moves the goomba left and retires it once it leaves the playfield
func (g *Goomba) Advance(dt float64, field Playfield) {
	if !g.active {
		return
	}
	g.X += g.VX * dt
	if g.X+g.W < 0 {
		g.active = false
	}
}

// OnPlayerContact damages the player. The goomba is used up by the contact either way.
func (g *Goomba) OnPlayerContact(p *Player) Contact {
	if !g.active {
		return ContactNone
	}
	g.active = false

	if g.stompable && p.IsStomping(g.Box()) {
		p.Rebound()
		return ContactStomp
	}
	if p.TakeEnemyHit() {
		return ContactHit
	}
	return ContactShielded
}
