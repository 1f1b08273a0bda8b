package entity

// TurtleState is the turtle's shell sub-state
type TurtleState int

const (
	TurtleWalking TurtleState = iota
	TurtleStomped
	TurtleShell
)

// String returns the string representation of the turtle state
func (s TurtleState) String() string {
	switch s {
	case TurtleWalking:
		return "walking"
	case TurtleStomped:
		return "stomped"
	case TurtleShell:
		return "shell"
	default:
		return "unknown"
	}
}

// TurtleSpec holds the fixed turtle parameters
type TurtleSpec struct {
	Size        Size
	ShellHeight float64
	Speed       float64
	ShellSpeed  float64
	StompedHold float64 // seconds the shell sits still before launching; 0 launches at once
}

// Turtle walks left until stomped, then becomes a fast shell that
// knocks out other walking enemies
type Turtle struct {
	Body
	State TurtleState
	Dir   Direction // locked in when stomped

	id     EntityID
	spec   TurtleSpec
	ground float64
	hold   float64
	active bool
}

// NewTurtle creates a walking turtle on the ground at x
func NewTurtle(id EntityID, x float64, field Playfield, spec TurtleSpec) *Turtle {
	t := &Turtle{
		State:  TurtleWalking,
		Dir:    DirLeft,
		id:     id,
		spec:   spec,
		ground: field.Ground,
		active: true,
	}
	t.X = x
	t.VX = -spec.Speed
	t.Resize(spec.Size, field.Ground)
	return t
}

func (t *Turtle) ID() EntityID       { return t.id }
func (t *Turtle) Kind() EnemyKind    { return KindTurtle }
func (t *Turtle) Active() bool       { return t.active }
func (t *Turtle) Deactivate()        { t.active = false }
func (t *Turtle) Walking() bool      { return t.active && t.State == TurtleWalking }
func (t *Turtle) IsProjectile() bool { return t.active && t.State == TurtleShell }

// Advance moves the turtle according to its state and retires it off either edge
func (t *Turtle) Advance(dt float64, field Playfield) {
	if !t.active {
		return
	}

	switch t.State {
	case TurtleWalking:
		t.VX = -t.spec.Speed
	case TurtleStomped:
		t.VX = 0
		t.hold -= dt
		if t.hold <= 0 {
			t.launch()
		}
	case TurtleShell:
		t.VX = float64(t.Dir) * t.spec.ShellSpeed
	}

	t.X += t.VX * dt
	if t.OffField(field) {
		t.active = false
	}
}

// OnStomped turns a walking turtle into a shell heading away from the player.
// It reports false if the turtle is not walking.
func (t *Turtle) OnStomped(p *Player) bool {
	if !t.active || t.State != TurtleWalking {
		return false
	}

	t.Resize(Size{W: t.W, H: t.spec.ShellHeight}, t.ground)
	if p.X < t.X {
		t.Dir = DirRight
	} else {
		t.Dir = DirLeft
	}

	if t.spec.StompedHold > 0 {
		t.State = TurtleStomped
		t.hold = t.spec.StompedHold
		t.VX = 0
		return true
	}
	t.launch()
	return true
}

// OnPlayerContact checks for a stomp before the walking damage path.
// Shells never hurt the player.
func (t *Turtle) OnPlayerContact(p *Player) Contact {
	if !t.active {
		return ContactNone
	}

	if p.IsStomping(t.Box()) {
		if t.OnStomped(p) {
			p.Rebound()
			return ContactStomp
		}
		return ContactNone
	}

	if t.State != TurtleWalking {
		return ContactNone
	}
	if p.TakeEnemyHit() {
		return ContactHit
	}
	return ContactShielded
}

func (t *Turtle) launch() {
	t.State = TurtleShell
	t.VX = float64(t.Dir) * t.spec.ShellSpeed
}
