package entity

// PickupKind identifies a pickup variant
type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupGrowthMushroom
	PickupLifeMushroom
	PickupStar
)

// String returns the sprite/config name of the pickup kind
func (k PickupKind) String() string {
	switch k {
	case PickupCoin:
		return "coin"
	case PickupGrowthMushroom:
		return "mushroom"
	case PickupLifeMushroom:
		return "life-mushroom"
	case PickupStar:
		return "star"
	default:
		return "unknown"
	}
}

// Pickup is a closed set of collectibles: *Coin, *Mushroom or *Star
type Pickup interface {
	isPickup()
	ID() EntityID
	Kind() PickupKind
	Box() Rect
	// Available reports whether the pickup is visible and can be collected
	Available() bool
}

// Coin is a one-shot collectible
type Coin struct {
	Bounds    Rect
	Collected bool

	id EntityID
}

// NewCoin creates a coin of the given size centered on (cx, cy)
func NewCoin(id EntityID, cx, cy float64, size Size) *Coin {
	return &Coin{Bounds: CenteredRect(cx, cy, size.W, size.H), id: id}
}

func (*Coin) isPickup()          {}
func (c *Coin) ID() EntityID     { return c.id }
func (c *Coin) Kind() PickupKind { return PickupCoin }
func (c *Coin) Box() Rect        { return c.Bounds }
func (c *Coin) Available() bool  { return !c.Collected }

// Mushroom appears at random for a limited time
type Mushroom struct {
	Bounds    Rect
	Life      bool // extra-life mushroom instead of growth
	Active    bool
	Remaining float64 // seconds of visibility left

	id        EntityID
	duration  float64
	meanDelay float64
}

// NewMushroom creates an inactive mushroom.
// duration is the visible window, meanDelay the mean wait before it appears.
func NewMushroom(id EntityID, cx, cy float64, size Size, life bool, duration, meanDelay float64) *Mushroom {
	return &Mushroom{
		Bounds:    CenteredRect(cx, cy, size.W, size.H),
		Life:      life,
		id:        id,
		duration:  duration,
		meanDelay: meanDelay,
	}
}

func (*Mushroom) isPickup()         {}
func (m *Mushroom) ID() EntityID    { return m.id }
func (m *Mushroom) Box() Rect       { return m.Bounds }
func (m *Mushroom) Available() bool { return m.Active }

// Kind returns the growth or life mushroom kind
func (m *Mushroom) Kind() PickupKind {
	if m.Life {
		return PickupLifeMushroom
	}
	return PickupGrowthMushroom
}

// MaybeActivate rolls for the mushroom to appear while it is hidden.
// The per-tick chance is dt/meanDelay.
func (m *Mushroom) MaybeActivate(dt float64, rng RandomSource) bool {
	if m.Active || m.meanDelay <= 0 {
		return false
	}
	if rng.Float64() >= dt/m.meanDelay {
		return false
	}
	m.Active = true
	m.Remaining = m.duration
	return true
}

// Star grants invincibility once
type Star struct {
	Bounds Rect
	Active bool

	id       EntityID
	duration float64
}

// NewStar creates an available star that grants duration seconds of invincibility
func NewStar(id EntityID, cx, cy float64, size Size, duration float64) *Star {
	return &Star{
		Bounds:   CenteredRect(cx, cy, size.W, size.H),
		Active:   true,
		id:       id,
		duration: duration,
	}
}

func (*Star) isPickup()          {}
func (s *Star) ID() EntityID     { return s.id }
func (s *Star) Kind() PickupKind { return PickupStar }
func (s *Star) Box() Rect        { return s.Bounds }
func (s *Star) Available() bool  { return s.Active }

// TryCollect hands the pickup's benefit to the player.
// It reports false if the pickup was not available.
func TryCollect(pk Pickup, p *Player) bool {
	if !pk.Available() {
		return false
	}

	switch v := pk.(type) {
	case *Coin:
		v.Collected = true
		p.Coins++
	case *Mushroom:
		if v.Life {
			p.GrantExtraLife()
		} else {
			p.Grow()
		}
		v.Active = false
		v.Remaining = 0
	case *Star:
		p.ActivateInvincibility(v.duration)
		v.Active = false
	}
	return true
}

// Tick advances time-limited pickups
func Tick(pk Pickup, dt float64) {
	switch v := pk.(type) {
	case *Mushroom:
		if !v.Active {
			return
		}
		v.Remaining -= dt
		if v.Remaining <= 0 {
			v.Active = false
			v.Remaining = 0
		}
	case *Coin, *Star:
		// Coins and stars never expire.
	}
}
