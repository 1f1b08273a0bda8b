package system

import "github.com/younwookim/stomp/internal/domain/entity"

// EntityView is the read-only render state of one enemy or pickup
type EntityView struct {
	ID      entity.EntityID
	Kind    string // sprite tag: "goomba", "turtle", "coin", "mushroom", "life-mushroom", "star"
	Variant string // goomba color or turtle state
	Box     entity.Rect
	Active  bool
	Dir     entity.Direction
}

// PlayerView is the read-only render state of the player
type PlayerView struct {
	Box            entity.Rect
	Size           entity.SizeClass
	State          entity.JumpState
	Dir            entity.Direction
	Invincible     bool
	InvincibleTime float64
}

// HUD carries the scalar fields shown on screen
type HUD struct {
	Lives    int
	Coins    int
	Score    int
	GameOver bool
}

// Snapshot is a copy of the world state for the renderer
type Snapshot struct {
	Tick    int
	Field   entity.Playfield
	Player  PlayerView
	Enemies []EntityView
	Pickups []EntityView
	HUD     HUD
	Stats   Stats
}

// Snapshot copies the current world state. The result shares no memory with the world.
func (w *World) Snapshot() Snapshot {
	p := w.player
	dir := entity.DirNone
	switch {
	case p.VX < 0:
		dir = entity.DirLeft
	case p.VX > 0:
		dir = entity.DirRight
	}

	snap := Snapshot{
		Tick:  w.stats.Ticks,
		Field: w.cfg.Field,
		Player: PlayerView{
			Box:            p.Box(),
			Size:           p.Size,
			State:          p.State,
			Dir:            dir,
			Invincible:     p.Invincible,
			InvincibleTime: p.InvincibleTime,
		},
		Enemies: make([]EntityView, 0, len(w.enemies)),
		Pickups: make([]EntityView, 0, len(w.coins)+len(w.mushrooms)+1),
		HUD: HUD{
			Lives:    p.Lives,
			Coins:    p.Coins,
			Score:    w.stats.Score(),
			GameOver: w.gameOver,
		},
		Stats: w.stats,
	}

	for _, e := range w.enemies {
		view := EntityView{ID: e.ID(), Kind: e.Kind().String(), Box: e.Box(), Active: e.Active(), Dir: entity.DirLeft}
		switch v := e.(type) {
		case *entity.Goomba:
			view.Variant = v.Variant
		case *entity.Turtle:
			view.Variant = v.State.String()
			view.Dir = v.Dir
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, c := range w.coins {
		snap.Pickups = append(snap.Pickups, pickupView(c))
	}
	for _, m := range w.mushrooms {
		snap.Pickups = append(snap.Pickups, pickupView(m))
	}
	if w.star != nil {
		snap.Pickups = append(snap.Pickups, pickupView(w.star))
	}
	return snap
}

func pickupView(pk entity.Pickup) EntityView {
	return EntityView{
		ID:     pk.ID(),
		Kind:   pk.Kind().String(),
		Box:    pk.Box(),
		Active: pk.Available(),
	}
}
