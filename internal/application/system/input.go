package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/stomp/internal/domain/entity"
)

// KeySource reports keyboard state. The default reads ebiten.
type KeySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// InputState is one tick's worth of player intent plus scene controls
type InputState struct {
	entity.Input

	Pause       bool
	ToggleMusic bool
	Restart     bool
	Quit        bool
}

// InputSystem samples the keyboard once per tick
type InputSystem struct {
	keys KeySource
}

// NewInputSystem creates an input system reading from ebiten
func NewInputSystem() *InputSystem {
	return &InputSystem{keys: ebitenKeys{}}
}

// NewInputSystemWithKeys creates an input system over a custom key source
func NewInputSystemWithKeys(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

// GetInput returns the current input state.
// Jump fires on the press, not while held.
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Input: entity.Input{
			Left:  s.any(s.keys.Pressed, ebiten.KeyArrowLeft, ebiten.KeyA),
			Right: s.any(s.keys.Pressed, ebiten.KeyArrowRight, ebiten.KeyD),
			Jump:  s.any(s.keys.JustPressed, ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW),
		},
		Pause:       s.any(s.keys.JustPressed, ebiten.KeyP, ebiten.KeyEscape),
		ToggleMusic: s.keys.JustPressed(ebiten.KeyM),
		Restart:     s.any(s.keys.JustPressed, ebiten.KeyZ, ebiten.KeyEnter, ebiten.KeySpace),
		Quit:        s.keys.JustPressed(ebiten.KeyQ),
	}
}

func (s *InputSystem) any(check func(ebiten.Key) bool, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if check(k) {
			return true
		}
	}
	return false
}
