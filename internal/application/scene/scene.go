// Package scene defines the Scene interface for game screens.
//
// The playing field is currently the only scene; a title or results screen
// would implement the same interface and be returned from Update.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update when the player asks to leave the game
var ErrQuit = errors.New("quit requested")

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returns ErrQuit to close the window, any other error to abort.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when leaving this scene, including on quit.
	OnExit()
}
