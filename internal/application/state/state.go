package state

// GameState represents the current state of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// TogglePause flips between playing and paused. Game over is sticky.
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}

// Simulating reports whether the world should advance in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}
