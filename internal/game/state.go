// Package game provides the main game loop and session state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the active state where the player explores the map.
	StatePlaying State = iota
	// StateGameOver ends the game loop.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
