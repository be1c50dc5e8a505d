// Package entity provides game entities.
package entity

// Player represents the player's position on the map. The map does not
// track the player; the session owns it and seeds it from the builder's
// chosen start tile.
type Player struct {
	X, Y int
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{X: x, Y: y}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// MoveTo places the player at an absolute position.
func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}
