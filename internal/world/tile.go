// Package world provides map generation and grid management.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileExit represents the level exit. Exactly one exists after a
	// successful build.
	TileExit Tile = '>'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileExit
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
