package world

import "errors"

// Sentinel errors for map construction and generation.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("world: map dimensions must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("world: coordinate out of bounds")
	// ErrDisconnected indicates a carve left no floor reachable from the
	// start tile. Recovered internally by retrying.
	ErrDisconnected = errors.New("world: no floor reachable from start")
	// ErrGenerationFailed indicates the generation retry budget was
	// exhausted without producing a connected map.
	ErrGenerationFailed = errors.New("world: map generation failed")
)
