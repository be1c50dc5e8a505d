package game

import (
	"time"

	"github.com/samdwyer/gridrunner/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible map
	// generation. A seed of 0 means a time-based seed will be used.
	Seed int64

	// Map dimensions. Zero values fall back to the world defaults.
	Width  int
	Height int

	// Theme is the tile theme ID. Empty selects the default theme.
	Theme string
}

// withDefaults returns a copy of the config with zero values filled in.
func (c Config) withDefaults() Config {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Width <= 0 {
		c.Width = world.DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = world.DefaultHeight
	}
	return c
}
