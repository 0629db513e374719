package engine

import "fmt"

// DefaultMaxDepth is the number of plies searched below each root move.
const DefaultMaxDepth = 6

// Config holds the search parameters.
type Config struct {
	// MaxDepth is the ply at which the static evaluation replaces further
	// search. Root moves are played before ply 0.
	MaxDepth int
}

// DefaultConfig returns the configuration used by the game.
func DefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth}
}

// Validate reports whether the configuration can be searched with.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

func (c Config) normalized() Config {
	if c.MaxDepth < 0 {
		c.MaxDepth = 0
	}
	return c
}
