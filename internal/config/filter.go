package config

import (
	"fmt"

	"github.com/lgbarn/ludus-go/internal/chess"
	"github.com/lgbarn/ludus-go/internal/errors"
)

// FilterConfig holds settings for selecting positions in batch mode.
type FilterConfig struct {
	// King safety of the side to move
	MatchCheck     bool
	MatchCheckmate bool
	MatchStalemate bool

	// Bounds on the number of legal moves of the side to move
	CheckMoveBounds bool
	LowerMoveBound  uint
	UpperMoveBound  uint

	// Only positions with this side to move (nil = either)
	SideToMove *chess.Colour
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values (false, 0) - filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any filter is set.
func (f *FilterConfig) Active() bool {
	return f.MatchCheck || f.MatchCheckmate || f.MatchStalemate || f.CheckMoveBounds || f.SideToMove != nil
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckMoveBounds && f.LowerMoveBound > f.UpperMoveBound {
		return fmt.Errorf("lower move bound (%d) > upper move bound (%d): %w",
			f.LowerMoveBound, f.UpperMoveBound, errors.ErrInvalidConfig)
	}
	return nil
}
