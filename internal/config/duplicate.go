package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/ludus-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress enables duplicate suppression
	Suppress bool

	// ExactMatch also requires equal move counters
	ExactMatch bool

	// MaxCapacity limits stored positions (0 = unlimited)
	MaxCapacity int

	// DuplicateFile is the output stream for duplicate positions
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Enabled reports whether any duplicate detection is needed.
func (d *DuplicateConfig) Enabled() bool {
	return d.Suppress || d.DuplicateFile != nil
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d is negative: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
