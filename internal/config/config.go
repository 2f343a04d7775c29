// Package config provides configuration for the ludus command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/ludus-go/internal/chess"
)

// OutputFormat represents different report formats.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable text
	JSON                     // JSON array of reports
	FEN                      // One FEN line per position
)

// String returns the flag name of the format.
func (f OutputFormat) String() string {
	switch f {
	case JSON:
		return "json"
	case FEN:
		return "fen"
	}
	return "text"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch s {
	case "", "text":
		return Text, true
	case "json":
		return JSON, true
	case "fen":
		return FEN, true
	}
	return Text, false
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=position count, 2=running commentary

	// Sub-configurations
	Output     *OutputConfig
	Duplicate  *DuplicateConfig
	Filter     *FilterConfig
	Annotation *AnnotationConfig

	// Starting position for single-game mode
	StartFEN string

	// Moves to play from the starting position, e.g. "E2E4 E7E5"
	Moves []string

	// Side whose moves are listed; nil means the side to move
	ListSide *chess.Colour

	// Square whose moves are listed; empty means none
	ListFrom string

	// Parallelism for batch mode (0 = one per CPU)
	Workers    int
	BufferSize int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Filter:     NewFilterConfig(),
		Annotation: NewAnnotationConfig(),
		BufferSize: 64,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration for contradictory settings.
func (c *Config) Validate() error {
	if err := c.Filter.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
