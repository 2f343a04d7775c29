package config

import (
	"io"

	"github.com/lgbarn/ludus-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithIndent sets whether JSON output is indented.
func (b *ConfigBuilder) WithIndent(enabled bool) *ConfigBuilder {
	b.cfg.Output.Indent = enabled
	return b
}

// WithParquetFile enables Parquet export to path.
func (b *ConfigBuilder) WithParquetFile(path string) *ConfigBuilder {
	b.cfg.Output.ParquetFile = path
	return b
}

// WithSVGFile enables an SVG diagram of the final position.
func (b *ConfigBuilder) WithSVGFile(path string) *ConfigBuilder {
	b.cfg.Output.SVGFile = path
	return b
}

// WithSVGLayout sets the diagram square size and whether coordinates are drawn.
func (b *ConfigBuilder) WithSVGLayout(squareSize int, coordinates bool) *ConfigBuilder {
	b.cfg.Output.SquareSize = squareSize
	b.cfg.Output.Coordinates = coordinates
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithExactDuplicates also compares move counters when detecting duplicates.
func (b *ConfigBuilder) WithExactDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.ExactMatch = enabled
	return b
}

// WithDuplicateCapacity bounds the duplicate table (0 = unlimited).
func (b *ConfigBuilder) WithDuplicateCapacity(n int) *ConfigBuilder {
	b.cfg.Duplicate.MaxCapacity = n
	return b
}

// WithMoveBounds sets bounds on the number of legal moves.
func (b *ConfigBuilder) WithMoveBounds(lower, upper uint) *ConfigBuilder {
	b.cfg.Filter.CheckMoveBounds = true
	b.cfg.Filter.LowerMoveBound = lower
	b.cfg.Filter.UpperMoveBound = upper
	return b
}

// WithCheckFilter enables in-check filtering.
func (b *ConfigBuilder) WithCheckFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheck = enabled
	return b
}

// WithCheckmateFilter enables checkmate-only filtering.
func (b *ConfigBuilder) WithCheckmateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheckmate = enabled
	return b
}

// WithStalemateFilter enables stalemate-only filtering.
func (b *ConfigBuilder) WithStalemateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchStalemate = enabled
	return b
}

// WithSideToMove keeps only positions with colour to move.
func (b *ConfigBuilder) WithSideToMove(colour chess.Colour) *ConfigBuilder {
	b.cfg.Filter.SideToMove = &colour
	return b
}

// WithCheckStatus adds check status to reports.
func (b *ConfigBuilder) WithCheckStatus(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddCheckStatus = enabled
	return b
}

// WithMoveList adds every legal move to reports.
func (b *ConfigBuilder) WithMoveList(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddMoveList = enabled
	return b
}

// WithHash adds the position hash to reports.
func (b *ConfigBuilder) WithHash(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddHash = enabled
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithMoves sets the moves to play.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = moves
	return b
}

// WithListSide lists the moves of colour.
func (b *ConfigBuilder) WithListSide(colour chess.Colour) *ConfigBuilder {
	b.cfg.ListSide = &colour
	b.cfg.Annotation.AddMoveList = true
	return b
}

// WithListFrom lists the moves of the piece on square.
func (b *ConfigBuilder) WithListFrom(square string) *ConfigBuilder {
	b.cfg.ListFrom = square
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
