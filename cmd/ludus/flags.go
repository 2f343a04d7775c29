// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/ludus-go/internal/chess"
	"github.com/lgbarn/ludus-go/internal/config"
	"github.com/lgbarn/ludus-go/internal/errors"
)

var (
	// Position and moves
	startFEN = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	moveList = flag.String("moves", "", "Moves to play in order, e.g. \"E2E4 E7E5\"")
	listFrom = flag.String("from", "", "List the legal moves of the piece on this square")
	listSide = flag.String("side", "", "List the legal moves of this side (white or black)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("W", "", "Output format: text, json, fen")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	compactJSON  = flag.Bool("compact", false, "Don't indent JSON output")
	svgFile      = flag.String("svg", "", "Write an SVG diagram of the final position")
	squareSize   = flag.Int("squaresize", 45, "SVG square size in pixels")
	noCoords     = flag.Bool("nocoords", false, "Omit coordinates from SVG diagrams")
	parquetFile  = flag.String("parquet", "", "Write one Parquet row per position")

	// Annotations
	addCheck    = flag.Bool("check", false, "Report check, checkmate and stalemate")
	addMoveList = flag.Bool("list", false, "List every legal move")
	addHash     = flag.Bool("hash", false, "Report the Zobrist hash of each position")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	duplicateFile      = flag.String("d", "", "Output duplicate positions to this file")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also match move counters")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Filtering options
	checkFilter     = flag.Bool("incheck", false, "Only output positions where the side to move is in check")
	checkmateFilter = flag.Bool("checkmate", false, "Only output checkmate positions")
	stalemateFilter = flag.Bool("stalemate", false, "Only output stalemate positions")
	minMoves        = flag.Int("minmoves", 0, "Minimum number of legal moves")
	maxMoves        = flag.Int("maxmoves", 0, "Maximum number of legal moves (0 = no limit)")
	toMove          = flag.String("tomove", "", "Only output positions with this side to move")

	// Position matching
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")
	fenPattern         = flag.String("Tf", "", "Match piece placement (FEN, wildcards ? ! * A a _ allowed)")
	fenPatternInvert   = flag.Bool("Tfinvert", false, "Also match the colour-inverted -Tf pattern")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no position count)")
	verbose = flag.Bool("v", false, "Verbose diagnostics")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to b and returns the built configuration.
func applyFlags(b *config.ConfigBuilder) (*config.Config, error) {
	if err := applyPositionFlags(b); err != nil {
		return nil, err
	}
	if err := applyOutputFormatFlags(b); err != nil {
		return nil, err
	}
	applyAnnotationFlags(b)
	if err := applyFilterFlags(b); err != nil {
		return nil, err
	}
	applyDuplicateFlags(b)

	switch {
	case *quiet:
		b.WithVerbosity(0)
	case *verbose:
		b.WithVerbosity(2)
	}
	b.WithWorkers(*workers)

	cfg := b.Build()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyPositionFlags configures the single-game position and move list.
func applyPositionFlags(b *config.ConfigBuilder) error {
	b.WithStartFEN(*startFEN).
		WithMoves(splitMoves(*moveList)...).
		WithListFrom(*listFrom)

	if *listSide != "" {
		colour, ok := chess.ParseColour(*listSide)
		if !ok {
			return fmt.Errorf("unknown side %q", *listSide)
		}
		b.WithListSide(colour)
	}
	return nil
}

// applyOutputFormatFlags configures the output format and file outputs.
func applyOutputFormatFlags(b *config.ConfigBuilder) error {
	if *outputFormat != "" {
		format, ok := config.ParseOutputFormat(*outputFormat)
		if !ok {
			return fmt.Errorf("unknown output format %q", *outputFormat)
		}
		b.WithOutputFormat(format)
	}
	if *jsonOutput {
		b.WithOutputFormat(config.JSON)
	}
	b.WithIndent(!*compactJSON).
		WithSVGFile(*svgFile).
		WithSVGLayout(*squareSize, !*noCoords).
		WithParquetFile(*parquetFile)
	return nil
}

// applyAnnotationFlags configures report annotations.
func applyAnnotationFlags(b *config.ConfigBuilder) {
	b.WithCheckStatus(*addCheck).WithHash(*addHash)
	if *addMoveList {
		b.WithMoveList(true)
	}
}

// applyFilterFlags configures batch position filters.
func applyFilterFlags(b *config.ConfigBuilder) error {
	b.WithCheckFilter(*checkFilter).
		WithCheckmateFilter(*checkmateFilter).
		WithStalemateFilter(*stalemateFilter)

	if *minMoves > 0 || *maxMoves > 0 {
		upper := ^uint(0)
		if *maxMoves > 0 {
			upper = uint(*maxMoves)
		}
		b.WithMoveBounds(uint(*minMoves), upper)
	}

	if *toMove != "" {
		colour, ok := chess.ParseColour(*toMove)
		if !ok {
			return fmt.Errorf("unknown side %q", *toMove)
		}
		b.WithSideToMove(colour)
	}
	return nil
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(b *config.ConfigBuilder) {
	b.WithDuplicateSuppression(*suppressDuplicates).
		WithExactDuplicates(*exactDuplicates).
		WithDuplicateCapacity(*duplicateCapacity)
}

// splitMoves splits a move list on whitespace and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// parseMove splits "E2E4", "e2-e4" or "E2:E4" into origin and destination
// names. A malformed move still yields whatever halves it has.
func parseMove(move string) (from, to string, err error) {
	clean := strings.NewReplacer("-", "", ":", "", "x", "", "X", "").Replace(move)
	if len(clean) != 4 {
		split := min(2, len(clean))
		return clean[:split], clean[split:], errors.Wrapf(errors.ErrInvalidSquareName, "malformed move %q", move)
	}
	return clean[:2], clean[2:], nil
}
