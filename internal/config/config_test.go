package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/ludus-go/internal/chess"
	chesserrors "github.com/lgbarn/ludus-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Text {
		t.Errorf("Format = %v, want %v", cfg.Format, Text)
	}
	if !cfg.Indent {
		t.Error("Indent should be true by default")
	}
	if cfg.SquareSize != 45 {
		t.Errorf("SquareSize = %d, want 45", cfg.SquareSize)
	}
	if cfg.ParquetFile != "" || cfg.SVGFile != "" {
		t.Error("file outputs should be disabled by default")
	}
}

// TestFilterConfig_Defaults verifies FilterConfig has sensible defaults
func TestFilterConfig_Defaults(t *testing.T) {
	cfg := NewFilterConfig()

	if cfg.Active() {
		t.Error("no filter should be active by default")
	}
	if cfg.MatchCheckmate || cfg.MatchStalemate || cfg.MatchCheck {
		t.Error("status filters should be false by default")
	}

	white := chess.White
	cfg.SideToMove = &white
	if !cfg.Active() {
		t.Error("SideToMove should activate the filter")
	}
}

// TestFilterConfig_Validate verifies filter config validation
func TestFilterConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     FilterConfig
		wantErr bool
	}{
		{
			name:    "empty config is valid",
			cfg:     FilterConfig{},
			wantErr: false,
		},
		{
			name: "valid move bounds",
			cfg: FilterConfig{
				CheckMoveBounds: true,
				LowerMoveBound:  10,
				UpperMoveBound:  50,
			},
			wantErr: false,
		},
		{
			name: "invalid move bounds - lower > upper",
			cfg: FilterConfig{
				CheckMoveBounds: true,
				LowerMoveBound:  50,
				UpperMoveBound:  10,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestDuplicateConfig verifies DuplicateConfig defaults and validation
func TestDuplicateConfig(t *testing.T) {
	cfg := NewDuplicateConfig()

	if cfg.Suppress || cfg.ExactMatch {
		t.Error("duplicate options should be false by default")
	}
	if cfg.Enabled() {
		t.Error("Enabled() should be false by default")
	}

	cfg.DuplicateFile = &bytes.Buffer{}
	if !cfg.Enabled() {
		t.Error("a duplicate file should enable detection")
	}

	cfg.MaxCapacity = -1
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}
}

// TestAnnotationConfig_Defaults verifies AnnotationConfig has sensible defaults
func TestAnnotationConfig_Defaults(t *testing.T) {
	cfg := NewAnnotationConfig()

	if !cfg.AddMoveCount {
		t.Error("AddMoveCount should be true by default")
	}
	if cfg.AddCheckStatus || cfg.AddMoveList || cfg.AddHash {
		t.Error("other annotations should be false by default")
	}
}

// TestConfig_SubConfigs verifies that NewConfig fills every sub-config
func TestConfig_SubConfigs(t *testing.T) {
	cfg := NewConfig()

	if cfg.Output == nil || cfg.Duplicate == nil || cfg.Filter == nil || cfg.Annotation == nil {
		t.Fatal("NewConfig left a sub-config nil")
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_Logf verifies verbosity gating
func TestConfig_Logf(t *testing.T) {
	var log bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&log).WithVerbosity(1).Build()

	cfg.Logf(1, "shown %d\n", 1)
	cfg.Logf(2, "hidden\n")

	if got := log.String(); got != "shown 1\n" {
		t.Errorf("log = %q, want %q", got, "shown 1\n")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   OutputFormat
		wantOK bool
	}{
		{"", Text, true},
		{"text", Text, true},
		{"json", JSON, true},
		{"fen", FEN, true},
		{"pgn", Text, false},
	}

	for _, tt := range tests {
		got, ok := ParseOutputFormat(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseOutputFormat(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
		if ok && tt.in != "" && got.String() != tt.in {
			t.Errorf("%v.String() = %q", got, got.String())
		}
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithOutputFormat(JSON).
		WithDuplicateSuppression(true).
		WithExactDuplicates(true).
		WithMoveBounds(1, 10).
		WithCheckmateFilter(true).
		WithCheckStatus(true).
		WithHash(true).
		WithStartFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithMoves("A1A2", "H1H2").
		WithListSide(chess.Black).
		WithWorkers(3).
		WithParquetFile("out.parquet").
		WithSVGFile("board.svg").
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want JSON", cfg.Output.Format)
	}
	if !cfg.Duplicate.Suppress || !cfg.Duplicate.ExactMatch {
		t.Error("duplicate options not set")
	}
	if !cfg.Filter.CheckMoveBounds || cfg.Filter.UpperMoveBound != 10 {
		t.Error("move bounds not set")
	}
	if !cfg.Filter.MatchCheckmate {
		t.Error("MatchCheckmate should be true")
	}
	if !cfg.Annotation.AddCheckStatus || !cfg.Annotation.AddHash || !cfg.Annotation.AddMoveList {
		t.Error("annotations not set")
	}
	if len(cfg.Moves) != 2 || cfg.Moves[1] != "H1H2" {
		t.Errorf("Moves = %v", cfg.Moves)
	}
	if cfg.ListSide == nil || *cfg.ListSide != chess.Black {
		t.Error("ListSide should be Black")
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.Output.ParquetFile != "out.parquet" || cfg.Output.SVGFile != "board.svg" {
		t.Error("file outputs not set")
	}
}
