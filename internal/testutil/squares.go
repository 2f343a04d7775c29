// Package testutil provides shared test utilities for the ludus-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/ludus-go/internal/chess"
)

// Fixture positions shared across package tests.
const (
	// EmptyAFileFEN has a lone white rook on A1 with an open A file.
	EmptyAFileFEN = "4k3/8/8/8/8/8/8/R3K3 w - - 0 1"

	// BlockedAFileFEN is EmptyAFileFEN with a black pawn on A4.
	BlockedAFileFEN = "4k3/8/8/8/p7/8/8/R3K3 w - - 0 1"

	// EnPassantFEN has a white pawn on E5 beside a black pawn that just
	// played D7-D5.
	EnPassantFEN = "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"

	// FoolsMateFEN is the position after 1.f3 e5 2.g4 Qh4#.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// StalemateFEN has Black to move with no legal move and not in check.
	StalemateFEN = "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1"
)

// MustSquare parses a square name and fails the test on error.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// MustSquares parses each square name and fails the test on error.
func MustSquares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, 0, len(names))
	for _, name := range names {
		out = append(out, MustSquare(t, name))
	}
	return out
}

// Names converts squares to their canonical names.
func Names(squares []chess.Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	return out
}
