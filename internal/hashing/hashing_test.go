package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/ludus-go/internal/chess"
	"github.com/lgbarn/ludus-go/internal/engine"
	"github.com/lgbarn/ludus-go/internal/testutil"
)

func mustState(t testing.TB, fen string) *chess.GameState {
	t.Helper()
	state, err := engine.NewStateFromFEN(fen)
	require.NoError(t, err)
	return state
}

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(chess.NewInitialState())
	hash2 := GenerateZobristHash(mustState(t, engine.InitialFEN))

	assert.Equal(t, hash1, hash2, "identical positions must hash equally")
}

func TestZobristHashDifferentPositions(t *testing.T) {
	initial := chess.NewInitialState()

	moved := chess.NewInitialState()
	moved.Board.Set(testutil.MustSquare(t, "E2"), chess.Empty)
	moved.Board.Set(testutil.MustSquare(t, "E4"), chess.W(chess.Pawn))

	assert.NotEqual(t, GenerateZobristHash(initial), GenerateZobristHash(moved))
}

func TestZobristHash_SideAndEnPassant(t *testing.T) {
	white := mustState(t, "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1")
	black := mustState(t, "4k3/8/8/3pP3/8/8/8/4K3 b - - 0 1")
	withEP := mustState(t, testutil.EnPassantFEN)

	assert.NotEqual(t, GenerateZobristHash(white), GenerateZobristHash(black))
	assert.NotEqual(t, GenerateZobristHash(white), GenerateZobristHash(withEP))
}

func TestZobristHash_IgnoresClocks(t *testing.T) {
	a := mustState(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	b := mustState(t, "4k3/8/8/8/8/8/8/4K3 w - - 12 40")

	assert.Equal(t, GenerateZobristHash(a), GenerateZobristHash(b))
}

func TestZobristHash_Transposition(t *testing.T) {
	// Nf3 Nf6 Nc3 Nc6 and Nc3 Nc6 Nf3 Nf6 reach the same position.
	play := func(moves ...string) *chess.GameState {
		state := chess.NewInitialState()
		for i := 0; i < len(moves); i += 2 {
			from := testutil.MustSquare(t, moves[i])
			to := testutil.MustSquare(t, moves[i+1])
			require.Equal(t, engine.Legal, engine.ApplyMove(state, from, to))
		}
		return state
	}

	a := play("G1", "F3", "G8", "F6", "B1", "C3", "B8", "C6")
	b := play("B1", "C3", "B8", "C6", "G1", "F3", "G8", "F6")

	assert.Equal(t, GenerateZobristHash(a), GenerateZobristHash(b))
}

func TestWeakHashConsistency(t *testing.T) {
	a := chess.NewInitialState()
	b := chess.NewInitialState()

	assert.Equal(t, WeakHash(&a.Board), WeakHash(&b.Board))
	assert.Zero(t, WeakHash(&chess.Board{}))
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	state := chess.NewInitialState()

	assert.False(t, detector.CheckAndAdd(state), "first position marked as duplicate")
	assert.True(t, detector.CheckAndAdd(state), "duplicate not detected")
	assert.False(t, detector.CheckAndAdd(nil))

	assert.Equal(t, 1, detector.DuplicateCount())
	assert.Equal(t, 1, detector.UniqueCount())
}

func TestDuplicateDetector_DifferentPositions(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)

	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - e3 0 1",
		testutil.EnPassantFEN,
		testutil.FoolsMateFEN,
	}
	for _, fen := range fens {
		assert.False(t, detector.CheckAndAdd(mustState(t, fen)), fen)
	}

	assert.Equal(t, 0, detector.DuplicateCount())
	assert.Equal(t, len(fens), detector.UniqueCount())
}

func TestDuplicateDetector_ExactMatch(t *testing.T) {
	early := "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	late := "4k3/8/8/8/8/8/8/4K3 w - - 8 30"

	loose := NewDuplicateDetector(false, 0)
	loose.CheckAndAdd(mustState(t, early))
	assert.True(t, loose.CheckAndAdd(mustState(t, late)))

	exact := NewDuplicateDetector(true, 0)
	exact.CheckAndAdd(mustState(t, early))
	assert.False(t, exact.CheckAndAdd(mustState(t, late)))
	assert.True(t, exact.CheckAndAdd(mustState(t, late)))
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 2)

	detector.CheckAndAdd(mustState(t, engine.InitialFEN))
	detector.CheckAndAdd(mustState(t, testutil.EnPassantFEN))
	require.True(t, detector.IsFull())

	// Not stored, so never reported as a duplicate.
	assert.False(t, detector.CheckAndAdd(mustState(t, testutil.StalemateFEN)))
	assert.False(t, detector.CheckAndAdd(mustState(t, testutil.StalemateFEN)))
	assert.True(t, detector.CheckAndAdd(mustState(t, engine.InitialFEN)))
	assert.Equal(t, 2, detector.UniqueCount())
}

func TestPositionHasher(t *testing.T) {
	white := mustState(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	black := mustState(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")

	placement := NewPositionHasher(HashPlacement)
	assert.Equal(t, placement.Hash(white), placement.Hash(black))

	position := NewPositionHasher(HashPosition)
	assert.NotEqual(t, position.Hash(white), position.Hash(black))
	assert.Equal(t, GenerateZobristHash(white), position.Hash(white))
}
