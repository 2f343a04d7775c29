package engine

import (
	"testing"

	"github.com/lgbarn/ludus-go/internal/chess"
	"github.com/lgbarn/ludus-go/internal/testutil"
)

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		from    string
		to      string
		want    Outcome
		wantFEN string
	}{
		{
			name:    "pawn double step sets target",
			fen:     InitialFEN,
			from:    "E2",
			to:      "E4",
			want:    Legal,
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - e3 0 1",
		},
		{
			name:    "knight move increments half moves",
			fen:     InitialFEN,
			from:    "G1",
			to:      "F3",
			want:    Legal,
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b - - 1 1",
		},
		{
			name:    "black move increments full moves",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - e3 0 1",
			from:    "E7",
			to:      "E5",
			want:    Legal,
			wantFEN: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w - e6 0 2",
		},
		{
			name:    "capture resets half moves",
			fen:     "4k3/8/8/8/8/8/3p4/4K3 w - - 5 10",
			from:    "E1",
			to:      "D2",
			want:    Legal,
			wantFEN: "4k3/8/8/8/8/8/3K4/8 b - - 0 10",
		},
		{
			name:    "en passant removes victim",
			fen:     testutil.EnPassantFEN,
			from:    "E5",
			to:      "D6",
			want:    Legal,
			wantFEN: "4k3/8/3P4/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:    "black en passant removes victim",
			fen:     "4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 1",
			from:    "E4",
			to:      "D3",
			want:    Legal,
			wantFEN: "4k3/8/8/8/8/3p4/8/4K3 w - - 0 2",
		},
		{
			name:    "single step clears target",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - e3 0 1",
			from:    "A7",
			to:      "A6",
			want:    Legal,
			wantFEN: "rnbqkbnr/1ppppppp/p7/8/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 2",
		},
		{
			name:    "blocked rook leaves state untouched",
			fen:     testutil.BlockedAFileFEN,
			from:    "A1",
			to:      "A8",
			want:    PathBlocked,
			wantFEN: "4k3/8/8/8/p7/8/8/R3K3 w - - 0 1",
		},
		{
			name:    "wrong colour leaves state untouched",
			fen:     InitialFEN,
			from:    "E7",
			to:      "E5",
			want:    WrongColor,
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustState(t, tt.fen)
			from := testutil.MustSquare(t, tt.from)
			to := testutil.MustSquare(t, tt.to)

			if got := ApplyMove(state, from, to); got != tt.want {
				t.Fatalf("ApplyMove(%s, %s) = %v; want %v", tt.from, tt.to, got, tt.want)
			}
			testutil.AssertEqual(t, StateToFEN(state), tt.wantFEN)
		})
	}
}

func TestApplyMove_IllegalDoesNotMutate(t *testing.T) {
	state := mustState(t, testutil.EnPassantFEN)
	before := *state

	moves := [][2]string{
		{"E5", "F6"}, // diagonal onto empty
		{"E5", "E7"}, // second double move
		{"D5", "D4"}, // wrong colour
		{"E4", "E3"}, // empty
		{"E1", "E3"}, // king two squares
	}
	for _, m := range moves {
		got := ApplyMove(state, testutil.MustSquare(t, m[0]), testutil.MustSquare(t, m[1]))
		if got == Legal {
			t.Fatalf("ApplyMove(%s, %s) = Legal", m[0], m[1])
		}
		testutil.AssertEqual(t, *state, before)
	}

	if got := ApplyMove(state, chess.NoSquare, 0); got != OutOfBounds {
		t.Errorf("ApplyMove(NoSquare, 0) = %v; want OutOfBounds", got)
	}
	testutil.AssertEqual(t, *state, before)
}

func TestApplyMove_EnPassantExpires(t *testing.T) {
	state := mustState(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")

	play := func(from, to string, want Outcome) {
		t.Helper()
		if got := ApplyMove(state, testutil.MustSquare(t, from), testutil.MustSquare(t, to)); got != want {
			t.Fatalf("ApplyMove(%s, %s) = %v; want %v", from, to, got, want)
		}
	}

	play("D7", "D5", Legal)
	if state.EnPassant != testutil.MustSquare(t, "D6") {
		t.Fatalf("EnPassant = %v; want D6", state.EnPassant)
	}

	play("E1", "E2", Legal)
	play("E8", "F8", Legal)
	play("E5", "D6", PawnInvalidEnpassant)
}

func TestApplyMove_Sequence(t *testing.T) {
	state := chess.NewInitialState()
	moves := [][2]string{
		{"E2", "E4"}, {"E7", "E5"},
		{"G1", "F3"}, {"B8", "C6"},
		{"F1", "C4"}, {"G8", "F6"},
	}

	for i, m := range moves {
		if got := ApplyMove(state, testutil.MustSquare(t, m[0]), testutil.MustSquare(t, m[1])); got != Legal {
			t.Fatalf("move %d %s-%s = %v; want Legal", i+1, m[0], m[1], got)
		}
	}

	testutil.AssertEqual(t, StateToFEN(state),
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4")
}

func TestAbs(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{5, 5},
		{-5, 5},
	}

	for _, tt := range tests {
		got := abs(tt.input)
		if got != tt.want {
			t.Errorf("abs(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{5, 1},
		{-5, -1},
	}

	for _, tt := range tests {
		got := sign(tt.input)
		if got != tt.want {
			t.Errorf("sign(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
