package engine

import (
	"testing"

	"github.com/lgbarn/ludus-go/internal/testutil"
)

func TestValidatePawnMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		to   string
		want Outcome
	}{
		// Advances
		{"single step", InitialFEN, "E2", "E3", Legal},
		{"double step from start", InitialFEN, "E2", "E4", Legal},
		{"black double step", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "E7", "E5", Legal},
		{"backwards", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "E3", "E2", ImpossibleMove},
		{"black backwards", "4k3/8/4p3/8/8/8/8/4K3 b - - 0 1", "E6", "E7", ImpossibleMove},
		{"sideways", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "E3", "F3", ImpossibleMove},
		{"three squares", InitialFEN, "E2", "E5", ImpossibleMove},
		{"double step with file change", InitialFEN, "E2", "F4", ImpossibleMove},

		// Double step after moving
		{"second double move", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "E3", "E5", PawnSecondDoubleMove},
		{"black second double move", "4k3/8/4p3/8/8/8/8/4K3 b - - 0 1", "E6", "E4", PawnSecondDoubleMove},

		// Vertical captures
		{"single step onto piece", "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", "E2", "E3", PawnVerticalCapture},
		{"double step onto piece", "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1", "E2", "E4", PawnVerticalCapture},
		{"double step onto own piece", "4k3/8/8/8/4N3/8/4P3/4K3 w - - 0 1", "E2", "E4", PawnVerticalCapture},
		{"double step through piece", "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", "E2", "E4", PathBlocked},

		// Diagonals
		{"diagonal capture", "4k3/8/8/8/8/3p4/4P3/4K3 w - - 0 1", "E2", "D3", Legal},
		{"black diagonal capture", "4k3/4p3/5P2/8/8/8/8/4K3 b - - 0 1", "E7", "F6", Legal},
		{"diagonal onto own piece", "4k3/8/8/8/8/3N4/4P3/4K3 w - - 0 1", "E2", "D3", FriendlyFire},
		{"diagonal onto empty square", InitialFEN, "E2", "F3", PawnInvalidEnpassant},

		// En passant
		{"en passant", testutil.EnPassantFEN, "E5", "D6", Legal},
		{"en passant wrong side", testutil.EnPassantFEN, "E5", "F6", PawnInvalidEnpassant},
		{"en passant without victim", "4k3/8/8/4P3/8/8/8/4K3 w - d6 0 1", "E5", "D6", PawnInvalidEnpassant},
		{"en passant without target", "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1", "E5", "D6", PawnInvalidEnpassant},
		{"en passant victim is a piece", "4k3/8/8/3nP3/8/8/8/4K3 w - d6 0 1", "E5", "D6", PawnInvalidEnpassant},
		{"en passant victim is own pawn", "4k3/8/8/3PP3/8/8/8/4K3 w - d6 0 1", "E5", "D6", PawnInvalidEnpassant},
		{"en passant from fourth rank", "4k3/8/8/8/3pP3/8/8/4K3 w - d5 0 1", "E4", "D5", PawnInvalidEnpassant},
		{"black en passant", "4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 1", "E4", "D3", Legal},
		{"black en passant without target", "4k3/8/8/8/3Pp3/8/8/4K3 b - - 0 1", "E4", "D3", PawnInvalidEnpassant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustState(t, tt.fen)
			from := testutil.MustSquare(t, tt.from)
			to := testutil.MustSquare(t, tt.to)

			if got := ValidateMove(state, from, to); got != tt.want {
				t.Errorf("ValidateMove(%s, %s) = %v; want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSecondDoubleMoveAfterAdvance(t *testing.T) {
	state := mustState(t, InitialFEN)
	e2 := testutil.MustSquare(t, "E2")
	e3 := testutil.MustSquare(t, "E3")
	e5 := testutil.MustSquare(t, "E5")

	if got := ApplyMove(state, e2, e3); got != Legal {
		t.Fatalf("ApplyMove(E2, E3) = %v; want Legal", got)
	}
	if got := ApplyMove(state, testutil.MustSquare(t, "A7"), testutil.MustSquare(t, "A6")); got != Legal {
		t.Fatalf("ApplyMove(A7, A6) = %v; want Legal", got)
	}
	if got := ValidateMove(state, e3, e5); got != PawnSecondDoubleMove {
		t.Errorf("ValidateMove(E3, E5) = %v; want PawnSecondDoubleMove", got)
	}
}
