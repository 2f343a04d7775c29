package engine

import "github.com/lgbarn/ludus-go/internal/chess"

// validatePawnMove applies the pawn-only rules to a move whose delta is
// already in the pawn table: direction, en passant, vertical capture and
// the double step.
func validatePawnMove(state *chess.GameState, from, to chess.Square, d Delta) Outcome {
	colour := chess.ExtractColour(state.Board.Get(from))
	target := state.Board.Get(to)

	if sign(d.Rank) != chess.ColourOffset(colour) {
		return ImpossibleMove
	}

	if d.File != 0 && target == chess.Empty {
		if !isEnPassant(state, from, to, colour) {
			return PawnInvalidEnpassant
		}
	}

	if d.File == 0 && target != chess.Empty {
		return PawnVerticalCapture
	}

	if abs(d.Rank) == 2 && from.Row() != chess.PawnStartRow(colour) {
		return PawnSecondDoubleMove
	}

	return Legal
}

// isEnPassant reports whether a diagonal pawn move onto the empty square to
// is an en passant capture: the pawn stands on its fifth rank, to is the
// square the enemy pawn just passed over, and that pawn is beside from.
func isEnPassant(state *chess.GameState, from, to chess.Square, colour chess.Colour) bool {
	if from.Row() != chess.EnPassantRow(colour) {
		return false
	}
	if state.EnPassant != to {
		return false
	}
	victim := enPassantVictim(from, to)
	return state.Board.Get(victim) == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn captured en passant: one
// rank back from the destination towards the origin, on the same file.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.SquareAt(from.Row(), to.File())
}

// isPawnStraight reports whether a pawn delta is a straight advance.
func isPawnStraight(d Delta) bool {
	return d.File == 0
}
