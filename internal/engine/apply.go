package engine

import (
	"github.com/lgbarn/ludus-go/internal/chess"
)

// ApplyMove validates the move and, only when it is Legal, commits it to
// state. Any other outcome leaves state untouched. This is the only place
// a GameState is mutated by the engine.
func ApplyMove(state *chess.GameState, from, to chess.Square) Outcome {
	outcome := ValidateMove(state, from, to)
	if outcome != Legal {
		return outcome
	}
	commitMove(state, from, to)
	return Legal
}

// commitMove relocates the piece and advances the bookkeeping. The move
// must already have been validated.
func commitMove(state *chess.GameState, from, to chess.Square) {
	colour := state.Turn
	mover := state.Board.Get(from)
	piece := chess.ExtractPiece(mover)
	captured := state.Board.Get(to) != chess.Empty

	if piece == chess.Pawn && from.File() != to.File() && !captured {
		// En passant: the victim sits beside the origin, not on the destination.
		state.Board.Set(enPassantVictim(from, to), chess.Empty)
		captured = true
	}

	state.Board.Set(from, chess.Empty)
	state.Board.Set(to, mover)

	state.EnPassant = chess.NoSquare
	if piece == chess.Pawn && abs(to.Row()-from.Row()) == 2 {
		state.EnPassant = chess.SquareAt((from.Row()+to.Row())/2, from.File())
	}

	if piece == chess.Pawn || captured {
		state.HalfMoves = 0
	} else {
		state.HalfMoves++
	}
	if colour == chess.Black {
		state.FullMoves++
	}
	state.Turn = colour.Opposite()
}
