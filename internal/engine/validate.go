package engine

import "github.com/lgbarn/ludus-go/internal/chess"

// ValidateMove decides whether moving the piece on from to to is legal in
// state. Checks run in a fixed order and the first failure is returned.
// The state is not modified.
func ValidateMove(state *chess.GameState, from, to chess.Square) Outcome {
	if !from.Valid() || !to.Valid() {
		return OutOfBounds
	}

	mover := state.Board.Get(from)
	if mover == chess.Empty {
		return EmptySquare
	}

	colour := chess.ExtractColour(mover)
	if colour != state.Turn {
		return WrongColor
	}

	piece := chess.ExtractPiece(mover)
	d := DeltaBetween(from, to)
	if !inTable(piece, colour, d) {
		return ImpossibleMove
	}

	if !geometryHolds(piece, d) {
		return ImpossibleMove
	}

	if piece == chess.Pawn {
		if outcome := validatePawnMove(state, from, to, d); outcome != Legal {
			return outcome
		}
	}

	if needsPathCheck(piece, d) && !isPathClear(&state.Board, from, to) {
		return PathBlocked
	}

	target := state.Board.Get(to)
	if target == chess.Empty {
		return Legal
	}

	// A straight pawn advance may never land on an occupied square.
	if piece == chess.Pawn && isPawnStraight(d) {
		return PawnVerticalCapture
	}

	if chess.ExtractColour(target) == colour {
		return FriendlyFire
	}
	return Legal
}

// IsLegal reports whether ValidateMove returns Legal.
func IsLegal(state *chess.GameState, from, to chess.Square) bool {
	return ValidateMove(state, from, to) == Legal
}
