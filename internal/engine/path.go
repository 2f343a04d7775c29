package engine

import "github.com/lgbarn/ludus-go/internal/chess"

// needsPathCheck reports whether a move of the piece along d can be
// obstructed. Knights jump and kings move one square.
func needsPathCheck(piece chess.Piece, d Delta) bool {
	if piece.IsSliding() {
		return true
	}
	return piece == chess.Pawn && abs(d.Rank) == 2
}

// firstBlocker walks from origin towards destination one compass step at a
// time and returns the first occupied square strictly between them.
// The move must lie on a rank, file or diagonal.
func firstBlocker(board *chess.Board, from, to chess.Square) (chess.Square, bool) {
	step := Delta{
		Rank: sign(to.Row() - from.Row()),
		File: sign(to.File() - from.File()),
	}

	for sq := step.Apply(from); sq != to && sq != chess.NoSquare; sq = step.Apply(sq) {
		if !board.IsEmpty(sq) {
			return sq, true
		}
	}
	return chess.NoSquare, false
}

// isPathClear reports whether every square strictly between from and to is empty.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	_, blocked := firstBlocker(board, from, to)
	return !blocked
}
