package engine

import "github.com/lgbarn/ludus-go/internal/chess"

// SquareMoves pairs an origin square with its legal destinations.
type SquareMoves struct {
	From chess.Square
	To   []chess.Square
}

// MovesFrom returns the legal destinations of the piece on from, in
// movement-table order. An empty square yields nil.
func MovesFrom(state *chess.GameState, from chess.Square) []chess.Square {
	mover := state.Board.Get(from)
	if mover == chess.Empty {
		return nil
	}

	var moves []chess.Square
	for _, to := range Candidates(from, chess.ExtractPiece(mover), chess.ExtractColour(mover)) {
		if ValidateMove(state, from, to) == Legal {
			moves = append(moves, to)
		}
	}
	return moves
}

// MovesFor returns the legal moves of every piece of colour, evaluated as
// if colour were to move. Squares with no legal move are omitted. When
// colour is not the side to move the en passant target is ignored, since
// it belongs to the other side. state is never modified.
func MovesFor(state *chess.GameState, colour chess.Colour) []SquareMoves {
	view := *state
	if view.Turn != colour {
		view.Turn = colour
		view.EnPassant = chess.NoSquare
	}

	var all []SquareMoves
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := view.Board[from]
		if piece == chess.Empty || chess.ExtractColour(piece) != colour {
			continue
		}
		if moves := MovesFrom(&view, from); len(moves) > 0 {
			all = append(all, SquareMoves{From: from, To: moves})
		}
	}
	return all
}

// HasMoves returns true if colour has at least one legal move.
func HasMoves(state *chess.GameState, colour chess.Colour) bool {
	return len(MovesFor(state, colour)) > 0
}

// CountMoves returns the total number of legal moves for colour.
func CountMoves(state *chess.GameState, colour chess.Colour) int {
	n := 0
	for _, sm := range MovesFor(state, colour) {
		n += len(sm.To)
	}
	return n
}
