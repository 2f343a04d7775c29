// Package engine provides chess move validation, enumeration and application.
package engine

import "github.com/lgbarn/ludus-go/internal/chess"

// Delta is a displacement in rows and files. A positive Rank moves towards
// the first rank (higher square index).
type Delta struct {
	Rank int
	File int
}

// DeltaBetween returns the displacement from one square to another.
func DeltaBetween(from, to chess.Square) Delta {
	return Delta{Rank: to.Row() - from.Row(), File: to.File() - from.File()}
}

// Apply returns the square reached by moving d from sq, or NoSquare when
// the result falls off the board.
func (d Delta) Apply(sq chess.Square) chess.Square {
	return chess.SquareAt(sq.Row()+d.Rank, sq.File()+d.File)
}

var (
	knightDeltas = []Delta{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingDeltas   = []Delta{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	diagonalDirs = []Delta{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = []Delta{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	bishopDeltas = rays(diagonalDirs)
	rookDeltas   = rays(straightDirs)
	queenDeltas  = append(append([]Delta{}, rookDeltas...), bishopDeltas...)

	// Indexed by colour: forward one, forward two, then the two captures.
	pawnDeltas = [2][]Delta{
		chess.Black: {{1, 0}, {2, 0}, {1, -1}, {1, 1}},
		chess.White: {{-1, 0}, {-2, 0}, {-1, -1}, {-1, 1}},
	}
)

// rays expands unit directions into every distance from 1 to 7.
func rays(dirs []Delta) []Delta {
	out := make([]Delta, 0, len(dirs)*(chess.BoardSize-1))
	for _, dir := range dirs {
		for dist := 1; dist < chess.BoardSize; dist++ {
			out = append(out, Delta{Rank: dir.Rank * dist, File: dir.File * dist})
		}
	}
	return out
}

// Deltas returns every displacement the piece type can make in one move,
// ignoring board edges and occupancy. The slice must not be modified.
func Deltas(piece chess.Piece, colour chess.Colour) []Delta {
	switch piece {
	case chess.Pawn:
		return pawnDeltas[colour]
	case chess.Knight:
		return knightDeltas
	case chess.Bishop:
		return bishopDeltas
	case chess.Rook:
		return rookDeltas
	case chess.Queen:
		return queenDeltas
	case chess.King:
		return kingDeltas
	}
	return nil
}

// Candidates returns the on-board destinations reachable from sq by the
// piece's deltas. Off-board results are dropped before they become squares.
func Candidates(sq chess.Square, piece chess.Piece, colour chess.Colour) []chess.Square {
	deltas := Deltas(piece, colour)
	out := make([]chess.Square, 0, len(deltas))
	for _, d := range deltas {
		if to := d.Apply(sq); to != chess.NoSquare {
			out = append(out, to)
		}
	}
	return out
}

// inTable reports whether d is one of the piece's displacements.
func inTable(piece chess.Piece, colour chess.Colour, d Delta) bool {
	for _, candidate := range Deltas(piece, colour) {
		if candidate == d {
			return true
		}
	}
	return false
}

// geometryHolds re-checks the line shape of d for the piece type.
func geometryHolds(piece chess.Piece, d Delta) bool {
	rankDiff, fileDiff := abs(d.Rank), abs(d.File)

	switch piece {
	case chess.Bishop:
		return rankDiff == fileDiff
	case chess.Rook:
		return rankDiff == 0 || fileDiff == 0
	case chess.Queen:
		return rankDiff == fileDiff || rankDiff == 0 || fileDiff == 0
	case chess.King:
		return rankDiff <= 1 && fileDiff <= 1
	case chess.Knight:
		return (rankDiff == 1 && fileDiff == 2) || (rankDiff == 2 && fileDiff == 1)
	case chess.Pawn:
		return fileDiff <= 1 && rankDiff >= 1 && rankDiff <= 2 && !(rankDiff == 2 && fileDiff == 1)
	}
	return false
}
