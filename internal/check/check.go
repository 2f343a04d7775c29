// Package check answers check, checkmate and stalemate questions about a
// position. It is layered on top of the engine's enumerator and applier and
// is never consulted by move validation itself.
package check

import (
	"github.com/lgbarn/ludus-go/internal/chess"
	"github.com/lgbarn/ludus-go/internal/engine"
)

// Status summarises the king safety of the side to move.
type Status int

const (
	None Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lower-case name used in reports.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "none"
}

// FindKing returns the square of colour's king, or NoSquare.
func FindKing(state *chess.GameState, colour chess.Colour) chess.Square {
	return state.Board.Find(chess.MakeColouredPiece(colour, chess.King))
}

// IsInCheck returns true if colour's king can be captured by any enemy
// piece. A side without a king is never in check.
func IsInCheck(state *chess.GameState, colour chess.Colour) bool {
	king := FindKing(state, colour)
	if king == chess.NoSquare {
		return false
	}
	return isSquareAttacked(state, king, colour.Opposite())
}

// isSquareAttacked returns true if byColour has a legal move onto sq.
func isSquareAttacked(state *chess.GameState, sq chess.Square, byColour chess.Colour) bool {
	for _, sm := range engine.MovesFor(state, byColour) {
		for _, to := range sm.To {
			if to == sq {
				return true
			}
		}
	}
	return false
}

// LeavesKingInCheck returns true if the move is legal for the side to move
// but leaves that side's king in check. Illegal moves return false.
func LeavesKingInCheck(state *chess.GameState, from, to chess.Square) bool {
	colour := state.Turn
	after := state.Copy()
	if engine.ApplyMove(after, from, to) != engine.Legal {
		return false
	}
	return IsInCheck(after, colour)
}

// SafeMoves returns the moves of colour that do not leave its own king in
// check, evaluated as if colour were to move.
func SafeMoves(state *chess.GameState, colour chess.Colour) []engine.SquareMoves {
	view := viewFor(state, colour)

	var safe []engine.SquareMoves
	for _, sm := range engine.MovesFor(view, colour) {
		var to []chess.Square
		for _, dest := range sm.To {
			if !LeavesKingInCheck(view, sm.From, dest) {
				to = append(to, dest)
			}
		}
		if len(to) > 0 {
			safe = append(safe, engine.SquareMoves{From: sm.From, To: to})
		}
	}
	return safe
}

// HasSafeMove returns true if colour has at least one move that does not
// leave its king in check.
func HasSafeMove(state *chess.GameState, colour chess.Colour) bool {
	view := viewFor(state, colour)
	for _, sm := range engine.MovesFor(view, colour) {
		for _, dest := range sm.To {
			if !LeavesKingInCheck(view, sm.From, dest) {
				return true
			}
		}
	}
	return false
}

// IsCheckmate returns true if the side to move is in check with no safe move.
func IsCheckmate(state *chess.GameState) bool {
	return IsInCheck(state, state.Turn) && !HasSafeMove(state, state.Turn)
}

// IsStalemate returns true if the side to move is not in check but has no
// safe move.
func IsStalemate(state *chess.GameState) bool {
	return !IsInCheck(state, state.Turn) && !HasSafeMove(state, state.Turn)
}

// Evaluate returns the Status of the side to move.
func Evaluate(state *chess.GameState) Status {
	inCheck := IsInCheck(state, state.Turn)
	hasMove := HasSafeMove(state, state.Turn)
	switch {
	case inCheck && !hasMove:
		return Checkmate
	case inCheck:
		return Check
	case !hasMove:
		return Stalemate
	}
	return None
}

// viewFor returns a copy of state with colour to move. The en passant target
// is dropped when it belongs to the other side.
func viewFor(state *chess.GameState, colour chess.Colour) *chess.GameState {
	view := state.Copy()
	if view.Turn != colour {
		view.Turn = colour
		view.EnPassant = chess.NoSquare
	}
	return view
}
