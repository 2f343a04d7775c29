package chess

import (
	"fmt"

	"golang.org/x/text/width"

	"github.com/lgbarn/ludus-go/internal/errors"
)

// Square is a linear board index. Index 0 is A8 (top left from White's
// side) and 63 is H1.
type Square int

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// SquareAt returns the square at the given row and file, or NoSquare if
// either lies outside 0..7.
func SquareAt(row, file int) Square {
	if row < 0 || row >= BoardSize || file < 0 || file >= BoardSize {
		return NoSquare
	}
	return Square(row*BoardSize + file)
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Row returns the row index; row 0 is the eighth rank.
func (s Square) Row() int {
	return int(s) / BoardSize
}

// File returns the file index; file 0 is the A file.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Col returns the file character ('a'..'h').
func (s Square) Col() Col {
	return Col(ColBase + s.File())
}

// Rank returns the rank character ('1'..'8').
func (s Square) Rank() Rank {
	return Rank(LastRank - s.Row())
}

// String returns the canonical name (e.g. "E2"), or "-" for an
// off-board square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('A' + s.File()), byte(s.Rank())})
}

// ParseSquare converts a square name such as "E2" or "e2" to a Square.
func ParseSquare(name string) (Square, error) {
	folded := width.Narrow.String(name)
	if len(folded) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquareName)
	}

	file := folded[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := folded[1]
	if file < FirstCol || file > LastCol || rank < FirstRank || rank > LastRank {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquareName)
	}
	return SquareFromCoords(Col(file), Rank(rank)), nil
}

// SquareFromCoords converts file and rank characters to a Square.
// Out-of-range characters yield NoSquare.
func SquareFromCoords(col Col, rank Rank) Square {
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return NoSquare
	}
	return SquareAt(int(LastRank-rank), int(col-ColBase))
}

// SquareName converts a linear index to its canonical square name.
func SquareName(index int) (string, error) {
	sq := Square(index)
	if !sq.Valid() {
		return "", fmt.Errorf("index %d: %w", index, errors.ErrOutOfBounds)
	}
	return sq.String(), nil
}
