// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour accepts "white"/"w" and "black"/"b" in any case.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "w", "W", "white", "White", "WHITE":
		return White, true
	case "b", "B", "black", "Black", "BLACK":
		return Black, true
	}
	return Black, false
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsSliding reports whether the piece type's reach depends on occupancy.
func (p Piece) IsSliding() bool {
	return p == Bishop || p == Rook || p == Queen
}

// Rank represents a chess rank character - '1' to '8'.
type Rank byte

// Col represents a chess file character - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// ColourOffset returns the row step of a pawn of the given colour.
// Row 0 is the eighth rank, so White pawns travel towards lower rows.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row pawns of the given colour start on.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// EnPassantRow returns the row a pawn of the given colour must stand on to
// capture en passant (the fifth rank from its own side).
func EnPassantRow(colour Colour) int {
	if colour == White {
		return 3
	}
	return 4
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// HashCode is the type for position hashing.
type HashCode uint64
