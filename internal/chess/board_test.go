package chess

import (
	"testing"
)

func TestNewGameState(t *testing.T) {
	s := NewGameState()

	t.Run("initial state", func(t *testing.T) {
		if s.Turn != White {
			t.Errorf("Turn = %v; want White", s.Turn)
		}
		if s.FullMoves != 0 {
			t.Errorf("FullMoves = %d; want 0", s.FullMoves)
		}
		if s.EnPassant != NoSquare {
			t.Errorf("EnPassant = %v; want NoSquare", s.EnPassant)
		}
		if s.HalfMoves != 0 {
			t.Errorf("HalfMoves = %d; want 0", s.HalfMoves)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if got := s.Board.Get(sq); got != Empty {
				t.Errorf("Get(%v) = %v; want Empty", sq, got)
			}
		}
	})

	t.Run("off-board squares read as Empty", func(t *testing.T) {
		if s.Board.Get(NoSquare) != Empty {
			t.Error("Get(NoSquare) is not Empty")
		}
		if s.Board.Get(NumSquares) != Empty {
			t.Error("Get(64) is not Empty")
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	s := NewInitialState()

	tests := []struct {
		name  string
		col   Col
		rank  Rank
		piece Piece
	}{
		// White back rank
		{"white rook a1", 'a', '1', W(Rook)},
		{"white knight b1", 'b', '1', W(Knight)},
		{"white bishop c1", 'c', '1', W(Bishop)},
		{"white queen d1", 'd', '1', W(Queen)},
		{"white king e1", 'e', '1', W(King)},
		{"white bishop f1", 'f', '1', W(Bishop)},
		{"white knight g1", 'g', '1', W(Knight)},
		{"white rook h1", 'h', '1', W(Rook)},
		// White pawns
		{"white pawn a2", 'a', '2', W(Pawn)},
		{"white pawn e2", 'e', '2', W(Pawn)},
		{"white pawn h2", 'h', '2', W(Pawn)},
		// Black pawns
		{"black pawn a7", 'a', '7', B(Pawn)},
		{"black pawn e7", 'e', '7', B(Pawn)},
		{"black pawn h7", 'h', '7', B(Pawn)},
		// Black back rank
		{"black rook a8", 'a', '8', B(Rook)},
		{"black knight b8", 'b', '8', B(Knight)},
		{"black queen d8", 'd', '8', B(Queen)},
		{"black king e8", 'e', '8', B(King)},
		{"black rook h8", 'h', '8', B(Rook)},
		// Empty squares
		{"empty e3", 'e', '3', Empty},
		{"empty d4", 'd', '4', Empty},
		{"empty f5", 'f', '5', Empty},
		{"empty c6", 'c', '6', Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Board.At(tt.col, tt.rank); got != tt.piece {
				t.Errorf("At(%c, %c) = %v; want %v", tt.col, tt.rank, got, tt.piece)
			}
		})
	}

	t.Run("linear layout", func(t *testing.T) {
		if got := s.Board[0]; got != B(Rook) {
			t.Errorf("Board[0] = %v; want black rook", got)
		}
		if got := s.Board[60]; got != W(King) {
			t.Errorf("Board[60] = %v; want white king", got)
		}
		if got := s.Board[63]; got != W(Rook) {
			t.Errorf("Board[63] = %v; want white rook", got)
		}
	})

	if s.Turn != White || s.FullMoves != 0 || s.HalfMoves != 0 {
		t.Errorf("counters = %v/%d/%d; want White/0/0", s.Turn, s.FullMoves, s.HalfMoves)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	s := NewInitialState()
	c := s.Copy()

	c.Board.Set(SquareFromCoords('e', '2'), Empty)
	c.Turn = Black

	if s.Board.At('e', '2') != W(Pawn) {
		t.Error("modifying copy changed original board")
	}
	if s.Turn != White {
		t.Error("modifying copy changed original turn")
	}
}

func TestFind(t *testing.T) {
	s := NewInitialState()

	if got := s.Board.Find(W(King)); got != SquareFromCoords('e', '1') {
		t.Errorf("Find(white king) = %v; want E1", got)
	}
	if got := s.Board.Find(B(King)); got != SquareFromCoords('e', '8') {
		t.Errorf("Find(black king) = %v; want E8", got)
	}

	s.Board.Set(s.Board.Find(B(King)), Empty)
	if got := s.Board.Find(B(King)); got != NoSquare {
		t.Errorf("Find(missing king) = %v; want NoSquare", got)
	}
}

func TestColouredPieces(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for p := Pawn; p <= King; p++ {
			cp := MakeColouredPiece(colour, p)
			if cp == Empty {
				t.Errorf("MakeColouredPiece(%v, %v) = Empty", colour, p)
			}
			if got := ExtractPiece(cp); got != p {
				t.Errorf("ExtractPiece(%v) = %v; want %v", cp, got, p)
			}
			if got := ExtractColour(cp); got != colour {
				t.Errorf("ExtractColour(%v) = %v; want %v", cp, got, colour)
			}
		}
	}
}

func TestColourHelpers(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() did not swap colours")
	}
	if ColourOffset(White) != -1 || ColourOffset(Black) != 1 {
		t.Error("ColourOffset() has wrong direction")
	}

	for _, s := range []string{"w", "white", "White"} {
		if c, ok := ParseColour(s); !ok || c != White {
			t.Errorf("ParseColour(%q) = %v, %v; want White, true", s, c, ok)
		}
	}
	if _, ok := ParseColour("red"); ok {
		t.Error("ParseColour(red) ok = true; want false")
	}
}
