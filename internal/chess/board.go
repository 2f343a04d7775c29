package chess

// Board holds the contents of the 64 squares, indexed by Square.
type Board [NumSquares]Piece

// Get returns the piece on sq, or Empty for an off-board square.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b[sq]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b[sq] = piece
	}
}

// At returns the piece at the given file and rank characters.
func (b *Board) At(col Col, rank Rank) Piece {
	return b.Get(SquareFromCoords(col, rank))
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == Empty
}

// Find returns the first square holding piece, scanning from A8.
func (b *Board) Find(piece Piece) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b[sq] == piece {
			return sq
		}
	}
	return NoSquare
}

// GameState is one game's position plus the bookkeeping needed to validate
// the next move. It is owned by a single caller; mutate it only through
// engine.ApplyMove.
type GameState struct {
	Board Board

	// Who has the next move.
	Turn Colour

	// Full moves completed, incremented after each Black move.
	FullMoves uint

	// Half-move clock since the last pawn move or capture.
	HalfMoves uint

	// The square passed over by a pawn double-step on the previous ply,
	// or NoSquare. Only valid for the side now to move.
	EnPassant Square
}

// NewGameState creates an empty board with White to move.
func NewGameState() *GameState {
	return &GameState{
		Turn:      White,
		EnPassant: NoSquare,
	}
}

// backRank is the piece order on the first and eighth ranks.
var backRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position with
// White to move and both counters at zero.
func (s *GameState) SetupInitialPosition() {
	s.Board = Board{}
	for file := 0; file < BoardSize; file++ {
		s.Board[SquareAt(0, file)] = B(backRank[file])
		s.Board[SquareAt(1, file)] = B(Pawn)
		s.Board[SquareAt(6, file)] = W(Pawn)
		s.Board[SquareAt(7, file)] = W(backRank[file])
	}
	s.Turn = White
	s.FullMoves = 0
	s.HalfMoves = 0
	s.EnPassant = NoSquare
}

// NewInitialState returns a state holding the standard starting position.
func NewInitialState() *GameState {
	s := NewGameState()
	s.SetupInitialPosition()
	return s
}

// Copy creates a deep copy of the state.
func (s *GameState) Copy() *GameState {
	c := *s
	return &c
}
