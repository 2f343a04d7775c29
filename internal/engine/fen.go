package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/ludus-go/internal/chess"
	"github.com/lgbarn/ludus-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN piece characters (always English).
var fenPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// upper case for White, lower case for Black.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter, ok := fenPieceChars[chess.ExtractPiece(colouredPiece)]
	if !ok {
		return '?'
	}
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewStateFromFEN creates a game state from a FEN string. The castling
// field is accepted but not modelled. The full-move field is the FEN move
// number, so "1" maps to zero completed full moves.
func NewStateFromFEN(fen string) (*chess.GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	state := chess.NewGameState()

	if err := parsePiecePositions(state, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(state, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(state, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(state, parts); err != nil {
		return nil, err
	}

	return state, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(state *chess.GameState, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "%d ranks in placement", len(ranks))
	}

	for row, rank := range ranks {
		file := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece := ConvertFENCharToPiece(byte(c))
				if piece == chess.Empty {
					return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character: %c", c)
				}
				if file >= chess.BoardSize {
					return errors.Wrap(errors.ErrInvalidFEN, "position out of bounds")
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				state.Board.Set(chess.SquareAt(row, file), chess.MakeColouredPiece(colour, piece))
				file++
			}
		}
		if file != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d squares", chess.BoardSize-row, file)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(state *chess.GameState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		state.Turn = chess.White
	case "b":
		state.Turn = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move: %s", parts[1])
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(state *chess.GameState, parts []string) error {
	state.EnPassant = chess.NoSquare
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidFEN, "en passant square %q", parts[3])
	}
	state.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(state *chess.GameState, parts []string) error {
	if len(parts) >= 5 {
		if _, err := fmt.Sscanf(parts[4], "%d", &state.HalfMoves); err != nil {
			return errors.Wrapf(errors.ErrInvalidFEN, "halfmove clock %q", parts[4])
		}
	}
	if len(parts) >= 6 {
		var moveNumber uint
		if _, err := fmt.Sscanf(parts[5], "%d", &moveNumber); err != nil {
			return errors.Wrapf(errors.ErrInvalidFEN, "fullmove number %q", parts[5])
		}
		if moveNumber > 0 {
			state.FullMoves = moveNumber - 1
		}
	}
	return nil
}

// StateToFEN converts a game state to a FEN string. Castling rights are
// always written as "-".
func StateToFEN(state *chess.GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, &state.Board)
	sb.WriteByte(' ')
	if state.Turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - ")
	writeEnPassant(&sb, state)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", state.HalfMoves, state.FullMoves+1)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.SquareAt(row, file))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, state *chess.GameState) {
	if state.EnPassant.Valid() {
		sq := state.EnPassant
		sb.WriteByte(byte(sq.Col()))
		sb.WriteByte(byte(sq.Rank()))
	} else {
		sb.WriteByte('-')
	}
}
