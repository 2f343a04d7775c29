package matching

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/ludus-go/internal/chess"
)

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces map[chess.Piece]int
	blackPieces map[chess.Piece]int
}

var materialLetters = map[rune]chess.Piece{
	'k': chess.King,
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
	'p': chess.Pawn,
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
// With exact set, pieces not named must be absent.
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{
		pattern:     pattern,
		exactMatch:  exact,
		whitePieces: make(map[chess.Piece]int),
		blackPieces: make(map[chess.Piece]int),
	}
	white, black, _ := strings.Cut(pattern, ":")
	for _, c := range white {
		if piece, ok := materialLetters[unicode.ToLower(c)]; ok && unicode.IsUpper(c) {
			mm.whitePieces[piece]++
		}
	}
	for _, c := range black {
		if piece, ok := materialLetters[c]; ok {
			mm.blackPieces[piece]++
		}
	}
	return mm
}

// Match reports whether the board carries the pattern's material.
func (mm *MaterialMatcher) Match(state *chess.GameState) bool {
	whiteCounts := make(map[chess.Piece]int)
	blackCounts := make(map[chess.Piece]int)

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		colouredPiece := state.Board.Get(sq)
		if colouredPiece == chess.Empty {
			continue
		}

		pieceType := chess.ExtractPiece(colouredPiece)
		if chess.ExtractColour(colouredPiece) == chess.White {
			whiteCounts[pieceType]++
		} else {
			blackCounts[pieceType]++
		}
	}

	if mm.exactMatch {
		return exactCounts(mm.whitePieces, whiteCounts) && exactCounts(mm.blackPieces, blackCounts)
	}
	return minimalCounts(mm.whitePieces, whiteCounts) && minimalCounts(mm.blackPieces, blackCounts)
}

// exactCounts checks every piece type occurs exactly as often as wanted.
func exactCounts(want, got map[chess.Piece]int) bool {
	for _, piece := range []chess.Piece{chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn} {
		if want[piece] != got[piece] {
			return false
		}
	}
	return true
}

// minimalCounts checks that at least the wanted pieces exist.
func minimalCounts(want, got map[chess.Piece]int) bool {
	for piece, count := range want {
		if got[piece] < count {
			return false
		}
	}
	return true
}

// Name implements PositionMatcher.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return fmt.Sprintf("Material(exact %s)", mm.pattern)
	}
	return fmt.Sprintf("Material(%s)", mm.pattern)
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
