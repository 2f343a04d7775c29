package matching

import (
	"strings"

	"github.com/lgbarn/ludus-go/internal/chess"
	"github.com/lgbarn/ludus-go/internal/engine"
	"github.com/lgbarn/ludus-go/internal/hashing"
)

// FENPattern represents a FEN placement pattern to match.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
type FENPattern struct {
	Pattern string
	Label   string // optional label for matched position
	Hash    uint64 // placement hash for exact FEN matches
	IsExact bool   // true if this is an exact FEN (no wildcards)
	ranks   []string
}

// PatternMatcher selects positions by piece placement.
type PatternMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64]*FENPattern
	hasher      *hashing.PositionHasher
}

// NewPatternMatcher creates a new pattern matcher.
func NewPatternMatcher() *PatternMatcher {
	return &PatternMatcher{
		exactHashes: make(map[uint64]*FENPattern),
		hasher:      hashing.NewPositionHasher(hashing.HashPlacement),
	}
}

// AddFEN adds an exact position to match. Only its placement counts.
func (pm *PatternMatcher) AddFEN(fen string, label string) error {
	state, err := engine.NewStateFromFEN(fen)
	if err != nil {
		return err
	}

	hash := pm.hasher.Hash(state)
	pattern := &FENPattern{
		Pattern: fen,
		Label:   label,
		Hash:    hash,
		IsExact: true,
	}

	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[hash] = pattern

	return nil
}

// AddPattern adds a placement pattern with wildcards. With includeInvert
// the colour-flipped pattern is added as well.
func (pm *PatternMatcher) AddPattern(pattern string, label string, includeInvert bool) {
	pm.patterns = append(pm.patterns, &FENPattern{
		Pattern: pattern,
		Label:   label,
		ranks:   strings.Split(pattern, "/"),
	})

	if includeInvert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &FENPattern{
			Pattern: inverted,
			Label:   label,
			ranks:   strings.Split(inverted, "/"),
		})
	}
}

// Match implements PositionMatcher.
func (pm *PatternMatcher) Match(state *chess.GameState) bool {
	return pm.MatchPattern(state) != nil
}

// MatchPattern returns the first pattern the position matches, or nil.
func (pm *PatternMatcher) MatchPattern(state *chess.GameState) *FENPattern {
	if len(pm.patterns) == 0 {
		return nil
	}

	// First check exact hash matches (fast)
	if pattern, ok := pm.exactHashes[pm.hasher.Hash(state)]; ok {
		return pattern
	}

	boardRanks := boardToRanks(&state.Board)
	for _, pattern := range pm.patterns {
		if !pattern.IsExact && matchRanks(boardRanks, pattern) {
			return pattern
		}
	}

	return nil
}

// Name implements PositionMatcher.
func (pm *PatternMatcher) Name() string {
	return "Pattern"
}

// PatternCount returns the number of patterns.
func (pm *PatternMatcher) PatternCount() int {
	return len(pm.patterns)
}

// matchRanks checks board ranks (rank 1 first) against a pattern (rank 8 first).
func matchRanks(boardRanks [8]string, pattern *FENPattern) bool {
	if len(pattern.ranks) == 0 {
		return false
	}

	for i, patternRank := range pattern.ranks {
		if i >= 8 {
			break
		}
		if !matchRank(boardRanks[7-i], patternRank) {
			return false
		}
	}

	return true
}

// boardToRanks converts a board to rank strings (rank 1 first).
func boardToRanks(board *chess.Board) [8]string {
	var ranks [8]string

	for r := 0; r < 8; r++ {
		rank := chess.Rank('1' + byte(r))
		var sb strings.Builder

		for c := chess.Col('a'); c <= 'h'; c++ {
			sb.WriteByte(pieceToChar(board.At(c, rank)))
		}

		ranks[r] = sb.String()
	}

	return ranks
}

// pieceToChar converts a piece to its FEN letter, '_' for an empty square.
func pieceToChar(piece chess.Piece) byte {
	if piece == chess.Empty {
		return '_'
	}
	return engine.ColouredPieceToFENLetter(piece)
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		if bi >= len(boardRank) && patternRank[pi] != '*' {
			return false
		}

		c := patternRank[pi]

		switch c {
		case '*':
			// * matches zero or more of anything
			pi++
			if pi >= len(patternRank) {
				return true // * at end matches rest
			}
			for bi <= len(boardRank) {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
				bi++
			}
			return false

		case '?':
			bi++
			pi++

		case '!':
			if boardRank[bi] == '_' {
				return false
			}
			bi++
			pi++

		case 'A':
			if boardRank[bi] < 'A' || boardRank[bi] > 'Z' {
				return false
			}
			bi++
			pi++

		case 'a':
			if boardRank[bi] < 'a' || boardRank[bi] > 'z' {
				return false
			}
			bi++
			pi++

		case '1', '2', '3', '4', '5', '6', '7', '8':
			// Number means N empty squares
			count := int(c - '0')
			for i := 0; i < count; i++ {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++

		default:
			// Exact piece match, '_' included
			if boardRank[bi] != c {
				return false
			}
			bi++
			pi++
		}
	}

	return bi == len(boardRank)
}

// invertPattern swaps colours and reverses rank order.
func invertPattern(pattern string) string {
	var result strings.Builder

	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 32)
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 32)
		default:
			result.WriteRune(c)
		}
	}

	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}

	return strings.Join(ranks, "/")
}
