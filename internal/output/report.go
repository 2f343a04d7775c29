package output

import (
	"fmt"

	"github.com/lgbarn/ludus-go/internal/check"
	"github.com/lgbarn/ludus-go/internal/chess"
	"github.com/lgbarn/ludus-go/internal/config"
	"github.com/lgbarn/ludus-go/internal/engine"
	"github.com/lgbarn/ludus-go/internal/hashing"
)

// PositionReport describes one analysed position.
type PositionReport struct {
	Index     int           `json:"index"`
	Source    string        `json:"source,omitempty"`
	Line      int           `json:"line,omitempty"`
	FEN       string        `json:"fen"`
	Turn      string        `json:"turn"`
	Played    []string      `json:"played,omitempty"`
	Outcome   string        `json:"outcome,omitempty"`
	Status    string        `json:"status,omitempty"`
	MoveCount int           `json:"moveCount"`
	Moves     []SquareMoves `json:"moves,omitempty"`
	Hash      string        `json:"hash,omitempty"`
	Duplicate bool          `json:"duplicate,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// SquareMoves lists the destinations of one piece.
type SquareMoves struct {
	From string   `json:"from"`
	To   []string `json:"to"`
}

// BuildReport analyses state for the side to move according to ann.
// MoveCount is always filled; the other annotations are optional.
func BuildReport(state *chess.GameState, ann *config.AnnotationConfig) *PositionReport {
	return BuildReportFor(state, state.Turn, ann)
}

// BuildReportFor analyses state listing the moves of colour.
func BuildReportFor(state *chess.GameState, colour chess.Colour, ann *config.AnnotationConfig) *PositionReport {
	r := &PositionReport{
		FEN:  engine.StateToFEN(state),
		Turn: state.Turn.String(),
	}

	moves := engine.MovesFor(state, colour)
	for _, sm := range moves {
		r.MoveCount += len(sm.To)
	}
	if ann == nil {
		return r
	}

	if ann.AddMoveList {
		r.Moves = make([]SquareMoves, 0, len(moves))
		for _, sm := range moves {
			to := make([]string, 0, len(sm.To))
			for _, sq := range sm.To {
				to = append(to, sq.String())
			}
			r.Moves = append(r.Moves, SquareMoves{From: sm.From.String(), To: to})
		}
	}
	if ann.AddCheckStatus {
		r.Status = check.Evaluate(state).String()
	}
	if ann.AddHash {
		r.Hash = fmt.Sprintf("%016x", hashing.GenerateZobristHash(state))
	}
	return r
}

// ErrorReport builds the report for a line that could not be analysed.
func ErrorReport(index int, source string, line int, fen string, err error) *PositionReport {
	return &PositionReport{
		Index:  index,
		Source: source,
		Line:   line,
		FEN:    fen,
		Error:  err.Error(),
	}
}
