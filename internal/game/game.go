// Package game provides a single-owner game session over the engine:
// square names in, outcomes out.
package game

import (
	"fmt"

	"github.com/lgbarn/ludus-go/internal/chess"
	"github.com/lgbarn/ludus-go/internal/engine"
	"github.com/lgbarn/ludus-go/internal/errors"
)

// Move is one applied move in a session's history.
type Move struct {
	From     chess.Square
	To       chess.Square
	Piece    chess.Piece // coloured piece that moved
	Captured chess.Piece // coloured piece removed, or Empty
}

// String returns the move as "E2E4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// SquareMoves is the name form of engine.SquareMoves.
type SquareMoves struct {
	From string
	To   []string
}

// Game owns one GameState. It is not safe for concurrent use.
type Game struct {
	state   *chess.GameState
	history []Move
}

// Option configures a new Game.
type Option func(*Game) error

// WithState starts the game from a copy of state.
func WithState(state *chess.GameState) Option {
	return func(g *Game) error {
		if state == nil {
			return fmt.Errorf("nil initial state: %w", errors.ErrInvalidConfig)
		}
		g.state = state.Copy()
		return nil
	}
}

// WithFEN starts the game from a FEN position.
func WithFEN(fen string) Option {
	return func(g *Game) error {
		state, err := engine.NewStateFromFEN(fen)
		if err != nil {
			return err
		}
		g.state = state
		return nil
	}
}

// New creates a game at the standard starting position unless an option
// supplies another one.
func New(opts ...Option) (*Game, error) {
	g := &Game{state: chess.NewInitialState()}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// State returns a copy of the current state.
func (g *Game) State() *chess.GameState {
	return g.state.Copy()
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.state.Turn
}

// PieceAt returns the coloured piece on the named square.
func (g *Game) PieceAt(name string) (chess.Piece, error) {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		return chess.Empty, err
	}
	return g.state.Board.Get(sq), nil
}

// MovesFrom returns the names of the legal destinations from the named square.
func (g *Game) MovesFrom(name string) ([]string, error) {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		return nil, err
	}
	return names(engine.MovesFrom(g.state, sq)), nil
}

// MovesFor returns the legal moves of every piece of colour by name.
func (g *Game) MovesFor(colour chess.Colour) []SquareMoves {
	all := engine.MovesFor(g.state, colour)
	out := make([]SquareMoves, 0, len(all))
	for _, sm := range all {
		out = append(out, SquareMoves{From: sm.From.String(), To: names(sm.To)})
	}
	return out
}

// AttemptMove validates the named move and applies it when Legal. A name
// that does not parse yields InvalidSquareName and nothing changes.
func (g *Game) AttemptMove(from, to string) engine.Outcome {
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return engine.InvalidSquareName
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return engine.InvalidSquareName
	}

	mover := g.state.Board.Get(fromSq)
	captured := g.state.Board.Get(toSq)
	if mover != chess.Empty && captured == chess.Empty &&
		chess.ExtractPiece(mover) == chess.Pawn && fromSq.File() != toSq.File() {
		captured = g.state.Board.Get(chess.SquareAt(fromSq.Row(), toSq.File()))
	}

	outcome := engine.ApplyMove(g.state, fromSq, toSq)
	if outcome == engine.Legal {
		g.history = append(g.history, Move{From: fromSq, To: toSq, Piece: mover, Captured: captured})
	}
	return outcome
}

// Play is AttemptMove reporting failure as a *errors.MoveError.
func (g *Game) Play(from, to string) error {
	outcome := g.AttemptMove(from, to)
	if outcome == engine.Legal {
		return nil
	}
	return &errors.MoveError{
		Err:  outcome.Err(),
		From: from,
		To:   to,
		Ply:  len(g.history) + 1,
	}
}

// History returns the moves applied so far, oldest first.
func (g *Game) History() []Move {
	return append([]Move(nil), g.history...)
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.StateToFEN(g.state)
}

func names(squares []chess.Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	return out
}
