// single.go - Single-game mode: play moves, list moves, draw the board
package main

import (
	"os"

	"github.com/lgbarn/ludus-go/internal/chess"
	"github.com/lgbarn/ludus-go/internal/config"
	"github.com/lgbarn/ludus-go/internal/engine"
	"github.com/lgbarn/ludus-go/internal/errors"
	"github.com/lgbarn/ludus-go/internal/game"
	"github.com/lgbarn/ludus-go/internal/output"
	"github.com/lgbarn/ludus-go/internal/render"
)

// runSingle plays cfg.Moves from cfg.StartFEN and writes one report of the
// resulting position. The first illegal move stops play; its error is
// returned after the report is written.
func runSingle(cfg *config.Config, w output.ReportWriter) error {
	var opts []game.Option
	if cfg.StartFEN != "" {
		opts = append(opts, game.WithFEN(cfg.StartFEN))
	}
	g, err := game.New(opts...)
	if err != nil {
		return err
	}

	playErr := playMoves(g, cfg.Moves)
	if playErr != nil {
		cfg.Logf(2, "Stopped: %v\n", playErr)
	}

	report, err := buildSingleReport(cfg, g)
	if err != nil {
		return err
	}
	if len(cfg.Moves) > 0 {
		report.Outcome = engine.OutcomeFromError(playErr).String()
	}
	if playErr != nil {
		report.Error = playErr.Error()
	}

	if err := w.WriteReport(report); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cfg.Output.SVGFile != "" {
		if err := writeSVG(cfg, g); err != nil {
			return err
		}
	}
	return playErr
}

// playMoves plays moves in order and stops at the first one that is not Legal.
func playMoves(g *game.Game, moves []string) error {
	for _, mv := range moves {
		from, to, err := parseMove(mv)
		if err != nil {
			return &errors.MoveError{
				Err:  err,
				From: from,
				To:   to,
				Ply:  len(g.History()) + 1,
			}
		}
		if err := g.Play(from, to); err != nil {
			return err
		}
	}
	return nil
}

// buildSingleReport reports the game's current position. -from narrows the
// move list to one square.
func buildSingleReport(cfg *config.Config, g *game.Game) (*output.PositionReport, error) {
	side := g.Turn()
	if cfg.ListSide != nil {
		side = *cfg.ListSide
	}
	report := output.BuildReportFor(g.State(), side, cfg.Annotation)

	for _, m := range g.History() {
		report.Played = append(report.Played, m.String())
	}

	if cfg.ListFrom != "" {
		sq, err := chess.ParseSquare(cfg.ListFrom)
		if err != nil {
			return nil, err
		}
		to, err := g.MovesFrom(cfg.ListFrom)
		if err != nil {
			return nil, err
		}
		report.Moves = []output.SquareMoves{{From: sq.String(), To: to}}
		report.MoveCount = len(to)
	}
	return report, nil
}

// writeSVG draws the game's position, marking the last move.
func writeSVG(cfg *config.Config, g *game.Game) error {
	file, err := os.Create(cfg.Output.SVGFile)
	if err != nil {
		return err
	}

	opts := render.Options{
		SquareSize:  cfg.Output.SquareSize,
		Coordinates: cfg.Output.Coordinates,
	}
	if history := g.History(); len(history) > 0 {
		last := history[len(history)-1]
		opts.Marked = []chess.Square{last.From, last.To}
	}

	state := g.State()
	if err := render.WriteSVG(file, &state.Board, opts); err != nil {
		file.Close() //nolint:errcheck,gosec // already failing
		return err
	}
	return file.Close()
}
