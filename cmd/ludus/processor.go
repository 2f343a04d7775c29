// processor.go - Batch position analysis and output functions
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/ludus-go/internal/check"
	"github.com/lgbarn/ludus-go/internal/chess"
	"github.com/lgbarn/ludus-go/internal/config"
	"github.com/lgbarn/ludus-go/internal/engine"
	"github.com/lgbarn/ludus-go/internal/errors"
	"github.com/lgbarn/ludus-go/internal/hashing"
	"github.com/lgbarn/ludus-go/internal/matching"
	"github.com/lgbarn/ludus-go/internal/output"
	"github.com/lgbarn/ludus-go/internal/worker"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg       *config.Config
	detector  *hashing.ThreadSafeDuplicateDetector
	matcher   matching.PositionMatcher
	writer    output.ReportWriter
	dupWriter output.ReportWriter
}

// Statistics counts what a batch run did.
type Statistics struct {
	Total      int
	Output     int
	Duplicates int
	Errors     int
}

// newProcessingContext builds the batch context for cfg writing to w.
func newProcessingContext(cfg *config.Config, w output.ReportWriter) *ProcessingContext {
	ctx := &ProcessingContext{cfg: cfg, writer: w}
	if cfg.Duplicate.Enabled() {
		ctx.detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	}
	if cfg.Duplicate.DuplicateFile != nil {
		ctx.dupWriter = output.NewFENWriter(cfg.Duplicate.DuplicateFile)
	}
	return ctx
}

// readFENItems reads one position per line. Blank lines and lines starting
// with '#' are skipped. Indexes continue from startIndex.
func readFENItems(r io.Reader, source string, startIndex int) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			FEN:    text,
			Source: source,
			Line:   line,
			Index:  startIndex + len(items),
		})
	}
	if err := scanner.Err(); err != nil {
		return items, &errors.ParseError{File: source, Line: line, Err: err}
	}
	return items, nil
}

// buildPositionMatcher combines the material and placement criteria.
// It returns nil when no criterion is given.
func buildPositionMatcher(material, exactMaterial, pattern string, invert bool) (matching.PositionMatcher, error) {
	composite := matching.NewCompositeMatcher(matching.MatchAll)

	if exactMaterial != "" {
		composite.Add(matching.NewMaterialMatcher(exactMaterial, true))
	} else if material != "" {
		composite.Add(matching.NewMaterialMatcher(material, false))
	}

	if pattern != "" {
		pm := matching.NewPatternMatcher()
		if strings.ContainsAny(pattern, "?!*Aa_") {
			pm.AddPattern(strings.Fields(pattern)[0], pattern, invert)
		} else if err := pm.AddFEN(pattern, pattern); err != nil {
			return nil, err
		}
		composite.Add(pm)
	}

	if composite.Len() == 0 {
		return nil, nil
	}
	return composite, nil
}

// analysePosition returns the worker function that parses and reports one line.
func analysePosition(cfg *config.Config, matcher matching.PositionMatcher) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Item: item, Index: item.Index}

		state, err := engine.NewStateFromFEN(item.FEN)
		if err != nil {
			result.Error = &errors.ParseError{File: item.Source, Line: item.Line, Err: err}
			return result
		}

		side := state.Turn
		if cfg.ListSide != nil {
			side = *cfg.ListSide
		}
		report := output.BuildReportFor(state, side, cfg.Annotation)
		report.Index = item.Index
		report.Source = item.Source
		report.Line = item.Line

		result.State = state
		result.Report = report
		result.ShouldOutput = matchesFilter(cfg.Filter, state) && (matcher == nil || matcher.Match(state))
		return result
	}
}

// matchesFilter reports whether state passes every configured filter.
// The status filters are alternatives; a position needs to match one.
func matchesFilter(f *config.FilterConfig, state *chess.GameState) bool {
	if !f.Active() {
		return true
	}
	if f.SideToMove != nil && state.Turn != *f.SideToMove {
		return false
	}
	if f.CheckMoveBounds {
		n := uint(engine.CountMoves(state, state.Turn))
		if n < f.LowerMoveBound || n > f.UpperMoveBound {
			return false
		}
	}
	if f.MatchCheck || f.MatchCheckmate || f.MatchStalemate {
		switch check.Evaluate(state) {
		case check.Check:
			return f.MatchCheck
		case check.Checkmate:
			return f.MatchCheckmate || f.MatchCheck
		case check.Stalemate:
			return f.MatchStalemate
		default:
			return false
		}
	}
	return true
}

// processPositions analyses items in parallel and writes the reports in
// input order.
func processPositions(ctx *ProcessingContext, items []worker.WorkItem) (Statistics, error) {
	stats := Statistics{Total: len(items)}
	if len(items) == 0 {
		return stats, nil
	}

	numWorkers := ctx.cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	pool := worker.NewPoolWithOptions(analysePosition(ctx.cfg, ctx.matcher),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(ctx.cfg.BufferSize),
	)
	ctx.cfg.Logf(2, "Analysing %d position(s) with %d worker(s)\n", len(items), pool.NumWorkers())

	for _, res := range pool.RunAll(items) {
		if res.Error != nil {
			stats.Errors++
			ctx.cfg.Logf(1, "%v\n", res.Error)
			report := output.ErrorReport(res.Index, res.Item.Source, res.Item.Line, res.Item.FEN, res.Error)
			if err := ctx.writer.WriteReport(report); err != nil {
				return stats, err
			}
			continue
		}
		if !res.ShouldOutput {
			continue
		}

		report := res.Report.(*output.PositionReport)
		if ctx.detector != nil && ctx.detector.CheckAndAdd(res.State) {
			stats.Duplicates++
			report.Duplicate = true
			ctx.cfg.Logf(2, "%v\n", errors.Wrapf(errors.ErrDuplicatePosition, "%s:%d", report.Source, report.Line))
			if ctx.dupWriter != nil {
				if err := ctx.dupWriter.WriteReport(report); err != nil {
					return stats, err
				}
			}
			if ctx.cfg.Duplicate.Suppress {
				continue
			}
		}

		if err := ctx.writer.WriteReport(report); err != nil {
			return stats, err
		}
		stats.Output++
	}

	if ctx.detector != nil {
		if ctx.detector.IsFull() {
			ctx.cfg.Logf(1, "Duplicate table full after %d position(s)\n", ctx.detector.UniqueCount())
		}
		ctx.cfg.Logf(2, "%d unique position(s), %d duplicate(s)\n", ctx.detector.UniqueCount(), ctx.detector.DuplicateCount())
	}
	return stats, nil
}

// processAllInputs reads every named file ("-" is stdin) and analyses the
// positions as one batch.
func processAllInputs(ctx *ProcessingContext, args []string) (Statistics, error) {
	var items []worker.WorkItem
	unreadable := 0
	for _, filename := range args {
		var r io.Reader = os.Stdin
		var file *os.File
		if filename != "-" {
			f, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
				unreadable++
				continue
			}
			file = f
			r = f
		}

		fileItems, err := readFENItems(r, filename, len(items))
		if file != nil {
			file.Close() //nolint:errcheck,gosec // G104: read-only file
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", filename, err)
			unreadable++
		}
		ctx.cfg.Logf(2, "Read %d position(s) from %s\n", len(fileItems), filename)
		items = append(items, fileItems...)
	}

	stats, err := processPositions(ctx, items)
	stats.Errors += unreadable
	return stats, err
}
