// ludus checks chess moves for legality, lists legal moves and analyses
// batches of FEN positions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/ludus-go/internal/config"
	"github.com/lgbarn/ludus-go/internal/matching"
	"github.com/lgbarn/ludus-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("ludus version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := applyFlags(config.NewConfigBuilder())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	writer, err := setupWriters(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating Parquet file %s: %v\n", cfg.Output.ParquetFile, err)
		os.Exit(1)
	}

	status := 0
	if flag.NArg() == 0 {
		if err := runSingle(cfg, writer); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = 1
		}
	} else {
		ctx := newProcessingContext(cfg, writer)
		ctx.matcher = setupPositionMatcher(cfg)
		stats, err := processAllInputs(ctx, flag.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			status = 1
		}
		if stats.Errors > 0 {
			status = 1
		}
		if cfg.Verbosity > 0 {
			reportStatistics(cfg.LogFile, ctx, stats)
		}
	}

	if err := writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing output: %v\n", err)
		status = 1
	}
	closeFile(cfg.OutputFile)
	closeFile(cfg.Duplicate.DuplicateFile)
	closeFile(cfg.LogFile)
	os.Exit(status)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// setupPositionMatcher builds the material and placement matcher from flags.
func setupPositionMatcher(cfg *config.Config) matching.PositionMatcher {
	matcher, err := buildPositionMatcher(*materialMatch, *materialMatchExact, *fenPattern, *fenPatternInvert)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing FEN filter: %v\n", err)
		os.Exit(1)
	}
	if matcher != nil {
		cfg.Logf(2, "Matching positions with %s\n", matcher.Name())
	}
	return matcher
}

// setupWriters builds the report writer for the configured format, plus
// the Parquet export when requested.
func setupWriters(cfg *config.Config) (output.ReportWriter, error) {
	w := output.NewWriter(cfg.OutputFile, cfg)
	if cfg.Output.ParquetFile == "" {
		return w, nil
	}

	pw, err := output.NewParquetWriter(cfg.Output.ParquetFile, 1)
	if err != nil {
		return nil, err
	}
	return output.MultiWriter{w, pw}, nil
}

// closeFile closes w if it is a file other than the standard streams.
func closeFile(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || f == os.Stdout || f == os.Stderr {
		return
	}
	f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
}

// reportStatistics prints the final statistics to w.
func reportStatistics(w io.Writer, ctx *ProcessingContext, stats Statistics) {
	if ctx.detector != nil {
		fmt.Fprintf(w, "%d position(s) output, %d duplicate(s) out of %d.\n", stats.Output, stats.Duplicates, stats.Total)
	} else {
		fmt.Fprintf(w, "%d position(s) matched out of %d.\n", stats.Output, stats.Total)
	}
	if stats.Errors > 0 {
		fmt.Fprintf(w, "%d input error(s).\n", stats.Errors)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: ludus [options] [fen-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Checks chess moves for legality and lists legal moves.\n\n")
	fmt.Fprintf(os.Stderr, "Without files, -fen and -moves describe a single game.\n")
	fmt.Fprintf(os.Stderr, "With files, each line is a FEN position analysed in parallel.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  text   Human-readable report (default)\n")
	fmt.Fprintf(os.Stderr, "  json   JSON report\n")
	fmt.Fprintf(os.Stderr, "  fen    One FEN line per position\n")
}
