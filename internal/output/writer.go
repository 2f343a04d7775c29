package output

import (
	"io"

	"github.com/lgbarn/ludus-go/internal/config"
)

// ReportWriter is the interface for writing position reports.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *PositionReport) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the ReportWriter for the configured format.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	switch cfg.Output.Format {
	case config.JSON:
		return NewJSONWriter(w, cfg)
	case config.FEN:
		return NewFENWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes reports in the text format.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(r *PositionReport) error {
	WriteReportText(tw.w, r)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FENWriter writes one FEN line per report.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WriteReport writes the report's FEN line. Error reports are skipped.
func (fw *FENWriter) WriteReport(r *PositionReport) error {
	WriteReportFEN(fw.w, r)
	return nil
}

// Flush is a no-op.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	indent  bool
	reports []*PositionReport
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		indent:  cfg.Output.Indent,
		reports: make([]*PositionReport, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		indent: cfg.Output.Indent,
		single: true,
	}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r *PositionReport) error {
	if jw.single {
		return WriteReportJSON(jw.w, r, jw.indent)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	err := WriteReportsJSON(jw.w, jw.reports, jw.indent)

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// MultiWriter fans reports out to several writers.
type MultiWriter []ReportWriter

// WriteReport writes r to every writer, stopping at the first error.
func (m MultiWriter) WriteReport(r *PositionReport) error {
	for _, w := range m {
		if err := w.WriteReport(r); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes every writer.
func (m MultiWriter) Flush() error {
	for _, w := range m {
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every writer and returns the first error.
func (m MultiWriter) Close() error {
	var first error
	for _, w := range m {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
