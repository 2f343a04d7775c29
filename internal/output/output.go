// Package output provides report formatting for analysed positions.
package output

import (
	"fmt"
	"io"
	"strings"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	indent        string
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// SetIndent sets the prefix written at the start of wrapped lines.
func (o *OutputWriter) SetIndent(indent string) {
	o.indent = indent
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteReportText writes a report in the human-readable text format.
func WriteReportText(w io.Writer, r *PositionReport) {
	ow := NewOutputWriter(w, 80)

	if r.Source != "" {
		ow.WriteNoSpace(fmt.Sprintf("%s:%d", r.Source, r.Line))
		ow.NewLine()
	}
	ow.WriteNoSpace("FEN: " + r.FEN)
	ow.NewLine()

	if r.Error != "" {
		ow.WriteNoSpace("Error: " + r.Error)
		ow.NewLine()
	}
	if r.Turn == "" {
		ow.NewLine()
		return
	}

	if len(r.Played) > 0 {
		ow.SetIndent("        ")
		ow.WriteNoSpace("Played:")
		for _, m := range r.Played {
			ow.Write(m)
		}
		ow.NewLine()
	}
	if r.Outcome != "" {
		ow.WriteNoSpace("Outcome: " + r.Outcome)
		ow.NewLine()
	}

	ow.WriteNoSpace(fmt.Sprintf("Turn: %s  Moves: %d", r.Turn, r.MoveCount))
	if r.Status != "" {
		ow.WriteNoSpace("  Status: " + r.Status)
	}
	if r.Duplicate {
		ow.WriteNoSpace("  (duplicate)")
	}
	ow.NewLine()

	if r.Hash != "" {
		ow.WriteNoSpace("Hash: " + r.Hash)
		ow.NewLine()
	}

	for _, sm := range r.Moves {
		ow.SetIndent("    ")
		ow.WriteNoSpace("  " + sm.From + ":")
		for _, to := range sm.To {
			ow.Write(to)
		}
		ow.NewLine()
	}
	ow.NewLine()
}

// WriteReportFEN writes the report's position as a single FEN line.
func WriteReportFEN(w io.Writer, r *PositionReport) {
	if r.Error != "" {
		return
	}
	fmt.Fprintln(w, strings.TrimSpace(r.FEN))
}
