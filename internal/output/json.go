package output

import (
	"encoding/json"
	"io"
)

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Positions []*PositionReport `json:"positions"`
}

// WriteReportJSON writes a single report as a JSON object.
func WriteReportJSON(w io.Writer, r *PositionReport, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}

// WriteReportsJSON writes reports wrapped in a JSONOutput object.
func WriteReportsJSON(w io.Writer, reports []*PositionReport, indent bool) error {
	if reports == nil {
		reports = []*PositionReport{}
	}
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(&JSONOutput{Positions: reports})
}
