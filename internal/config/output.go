package config

// OutputConfig holds settings for report output.
type OutputConfig struct {
	// Format specifies the report format (Text, JSON, FEN)
	Format OutputFormat

	// Indent pretty-prints JSON reports
	Indent bool

	// ParquetFile receives one row per analysed position when set
	ParquetFile string

	// SVGFile receives a diagram of the final position when set
	SVGFile string

	// SquareSize is the side of one board square in SVG pixels
	SquareSize int

	// Coordinates draws file and rank labels around SVG diagrams
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      Text,
		Indent:      true,
		SquareSize:  45,
		Coordinates: true,
	}
}
