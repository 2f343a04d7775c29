package config

// AnnotationConfig holds settings for what each position report carries.
type AnnotationConfig struct {
	AddCheckStatus bool // Check, checkmate or stalemate of the side to move
	AddMoveList    bool // Every legal move of the side to move
	AddMoveCount   bool // Number of legal moves of the side to move
	AddHash        bool // Zobrist hash of the position
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{
		AddMoveCount: true,
	}
}
