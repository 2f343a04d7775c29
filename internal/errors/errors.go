// Package errors provides sentinel errors and error types for ludus.
// It defines the move-legality error kinds and structured error types that
// preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per move-legality error kind.
// Use these with errors.Is() to check for specific failures.
var (
	// ErrOutOfBounds indicates an origin or destination off the board.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrEmptySquare indicates a move from a square with no piece.
	ErrEmptySquare = errors.New("empty square")

	// ErrWrongColor indicates a move of the side not to move.
	ErrWrongColor = errors.New("wrong color")

	// ErrImpossibleMove indicates a displacement the piece cannot make.
	ErrImpossibleMove = errors.New("impossible move")

	// ErrFriendlyFire indicates a capture of one's own piece.
	ErrFriendlyFire = errors.New("friendly fire")

	// ErrPawnVerticalCapture indicates a straight pawn move onto an occupied square.
	ErrPawnVerticalCapture = errors.New("pawn vertical capture")

	// ErrPawnSecondDoubleMove indicates a double step away from the starting rank.
	ErrPawnSecondDoubleMove = errors.New("pawn second double move")

	// ErrPawnInvalidEnpassant indicates a diagonal pawn move onto an empty
	// square that is not a valid en passant capture.
	ErrPawnInvalidEnpassant = errors.New("pawn invalid en passant")

	// ErrPathBlocked indicates an occupied square between origin and destination.
	ErrPathBlocked = errors.New("path blocked")

	// ErrInvalidSquareName indicates a square name outside A1..H8.
	ErrInvalidSquareName = errors.New("invalid square name")
)

// Sentinel errors for failures outside move validation.
var (
	// ErrIllegalMove is the umbrella for every move-legality kind above.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicatePosition indicates a position already seen in a batch.
	ErrDuplicatePosition = errors.New("duplicate position")
)

// MoveError wraps a move-legality error with the attempted move and the
// ply at which it was attempted. errors.Is() matches both the specific kind
// and ErrIllegalMove.
type MoveError struct {
	Err  error  // The underlying kind, e.g. ErrPathBlocked
	From string // Origin square name as given
	To   string // Destination square name as given
	Ply  int    // 1-based ply of the attempt (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is makes every MoveError match ErrIllegalMove.
func (e *MoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

// ParseError represents an input error with file location context.
// It's used for FEN and move-list parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
