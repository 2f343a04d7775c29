package engine

import (
	stderrors "errors"

	"github.com/lgbarn/ludus-go/internal/errors"
)

// Outcome is the verdict of validating one move: Legal or the first rule
// the move broke. It is a value; callers inspect it before applying.
type Outcome int

const (
	Legal Outcome = iota
	OutOfBounds
	EmptySquare
	WrongColor
	ImpossibleMove
	FriendlyFire
	PawnVerticalCapture
	PawnSecondDoubleMove
	PawnInvalidEnpassant
	PathBlocked
	InvalidSquareName
)

var outcomeNames = [...]string{
	Legal:                "LEGAL",
	OutOfBounds:          "OUT_OF_BOUNDS",
	EmptySquare:          "EMPTY_SQUARE",
	WrongColor:           "WRONG_COLOR",
	ImpossibleMove:       "IMPOSSIBLE_MOVE",
	FriendlyFire:         "FRIENDLY_FIRE",
	PawnVerticalCapture:  "PAWN_VERTICAL_CAPTURE",
	PawnSecondDoubleMove: "PAWN_SECOND_DOUBLE_MOVE",
	PawnInvalidEnpassant: "PAWN_INVALID_ENPASSANT",
	PathBlocked:          "PATH_BLOCKED",
	InvalidSquareName:    "INVALID_SQUARE_NAME",
}

var outcomeErrors = [...]error{
	OutOfBounds:          errors.ErrOutOfBounds,
	EmptySquare:          errors.ErrEmptySquare,
	WrongColor:           errors.ErrWrongColor,
	ImpossibleMove:       errors.ErrImpossibleMove,
	FriendlyFire:         errors.ErrFriendlyFire,
	PawnVerticalCapture:  errors.ErrPawnVerticalCapture,
	PawnSecondDoubleMove: errors.ErrPawnSecondDoubleMove,
	PawnInvalidEnpassant: errors.ErrPawnInvalidEnpassant,
	PathBlocked:          errors.ErrPathBlocked,
	InvalidSquareName:    errors.ErrInvalidSquareName,
}

// String returns the upper-snake name of the outcome, e.g. "PATH_BLOCKED".
func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "UNKNOWN"
}

// IsLegal reports whether o is Legal.
func (o Outcome) IsLegal() bool {
	return o == Legal
}

// Err returns the sentinel error for o, or nil when o is Legal.
func (o Outcome) Err() error {
	if o == Legal {
		return nil
	}
	if o > 0 && int(o) < len(outcomeErrors) {
		return outcomeErrors[o]
	}
	return errors.ErrIllegalMove
}

// OutcomeFromError recovers the Outcome behind err, typically a
// *errors.MoveError from a game session. A nil err is Legal; an error
// carrying no outcome kind is ImpossibleMove.
func OutcomeFromError(err error) Outcome {
	if err == nil {
		return Legal
	}
	for i := OutOfBounds; int(i) < len(outcomeErrors); i++ {
		if stderrors.Is(err, outcomeErrors[i]) {
			return i
		}
	}
	return ImpossibleMove
}
