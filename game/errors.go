package game

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidMoveCap is returned when the maximum removal is not greater than 2.
	ErrInvalidMoveCap = errors.New("move cap must be an integer greater than 2")
	// ErrInvalidPile is returned when the starting pile does not exceed the move cap.
	ErrInvalidPile = errors.New("starting pile must exceed the move cap")
	// ErrIllegalAmount is returned for removals other than 1, 2 or the move cap.
	ErrIllegalAmount = errors.New("choice is not valid")
	// ErrTooMany is returned when a removal is larger than the pile.
	ErrTooMany = errors.New("not enough blocks remaining")
	// ErrGameOver is returned when a move is attempted on an empty pile.
	ErrGameOver = errors.New("game is over")
)

// moveError records the move that could not be made. Its Cause is one of the sentinel errors above.
type moveError struct {
	move   PlayerMove
	reason error
}

func (err moveError) Error() string {
	return fmt.Sprintf("Unable to make %v: %v", err.move, err.reason)
}

func (err moveError) Cause() error { return err.reason }

// IsMoveError returns true if err is an illegal move.
func IsMoveError(err error) bool {
	_, ok := err.(moveError)
	return ok
}
