package hanoi

import (
	"errors"
	"fmt"
)

// Domain errors for puzzle operations.
var (
	// ErrEmptyPeg indicates a move from a peg holding no disks.
	ErrEmptyPeg = errors.New("hanoi: move from empty peg")

	// ErrDiskMismatch indicates the peg's top disk is not the one the move
	// names. This signals a desync between a move sequence and the board.
	ErrDiskMismatch = errors.New("hanoi: top disk does not match move")

	// ErrIllegalPlacement indicates an attempt to place a disk on a smaller one.
	ErrIllegalPlacement = errors.New("hanoi: cannot place disk on smaller disk")

	// ErrDiskCount indicates a disk count outside the supported range.
	ErrDiskCount = errors.New("hanoi: disk count out of range")
)

// MoveError wraps a rejected move with its position in the sequence.
type MoveError struct {
	Index   int
	Move    Move
	Wrapped error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %d (%s): %v", e.Index, e.Move, e.Wrapped)
}

func (e *MoveError) Unwrap() error {
	return e.Wrapped
}
