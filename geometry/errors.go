package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned (or wrapped) when an argument violates a
// documented precondition.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDimensionMismatch indicates an operation on points of different dimension.
//
// errors.Is(err, ErrInvalidArgument) reports true for this error.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Is makes the error match ErrInvalidArgument.
func (e *ErrDimensionMismatch) Is(target error) bool {
	return target == ErrInvalidArgument
}
