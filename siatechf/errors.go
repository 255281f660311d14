package siatechf

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned (or wrapped) for invalid inputs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTooManyPoints is matched by *ErrPointLimit.
	ErrTooManyPoints = errors.New("too many points")
)

// ErrPointLimit reports a point set above the configured size limit.
type ErrPointLimit struct {
	Points int
	Limit  int
}

func (e *ErrPointLimit) Error() string {
	return fmt.Sprintf("point set has %d points, limit is %d", e.Points, e.Limit)
}

// Unwrap returns ErrTooManyPoints.
func (e *ErrPointLimit) Unwrap() error {
	return ErrTooManyPoints
}

// CompressionRatio returns covered / (patternSize + translators - 1).
//
// It is the number of distinct points a class covers per point needed to
// describe it: the pattern plus every translator except the zero shift.
func CompressionRatio(covered, patternSize, translators int) (float64, error) {
	if patternSize < 1 {
		return 0, fmt.Errorf("%w: pattern size must be positive, was %d", ErrInvalidArgument, patternSize)
	}
	if translators < 1 {
		return 0, fmt.Errorf("%w: translator count must be positive, was %d", ErrInvalidArgument, translators)
	}
	if covered < 0 {
		return 0, fmt.Errorf("%w: covered point count must be non-negative, was %d", ErrInvalidArgument, covered)
	}
	return float64(covered) / float64(patternSize+translators-1), nil
}
