package geopattern

import (
	"errors"
	"fmt"

	"github.com/hupe1980/geopattern/geometry"
	"github.com/hupe1980/geopattern/internal/resource"
	"github.com/hupe1980/geopattern/pointset"
	"github.com/hupe1980/geopattern/search"
	"github.com/hupe1980/geopattern/siatechf"
)

var (
	// ErrInvalidArgument is returned for invalid inputs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResourceExhausted is returned when a score is too large to analyse
	// within the configured limits.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrNotFound is returned when a position does not resolve in a score.
	ErrNotFound = errors.New("not found")
)

// ErrInvalidCompressionRatio indicates a negative (or NaN) threshold.
// It matches ErrInvalidArgument.
type ErrInvalidCompressionRatio struct {
	Ratio float64
}

func (e *ErrInvalidCompressionRatio) Error() string {
	return fmt.Sprintf("compression ratio must be non-negative, was %v", e.Ratio)
}

func (e *ErrInvalidCompressionRatio) Is(target error) bool {
	return target == ErrInvalidArgument
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Capacity.
	if errors.Is(err, siatechf.ErrTooManyPoints) || errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}

	// Argument normalization.
	switch {
	case errors.Is(err, siatechf.ErrInvalidArgument),
		errors.Is(err, pointset.ErrInvalidArgument),
		errors.Is(err, geometry.ErrInvalidArgument),
		errors.Is(err, search.ErrInvalidArgument),
		errors.Is(err, search.ErrEmptyQuery):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
