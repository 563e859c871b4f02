package ricker

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrNonPositive reports a conversion input that is zero or negative.
// Errors returned by this package wrap it together with the offending
// value (and its index, for slice inputs).
var ErrNonPositive = errors.New("ricker: input must be positive")

func validatePositive(what string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be > 0: %g", ErrNonPositive, what, v)
	}

	return nil
}

func validatePositiveSlice(what string, values []float64) error {
	// Min panics on an empty slice; an empty input is vacuously valid.
	if len(values) == 0 || floats.Min(values) > 0 {
		return nil
	}

	for i, v := range values {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be > 0: %g (index %d)", ErrNonPositive, what, v, i)
		}
	}

	return nil
}
