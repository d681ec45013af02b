package wxindex

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when parallel input slices differ in length.
	ErrLengthMismatch = errors.New("input length mismatch")

	// ErrHourlyLength is returned when an hourly series is not whole days.
	ErrHourlyLength = errors.New("hourly series length is not a multiple of 24")
)

// checkLengths returns ErrLengthMismatch unless every named column has the
// same length as the first.
func checkLengths(names []string, cols ...[]float64) error {
	for i := 1; i < len(cols); i++ {
		if len(cols[i]) != len(cols[0]) {
			return fmt.Errorf("%w: %s has %d values, %s has %d",
				ErrLengthMismatch, names[0], len(cols[0]), names[i], len(cols[i]))
		}
	}
	return nil
}
