package slidez

import (
	"errors"
	"fmt"
)

// ErrInvalidWindowSize is returned by constructors when the requested
// window size is less than 1. It signals a caller programming error and
// is never retryable; a zero or negative size is never coerced to a
// valid one. Match it with errors.Is.
var ErrInvalidWindowSize = errors.New("invalid window size")

// validateSize rejects sizes below 1 before any source element is pulled.
func validateSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidWindowSize, size)
	}
	return nil
}
