package fourier

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput     = errors.New("fourier: empty input")
	ErrInvalidLength  = errors.New("fourier: length must be a power of two")
	ErrLengthMismatch = errors.New("fourier: length mismatch")
	ErrUnknownBackend = errors.New("fourier: unknown backend")
)

// InvalidLengthError reports an input length the radix-2 transform cannot handle.
// It matches [ErrInvalidLength] under errors.Is.
type InvalidLengthError struct {
	Len int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("fourier: length %d is not a power of two", e.Len)
}

// Is reports whether target is ErrInvalidLength.
func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}
