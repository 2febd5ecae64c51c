package window

import "errors"

var (
	ErrEmptyCoeffs    = errors.New("window: coefficients must not be empty")
	ErrLengthMismatch = errors.New("window: samples and coefficients must have same length")
	ErrUnknownType    = errors.New("window: unknown window type")
)
