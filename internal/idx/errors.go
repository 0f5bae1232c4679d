package idx

import (
	"errors"
	"fmt"
)

// Format errors. A Sequence never yields records after one of these.
var (
	ErrUnknownDataType   = errors.New("unknown element type")
	ErrTruncatedHeader   = errors.New("truncated header")
	ErrInvalidDimensions = errors.New("invalid dimensions")
)

// FormatError reports which stream of a pair failed to decode.
type FormatError struct {
	Stream string // "images" or "labels"
	Err    error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("idx: %s: %v", e.Stream, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *FormatError) Unwrap() error {
	return e.Err
}
