package policy

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrBadRank reports a range with an unsupported number of dimensions.
	ErrBadRank = errors.New("unsupported rank")
	// ErrBadChunk reports a non-positive dynamic chunk size.
	ErrBadChunk = errors.New("invalid chunk size")
)

// RangeError reports an invalid interval in some dimension.
type RangeError struct {
	Dim   int
	Begin int
	End   int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: dimension %d, [%d, %d)", e.Dim, e.Begin, e.End)
}
