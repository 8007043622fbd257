package view

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrBadRank reports a shape or index with an unsupported number of
	// dimensions.
	ErrBadRank = errors.New("unsupported rank")
	// ErrRankMismatch reports a custom stride sequence whose length does not
	// match the shape's rank.
	ErrRankMismatch = errors.New("stride rank mismatch")
)

// SizeError reports a borrowed buffer too small for the requested shape.
type SizeError struct {
	Need int // elements required by the shape
	Got  int // elements in the supplied buffer
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	return fmt.Sprintf("buffer too small: shape requires %d elements, buffer holds %d", e.Need, e.Got)
}

// BoundsError reports an out-of-bounds access, identifying the first
// violating dimension.
type BoundsError struct {
	Dim    int // offending dimension
	Index  int // requested index in that dimension
	Extent int // extent of that dimension
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("index out of bounds: dimension %d, requested %d, extent %d", e.Dim, e.Index, e.Extent)
}
