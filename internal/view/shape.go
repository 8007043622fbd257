// Package view provides layout-aware multi-dimensional views over flat buffers.
package view

import (
	"fmt"
	"math"
)

// MaxRank is the maximum number of dimensions a view or range may have.
const MaxRank = 8

// Shape represents the extents of a view, one per dimension.
// A zero extent is valid and makes the view logically empty.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has a supported rank and no negative extents.
func (s Shape) Validate() error {
	if len(s) == 0 || len(s) > MaxRank {
		return fmt.Errorf("%w: rank %d (must be 1..%d)", ErrBadRank, len(s), MaxRank)
	}
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid extent at dimension %d: %d (must be >= 0)", i, dim)
		}
	}
	// Guard the element product against overflow before any allocation.
	n := 1
	for _, dim := range s {
		if dim == 0 {
			return nil
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("shape %v: element count overflows int", []int(s))
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// LayoutKind selects how a logical multi-index maps to a flat offset.
type LayoutKind int

const (
	// RowMajor makes the last dimension contiguous (C order).
	RowMajor LayoutKind = iota
	// ColumnMajor makes the first dimension contiguous (Fortran order).
	ColumnMajor
	// Strided uses caller-supplied strides. Strides are length-checked
	// against the shape's rank but never checked for aliasing or overlap;
	// the caller guarantees they address distinct in-bounds elements.
	Strided
)

// String returns a human-readable layout name.
func (k LayoutKind) String() string {
	switch k {
	case RowMajor:
		return "RowMajor"
	case ColumnMajor:
		return "ColumnMajor"
	case Strided:
		return "Strided"
	default:
		return "Unknown"
	}
}

// Layout pairs a layout kind with explicit strides for the Strided case.
type Layout struct {
	Kind    LayoutKind
	Strides []int // used only when Kind == Strided
}

// LayoutRowMajor returns the row-major layout.
func LayoutRowMajor() Layout {
	return Layout{Kind: RowMajor}
}

// LayoutColumnMajor returns the column-major layout.
func LayoutColumnMajor() Layout {
	return Layout{Kind: ColumnMajor}
}

// LayoutStrided returns a layout with explicit per-dimension strides.
func LayoutStrided(strides ...int) Layout {
	return Layout{Kind: Strided, Strides: strides}
}

// ResolveStrides computes the per-dimension strides for a shape under the
// given layout. Pure and deterministic; views cache the result at
// construction.
//
// RowMajor: stride[rank-1] = 1, stride[d] = stride[d+1] * shape[d+1].
// ColumnMajor: the mirrored rule with dimension 0 contiguous.
// Strided: the caller strides, returned unchanged after a length check.
func ResolveStrides(shape Shape, layout Layout) ([]int, error) {
	rank := len(shape)
	if rank == 0 || rank > MaxRank {
		return nil, fmt.Errorf("%w: rank %d (must be 1..%d)", ErrBadRank, rank, MaxRank)
	}
	switch layout.Kind {
	case RowMajor:
		strides := make([]int, rank)
		strides[rank-1] = 1
		for d := rank - 2; d >= 0; d-- {
			strides[d] = strides[d+1] * shape[d+1]
		}
		return strides, nil
	case ColumnMajor:
		strides := make([]int, rank)
		strides[0] = 1
		for d := 1; d < rank; d++ {
			strides[d] = strides[d-1] * shape[d-1]
		}
		return strides, nil
	case Strided:
		if len(layout.Strides) != rank {
			return nil, fmt.Errorf("%w: %d strides for rank %d", ErrRankMismatch, len(layout.Strides), rank)
		}
		for d, st := range layout.Strides {
			if st < 0 {
				return nil, fmt.Errorf("negative stride at dimension %d: %d", d, st)
			}
		}
		return layout.Strides, nil
	default:
		return nil, fmt.Errorf("unknown layout kind %d", layout.Kind)
	}
}
