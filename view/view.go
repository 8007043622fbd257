// Copyright 2025 The Parallax Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package view provides the public API for layout-aware multi-dimensional
// views over flat buffers.
package view

import (
	"github.com/parallax-hpc/parallax/internal/view"
)

// Type aliases for public API

// Element is a constraint for supported view element types.
type Element = view.Element

// Shape represents the extents of a view, one per dimension.
type Shape = view.Shape

// MaxRank is the maximum number of dimensions a view may have.
const MaxRank = view.MaxRank

// LayoutKind selects how a logical multi-index maps to a flat offset.
type LayoutKind = view.LayoutKind

// Layout kinds.
const (
	RowMajor    LayoutKind = view.RowMajor
	ColumnMajor LayoutKind = view.ColumnMajor
	Strided     LayoutKind = view.Strided
)

// Layout pairs a layout kind with explicit strides for the Strided case.
type Layout = view.Layout

// View is a logical multi-dimensional array over a flat buffer of T.
type View[T Element] = view.View[T]

// Error types.
type (
	// BoundsError reports an out-of-bounds access.
	BoundsError = view.BoundsError
	// SizeError reports a borrowed buffer too small for the shape.
	SizeError = view.SizeError
)

// Sentinel errors.
var (
	ErrBadRank      = view.ErrBadRank
	ErrRankMismatch = view.ErrRankMismatch
)

// LayoutRowMajor returns the row-major layout (last dimension contiguous).
func LayoutRowMajor() Layout {
	return view.LayoutRowMajor()
}

// LayoutColumnMajor returns the column-major layout (first dimension
// contiguous).
func LayoutColumnMajor() Layout {
	return view.LayoutColumnMajor()
}

// LayoutStrided returns a layout with explicit per-dimension strides.
// Strides are length-checked against the shape at view construction but not
// checked for aliasing; the caller guarantees they stay in bounds.
func LayoutStrided(strides ...int) Layout {
	return view.LayoutStrided(strides...)
}

// ResolveStrides computes per-dimension strides for a shape under a layout.
func ResolveStrides(shape Shape, layout Layout) ([]int, error) {
	return view.ResolveStrides(shape, layout)
}

// New creates an owning view with a fresh zero-initialized buffer covering
// every offset the shape and layout can address.
//
// Example:
//
//	v, err := view.New[float64](view.Shape{4, 3}, view.LayoutRowMajor())
func New[T Element](shape Shape, layout Layout) (*View[T], error) {
	return view.New[T](shape, layout)
}

// Wrap creates a borrowing view over a caller-supplied buffer. The buffer
// must cover every offset the shape and layout can address. The view must
// not outlive the buffer's owner.
func Wrap[T Element](buffer []T, shape Shape, layout Layout) (*View[T], error) {
	return view.Wrap(buffer, shape, layout)
}
