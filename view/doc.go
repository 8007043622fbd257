// Copyright 2025 The Parallax Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package view provides layout-aware multi-dimensional views for Parallax.
//
// # Overview
//
// A View is a logical multi-dimensional array over a flat buffer with an
// explicit memory layout. The layout (row-major, column-major, or explicit
// strides) is resolved to a stride table at construction and fixed for the
// view's lifetime; element access maps a logical index to a flat offset
// through those strides, with mandatory bounds checking.
//
// # Basic Usage
//
//	import "github.com/parallax-hpc/parallax/view"
//
//	func main() {
//	    v, _ := view.New[float64](view.Shape{4, 3}, view.LayoutRowMajor())
//	    _ = v.Set(7.0, 2, 1)
//	    x, _ := v.At(2, 1) // 7.0
//	}
//
// # Owning and Borrowing Views
//
// New allocates a fresh buffer the view owns. Wrap borrows a caller-supplied
// slice; several views may wrap the same buffer under different layouts, and
// a borrowing view must not outlive the buffer's owner. A view cannot be
// reshaped or relayouted in place; construct a new view over the same buffer
// instead.
//
// # Unchecked Access
//
// AtUnchecked and SetUnchecked skip bounds checks for performance-critical
// kernel bodies. The caller guarantees every index is in bounds.
package view
