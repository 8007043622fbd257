package view

import "fmt"

// Element is a constraint for supported view element types.
type Element interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~int
}

// View is a logical multi-dimensional array over a flat buffer of T.
// The shape and resolved strides are fixed for the view's lifetime;
// element mutation is the only side effect a view permits.
//
// A view either owns its buffer (created by New) or borrows one supplied by
// the caller (created by Wrap). Multiple borrowing views may alias the same
// buffer; a borrowing view must not outlive the buffer's owner.
//
// Reshaping or relayouting a live view is deliberately unsupported, as it
// would invalidate the cached strides. Construct a new view over the same
// buffer with Wrap instead.
type View[T Element] struct {
	data    []T
	shape   Shape
	strides []int
	layout  LayoutKind
	owned   bool
}

// New creates an owning view, allocating a zero-initialized buffer large
// enough for every addressable offset. For row-major and column-major that is
// exactly product(shape) elements; for a strided layout it is one past the
// largest flat offset. Zero-extent shapes are accepted and yield an empty
// view.
func New[T Element](shape Shape, layout Layout) (*View[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	strides, err := ResolveStrides(shape, layout)
	if err != nil {
		return nil, err
	}
	return &View[T]{
		data:    make([]T, requiredLen(shape, strides)),
		shape:   shape.Clone(),
		strides: strides,
		layout:  layout.Kind,
		owned:   true,
	}, nil
}

// Wrap creates a borrowing view over a caller-supplied buffer. The buffer
// must cover every offset the shape and strides can address, so a bounds-
// checked access never reaches past it. The view observes the buffer; it
// never frees it.
func Wrap[T Element](buffer []T, shape Shape, layout Layout) (*View[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	strides, err := ResolveStrides(shape, layout)
	if err != nil {
		return nil, err
	}
	if need := requiredLen(shape, strides); len(buffer) < need {
		return nil, &SizeError{Need: need, Got: len(buffer)}
	}
	return &View[T]{
		data:    buffer,
		shape:   shape.Clone(),
		strides: strides,
		layout:  layout.Kind,
	}, nil
}

// requiredLen returns the buffer length needed to address every element of
// the shape under the given strides: one past the largest flat offset, or
// zero when the shape has no elements.
func requiredLen(shape Shape, strides []int) int {
	if shape.NumElements() == 0 {
		return 0
	}
	max := 0
	for d, n := range shape {
		max += strides[d] * (n - 1)
	}
	return max + 1
}

// Shape returns the view's shape.
func (v *View[T]) Shape() Shape {
	return v.shape
}

// Rank returns the number of dimensions.
func (v *View[T]) Rank() int {
	return len(v.shape)
}

// Strides returns the resolved per-dimension strides.
func (v *View[T]) Strides() []int {
	return v.strides
}

// Layout returns the layout kind the view was constructed with.
func (v *View[T]) Layout() LayoutKind {
	return v.layout
}

// NumElements returns the total number of elements.
func (v *View[T]) NumElements() int {
	return v.shape.NumElements()
}

// Owned reports whether the view owns its buffer.
func (v *View[T]) Owned() bool {
	return v.owned
}

// Data returns the underlying buffer. Modifications through the slice are
// visible to the view and to every other view over the same buffer.
func (v *View[T]) Data() []T {
	return v.data
}

// offset computes the flat offset for a logical index, checking every
// dimension. Bounds failures occur before any buffer access.
func (v *View[T]) offset(index []int) (int, error) {
	if len(index) != len(v.shape) {
		return 0, fmt.Errorf("%w: %d indices for rank %d", ErrBadRank, len(index), len(v.shape))
	}
	off := 0
	for d, idx := range index {
		if idx < 0 || idx >= v.shape[d] {
			return 0, &BoundsError{Dim: d, Index: idx, Extent: v.shape[d]}
		}
		off += idx * v.strides[d]
	}
	return off, nil
}

// At returns the element at the given logical index.
func (v *View[T]) At(index ...int) (T, error) {
	off, err := v.offset(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.data[off], nil
}

// Set stores value at the given logical index. A failed Set leaves the
// buffer untouched.
func (v *View[T]) Set(value T, index ...int) error {
	off, err := v.offset(index)
	if err != nil {
		return err
	}
	v.data[off] = value
	return nil
}

// AtUnchecked returns the element at the given logical index without bounds
// checking. The caller guarantees every index component is in bounds;
// violating that reads arbitrary buffer memory or panics.
func (v *View[T]) AtUnchecked(index ...int) T {
	off := 0
	for d, idx := range index {
		off += idx * v.strides[d]
	}
	return v.data[off]
}

// SetUnchecked stores value at the given logical index without bounds
// checking. Same contract as AtUnchecked.
func (v *View[T]) SetUnchecked(value T, index ...int) {
	off := 0
	for d, idx := range index {
		off += idx * v.strides[d]
	}
	v.data[off] = value
}

// String returns a human-readable representation of the view.
func (v *View[T]) String() string {
	return fmt.Sprintf("View%v %s strides=%v", []int(v.shape), v.layout, v.strides)
}
