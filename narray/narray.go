package narray

import "fmt"

// Scalar constrains the element types an Array can hold.
type Scalar interface {
	~float64 | ~complex128
}

// Array is a dense n-dimensional array in row-major layout.
//
// A rank-0 array (empty shape) holds exactly one element. The zero value is
// not usable; construct arrays with New or FromSlice.
type Array[T Scalar] struct {
	shape   []int
	strides []int
	data    []T
}

// New returns a zero-filled array of the given shape.
// It panics if any dimension is not positive.
func New[T Scalar](shape ...int) *Array[T] {
	if err := validateShape(shape); err != nil {
		panic(err)
	}

	sh := append([]int(nil), shape...)

	return &Array[T]{
		shape:   sh,
		strides: rowMajorStrides(sh),
		data:    make([]T, product(sh)),
	}
}

// FromSlice wraps data in an array of the given shape without copying.
// The array takes ownership of data; len(data) must equal the shape product.
func FromSlice[T Scalar](data []T, shape ...int) (*Array[T], error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}

	if len(data) != product(shape) {
		return nil, fmt.Errorf("%w: len=%d shape=%v", ErrLengthMismatch, len(data), shape)
	}

	sh := append([]int(nil), shape...)

	return &Array[T]{
		shape:   sh,
		strides: rowMajorStrides(sh),
		data:    data,
	}, nil
}

// Shape returns a copy of the array's dimensions.
func (a *Array[T]) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Strides returns a copy of the row-major strides, in elements.
func (a *Array[T]) Strides() []int {
	return append([]int(nil), a.strides...)
}

// NDim returns the number of dimensions.
func (a *Array[T]) NDim() int {
	return len(a.shape)
}

// Size returns the total element count.
func (a *Array[T]) Size() int {
	return len(a.data)
}

// Dim returns the length of the given axis. Negative axes count from the end.
// It panics on an out-of-range axis.
func (a *Array[T]) Dim(axis int) int {
	ax, err := normalizeAxis(axis, len(a.shape))
	if err != nil {
		panic(err)
	}

	return a.shape[ax]
}

// Data returns the underlying flat storage. Mutating it mutates the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// At returns the element at the given index. It panics on rank mismatch or an
// out-of-range index.
func (a *Array[T]) At(idx ...int) T {
	return a.data[a.offset(idx)]
}

// Set stores v at the given index. It panics on rank mismatch or an
// out-of-range index.
func (a *Array[T]) Set(v T, idx ...int) {
	a.data[a.offset(idx)] = v
}

// Clone returns a deep copy.
func (a *Array[T]) Clone() *Array[T] {
	out := New[T](a.shape...)
	copy(out.data, a.data)

	return out
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Scale multiplies every element by v in place.
func (a *Array[T]) Scale(v T) {
	for i := range a.data {
		a.data[i] *= v
	}
}

// ToComplex returns a complex128 copy of a real-valued array, with zero
// imaginary parts.
func ToComplex(a *Array[float64]) *Array[complex128] {
	out := New[complex128](a.shape...)
	for i, v := range a.data {
		out.data[i] = complex(v, 0)
	}

	return out
}

func (a *Array[T]) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Errorf("%w: index rank %d, array rank %d", ErrRankMismatch, len(idx), len(a.shape)))
	}

	off := 0
	for i, ix := range idx {
		if ix < 0 || ix >= a.shape[i] {
			panic(fmt.Errorf("narray: index %d out of range for axis %d (length %d)", ix, i, a.shape[i]))
		}

		off += ix * a.strides[i]
	}

	return off
}

func validateShape(shape []int) error {
	for _, s := range shape {
		if s <= 0 {
			return fmt.Errorf("%w: %v", ErrInvalidShape, shape)
		}
	}

	return nil
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1

	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}

	return strides
}

func product(shape []int) int {
	p := 1
	for _, s := range shape {
		p *= s
	}

	return p
}

func normalizeAxis(axis, ndim int) (int, error) {
	if axis < -ndim || axis >= ndim {
		return 0, fmt.Errorf("%w: axis %d for rank %d", ErrInvalidAxis, axis, ndim)
	}

	if axis < 0 {
		axis += ndim
	}

	return axis, nil
}

// NormalizeAxes resolves negative axes against ndim and rejects out-of-range
// or duplicate entries. A nil list selects all axes.
func NormalizeAxes(axes []int, ndim int) ([]int, error) {
	if axes == nil {
		out := make([]int, ndim)
		for i := range out {
			out[i] = i
		}

		return out, nil
	}

	out := make([]int, len(axes))
	seen := make(map[int]bool, len(axes))

	for i, ax := range axes {
		n, err := normalizeAxis(ax, ndim)
		if err != nil {
			return nil, err
		}

		if seen[n] {
			return nil, fmt.Errorf("%w: duplicate axis %d", ErrInvalidAxis, ax)
		}

		seen[n] = true
		out[i] = n
	}

	return out, nil
}
