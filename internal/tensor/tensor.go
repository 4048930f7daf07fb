// Package tensor implements the dense float64 tensors used to carry
// scattering matrices between photonic components and solvers.
//
// A scattering tensor has shape (W, P, P): one P×P block per simulated
// wavelength. Blocks can be viewed as gonum matrices for linear algebra.
package tensor

import "fmt"

// Tensor is a dense, row-major float64 tensor.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 2, 2})
//	t.Set(1, 0, 0, 0)
//	v := t.At(0, 0, 0) // 1
type Tensor struct {
	shape   Shape
	strides []int
	data    []float64
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	t := newTensor(shape)
	copy(t.data, data)
	return t, nil
}

func newTensor(shape Shape) *Tensor {
	s := shape.Clone()
	return &Tensor{
		shape:   s,
		strides: s.ComputeStrides(),
		data:    make([]float64, s.NumElements()),
	}
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the underlying row-major storage.
// Mutating the returned slice mutates the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	c := newTensor(t.shape)
	copy(c.data, t.data)
	return c
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[float64]%v", t.shape)
}
