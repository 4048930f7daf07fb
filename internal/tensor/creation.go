package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Zeros creates a tensor filled with zeros.
//
// Panics if the shape has a non-positive dimension.
func Zeros(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return newTensor(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Repeat stacks n copies of a matrix along a new leading axis.
//
// The result has shape (n, rows, cols). This is how a per-wavelength
// scattering tensor is built from a single wavelength-independent block.
//
// Example:
//
//	swap := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
//	s := tensor.Repeat(swap, 3) // shape (3, 2, 2)
func Repeat(m mat.Matrix, n int) *Tensor {
	if n <= 0 {
		panic(fmt.Sprintf("repeat count must be > 0, got %d", n))
	}
	rows, cols := m.Dims()
	t := Zeros(Shape{n, rows, cols})

	block := rows * cols
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t.data[i*cols+j] = m.At(i, j)
		}
	}
	for k := 1; k < n; k++ {
		copy(t.data[k*block:(k+1)*block], t.data[:block])
	}
	return t
}

// Stack builds a (len(ms), rows, cols) tensor from equally sized matrices.
func Stack(ms ...mat.Matrix) (*Tensor, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("stack requires at least one matrix")
	}
	rows, cols := ms[0].Dims()
	t := Zeros(Shape{len(ms), rows, cols})
	for k, m := range ms {
		r, c := m.Dims()
		if r != rows || c != cols {
			return nil, fmt.Errorf("matrix %d has dims %dx%d, expected %dx%d", k, r, c, rows, cols)
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				t.Set(m.At(i, j), k, i, j)
			}
		}
	}
	return t, nil
}
