package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Scale returns a new tensor with every element multiplied by s.
func (t *Tensor) Scale(s float64) *Tensor {
	out := t.Clone()
	floats.Scale(s, out.data)
	return out
}

// Add performs element-wise addition.
// Panics if shapes differ.
func (t *Tensor) Add(other *Tensor) *Tensor {
	t.mustMatch(other, "add")
	out := t.Clone()
	floats.Add(out.data, other.data)
	return out
}

// Sub performs element-wise subtraction.
// Panics if shapes differ.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	t.mustMatch(other, "sub")
	out := t.Clone()
	floats.Sub(out.data, other.data)
	return out
}

// Mul performs element-wise multiplication.
// Panics if shapes differ.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	t.mustMatch(other, "mul")
	out := t.Clone()
	floats.Mul(out.data, other.data)
	return out
}

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 {
	return floats.Sum(t.data)
}

// Dot returns the sum of the element-wise product with other.
func (t *Tensor) Dot(other *Tensor) float64 {
	t.mustMatch(other, "dot")
	return floats.Dot(t.data, other.data)
}

// AllClose reports whether both tensors have the same shape and all
// elements agree within tol.
func (t *Tensor) AllClose(other *Tensor, tol float64) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	return floats.EqualApprox(t.data, other.data, tol)
}

// Block returns a copy of the k-th matrix of a rank-3 tensor.
//
// For a scattering tensor, Block(w) is the P×P matrix at wavelength index w.
func (t *Tensor) Block(k int) *mat.Dense {
	if len(t.shape) != 3 {
		panic(fmt.Sprintf("block requires a rank-3 tensor, got shape %v", t.shape))
	}
	if k < 0 || k >= t.shape[0] {
		panic(fmt.Sprintf("block index %d out of bounds (size %d)", k, t.shape[0]))
	}
	rows, cols := t.shape[1], t.shape[2]
	size := rows * cols
	data := make([]float64, size)
	copy(data, t.data[k*size:(k+1)*size])
	return mat.NewDense(rows, cols, data)
}

func (t *Tensor) mustMatch(other *Tensor, op string) {
	if !t.shape.Equal(other.shape) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, t.shape, other.shape))
	}
}
