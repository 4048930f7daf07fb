// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/photon/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{3, 2, 2} is a scattering tensor over 3 wavelengths and 2 ports.
type Shape = tensor.Shape

// Tensor is a dense, row-major float64 tensor.
type Tensor = tensor.Tensor

// FromSlice creates a tensor from a Go slice (the data is copied).
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Repeat stacks n copies of m along a new leading (wavelength) axis.
func Repeat(m mat.Matrix, n int) *Tensor {
	return tensor.Repeat(m, n)
}

// Stack builds a tensor from equally sized matrices, one per wavelength.
func Stack(ms ...mat.Matrix) (*Tensor, error) {
	return tensor.Stack(ms...)
}
