// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float64 tensors that carry scattering
// matrices between photonic components and circuit solvers.
//
// # Overview
//
// A scattering tensor has shape (W, P, P): one P×P block per simulated
// wavelength. The real and imaginary parts of a complex scattering matrix are
// stored as two separate tensors.
//
// # Basic Usage
//
//	import "github.com/born-ml/photon/tensor"
//
//	func main() {
//	    s := tensor.Zeros(tensor.Shape{3, 2, 2})
//	    s.Set(1, 0, 0, 0)
//
//	    block := s.Block(0) // *mat.Dense, the 2×2 matrix at wavelength 0
//	    _ = block
//	}
//
// # Linear Algebra
//
// Blocks are gonum matrices, so the whole of gonum.org/v1/gonum/mat is
// available on a per-wavelength basis. Repeat and Stack go the other way,
// from matrices to tensors.
package tensor
