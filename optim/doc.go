// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for bounded component
// parameters.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//   - Fit: a single-component fitting loop
//
// Every update is projected onto the parameter's bounds. Fixed parameters
// are never updated.
//
// # Training Loop Pattern
//
//	var mse loss.MSE
//	for step := range steps {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward pass
//	    value, gR, gI, err := mse.Forward(m.RealS(e), m.ImagS(e), tR, tI)
//
//	    // 3. Backward pass (closed form)
//	    grads, err := m.Backward(e, gR, gI)
//
//	    // 4. Update parameters
//	    optimizer.Step(grads)
//	}
//
// Fit wraps exactly this loop with a step budget, a loss tolerance and
// context cancellation.
package optim
