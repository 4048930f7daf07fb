// Package optim implements optimization algorithms for bounded component
// parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//   - Fit: a single-component fitting loop
//
// Every update is projected back onto the parameter's bounds, so a
// reflectivity trained in [0, 1] never leaves it. Fixed parameters are
// never touched.
//
// Example usage:
//
//	optimizer := optim.NewAdam(m.Parameters(), optim.AdamConfig{LR: 0.05})
//
//	for step := range steps {
//	    value, gR, gI, _ := mse.Forward(m.RealS(e), m.ImagS(e), tR, tI)
//	    grads, _ := m.Backward(e, gR, gI)
//	    optimizer.Step(grads)
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/born-ml/photon/internal/component"
	"github.com/born-ml/photon/internal/param"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all trainable parameters.
	//
	// Parameters without an entry in grads are skipped.
	Step(grads param.Gradients)

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// trainable drops fixed parameters; optimizers never update them.
func trainable(params []*param.Parameter) []*param.Parameter {
	return component.TrainableParameters(params)
}

// apply records the gradient on p, writes the new value and projects it
// onto the bounds.
func apply(p *param.Parameter, grad, value float64) {
	p.SetGrad(grad)
	// Trainable parameters only fail on NaN, which keeps the previous value.
	_, _ = p.SetValue(value)
	p.Project()
}
