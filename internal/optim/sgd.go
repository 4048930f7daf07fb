package optim

import (
	"fmt"

	"github.com/born-ml/photon/internal/param"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = clamp(param - lr * gradient)
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = clamp(param - lr * velocity)
//
// Example:
//
//	optimizer := optim.NewSGD(m.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*param.Parameter
	lr         float64
	momentum   float64
	velocities map[*param.Parameter]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the trainable subset of params.
func NewSGD(params []*param.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     trainable(params),
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*param.Parameter]float64),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step(grads param.Gradients) {
	for _, p := range s.params {
		g, ok := grads.Get(p)
		if !ok {
			continue
		}

		update := g
		if s.momentum != 0 {
			v := s.momentum*s.velocities[p] + g
			s.velocities[p] = v
			update = v
		}
		apply(p, g, p.Value()-s.lr*update)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the optimizer state for serialization.
// Without momentum, returns an empty map.
//
// State keys: "velocity.{param_index}".
func (s *SGD) StateDict() map[string]float64 {
	state := make(map[string]float64)
	if s.momentum == 0 {
		return state
	}
	for i, p := range s.params {
		if v, ok := s.velocities[p]; ok {
			state[fmt.Sprintf("velocity.%d", i)] = v
		}
	}
	return state
}
