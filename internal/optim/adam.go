package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/photon/internal/param"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	param = clamp(param - lr * m_hat / (sqrt(v_hat) + eps))
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []*param.Parameter
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int                          // Timestep for bias correction
	m      map[*param.Parameter]float64 // First moment estimates
	v      map[*param.Parameter]float64 // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over the trainable subset of params.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(params []*param.Parameter, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: trainable(params),
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*param.Parameter]float64),
		v:      make(map[*param.Parameter]float64),
	}
}

// Step performs a single optimization step using Adam algorithm.
func (a *Adam) Step(grads param.Gradients) {
	a.t++

	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	for _, p := range a.params {
		g, ok := grads.Get(p)
		if !ok {
			continue
		}

		m := a.beta1*a.m[p] + (1-a.beta1)*g
		v := a.beta2*a.v[p] + (1-a.beta2)*g*g
		a.m[p], a.v[p] = m, v

		mHat := m / biasCorrection1
		vHat := v / biasCorrection2
		apply(p, g, p.Value()-a.lr*mHat/(math.Sqrt(vHat)+a.eps))
	}
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	for _, p := range a.params {
		p.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// StateDict returns the moment estimates and timestep.
//
// State keys: "m.{param_index}", "v.{param_index}", "t".
func (a *Adam) StateDict() map[string]float64 {
	state := map[string]float64{"t": float64(a.t)}
	for i, p := range a.params {
		if m, ok := a.m[p]; ok {
			state[fmt.Sprintf("m.%d", i)] = m
			state[fmt.Sprintf("v.%d", i)] = a.v[p]
		}
	}
	return state
}
