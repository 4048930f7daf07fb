package optim

import (
	"context"
	"fmt"

	"github.com/born-ml/photon/internal/component"
	"github.com/born-ml/photon/internal/env"
	"github.com/born-ml/photon/internal/loss"
	"github.com/born-ml/photon/internal/tensor"
)

// Target is the scattering matrix a component is fitted to.
type Target struct {
	RealS *tensor.Tensor
	ImagS *tensor.Tensor
}

// FitConfig controls Fit.
type FitConfig struct {
	Steps     int                               // Maximum optimizer steps (default: 100)
	Tolerance float64                           // Stop once the loss is <= Tolerance
	LogEvery  int                               // Log every N steps; 0 disables logging
	Logf      func(format string, args ...any) // Optional progress logger
}

// FitResult summarizes a Fit run.
type FitResult struct {
	Steps     int     // Optimizer steps taken
	Loss      float64 // Loss at the last evaluation
	Converged bool    // Loss reached Tolerance
}

// Fit adjusts the trainable parameters of c so that its scattering matrix
// approaches target under MSE.
//
// Each iteration runs forward, loss, Backward and one optimizer step. The
// loop stops when the loss reaches cfg.Tolerance, after cfg.Steps steps, or
// when ctx is done.
func Fit(ctx context.Context, c component.Component, e *env.Environment, target Target, opt Optimizer, cfg FitConfig) (FitResult, error) {
	if cfg.Steps <= 0 {
		cfg.Steps = 100
	}
	if e == nil {
		return FitResult{}, component.ErrNilEnvironment
	}
	if e.NumWavelengths() == 0 {
		return FitResult{}, env.ErrNoWavelengths
	}

	var (
		mse loss.MSE
		res FitResult
	)
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		opt.ZeroGrad()

		value, gR, gI, err := mse.Forward(c.RealS(e), c.ImagS(e), target.RealS, target.ImagS)
		if err != nil {
			return res, fmt.Errorf("fit %s: %w", c.Name(), err)
		}
		res.Loss = value

		if cfg.Logf != nil && cfg.LogEvery > 0 && res.Steps%cfg.LogEvery == 0 {
			cfg.Logf("%s step %d loss %.6e", c.Name(), res.Steps, value)
		}
		if value <= cfg.Tolerance {
			res.Converged = true
			return res, nil
		}
		if res.Steps >= cfg.Steps {
			return res, nil
		}

		grads, err := c.Backward(e, gR, gI)
		if err != nil {
			return res, fmt.Errorf("fit %s: %w", c.Name(), err)
		}
		if len(grads) == 0 {
			// Nothing trainable: the loss cannot move.
			return res, nil
		}
		opt.Step(grads)
		res.Steps++
	}
}
