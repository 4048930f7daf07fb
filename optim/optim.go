// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"context"

	"github.com/born-ml/photon/component"
	"github.com/born-ml/photon/env"
	"github.com/born-ml/photon/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	m, _ := component.NewMirror(component.DefaultMirrorConfig())
//	optimizer := optim.NewSGD(
//	    m.Parameters(),
//	    optim.SGDConfig{
//	        LR:       0.1,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD(params []*component.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(
//	    m.Parameters(),
//	    optim.AdamConfig{
//	        LR:    0.01,
//	        Betas: [2]float64{0.9, 0.999},
//	        Eps:   1e-8,
//	    },
//	)
func NewAdam(params []*component.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}

// Fitting

// Target is the scattering matrix a component is fitted to.
type Target = optim.Target

// FitConfig controls Fit.
type FitConfig = optim.FitConfig

// FitResult summarizes a Fit run.
type FitResult = optim.FitResult

// Fit adjusts the trainable parameters of c towards target under MSE.
func Fit(ctx context.Context, c component.Component, e *env.Environment, target Target, opt Optimizer, cfg FitConfig) (FitResult, error) {
	return optim.Fit(ctx, c, e, target, opt, cfg)
}
