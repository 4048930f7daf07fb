// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package component provides photonic circuit components that expose their
// scattering matrices and closed-form parameter gradients.
//
// # Overview
//
// Every component implements Component: RealS and ImagS return the real and
// imaginary part of its scattering matrix, shape (wavelengths, ports, ports),
// for the Environment passed in. Backward maps loss gradients on those
// tensors onto the component's trainable parameters.
//
// # Basic Usage
//
//	e, _ := env.Span("sweep", 1.5e-6, 1.6e-6, 3)
//
//	m, err := component.NewMirror(component.MirrorConfig{
//	    R:      0.3,
//	    Bounds: &component.Bounds{Low: 0, High: 1},
//	    Name:   "m1",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rS := m.RealS(e) // sqrt(0.3) on the diagonal
//	iS := m.ImagS(e) // sqrt(0.7) on the anti-diagonal
//
// # Parameters
//
// Parameters are Fixed or Trainable within Bounds. A mirror built with nil
// bounds, or with Low == High, has a fixed reflectivity that optimizers never
// change.
package component

import (
	"context"

	"github.com/born-ml/photon/env"
	"github.com/born-ml/photon/internal/component"
	"github.com/born-ml/photon/internal/parallel"
	"github.com/born-ml/photon/internal/param"
	"github.com/born-ml/photon/tensor"
	"gonum.org/v1/gonum/mat"
)

// Component is the contract between a component and a circuit solver.
type Component = component.Component

// Mirror is a memory-less, lossless two-port component with reflectivity R.
type Mirror = component.Mirror

// MirrorConfig holds configuration for a Mirror.
type MirrorConfig = component.MirrorConfig

// Bounds is a closed interval [Low, High] for a parameter.
type Bounds = param.Bounds

// Parameter is a named scalar that is either fixed or trainable.
type Parameter = param.Parameter

// Gradients maps parameters to accumulated loss derivatives.
type Gradients = param.Gradients

// ConfigError describes a rejected parameter configuration.
type ConfigError = param.ConfigError

// SMatrix is the evaluated scattering matrix of one component.
type SMatrix = component.SMatrix

// ParallelConfig controls how Evaluate spreads work over goroutines.
type ParallelConfig = parallel.Config

// Errors.
var (
	ErrShapeMismatch  = component.ErrShapeMismatch
	ErrNilEnvironment = component.ErrNilEnvironment
	ErrDuplicateName  = component.ErrDuplicateName
	ErrMissingState   = component.ErrMissingState
	ErrInvalidBounds  = param.ErrInvalidBounds
	ErrOutOfBounds    = param.ErrOutOfBounds
	ErrFixedParameter = param.ErrFixedParameter
)

// DefaultMirrorConfig returns R = 0.5, trainable in [0, 1].
func DefaultMirrorConfig() MirrorConfig {
	return component.DefaultMirrorConfig()
}

// NewMirror creates a mirror, rejecting out-of-range reflectivities and bounds.
func NewMirror(cfg MirrorConfig) (*Mirror, error) {
	return component.NewMirror(cfg)
}

// Parameters collects the parameters of several uniquely named components.
func Parameters(cs ...Component) ([]*Parameter, error) {
	return component.Parameters(cs...)
}

// PowerMatrix returns rS[w]·rS[w]ᵀ + iS[w]·iS[w]ᵀ.
func PowerMatrix(rS, iS *tensor.Tensor, w int) *mat.Dense {
	return component.PowerMatrix(rS, iS, w)
}

// Lossless reports whether every port conserves power within tol.
func Lossless(rS, iS *tensor.Tensor, tol float64) bool {
	return component.Lossless(rS, iS, tol)
}

// DefaultParallelConfig returns one worker per CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Evaluate computes the scattering matrices of cs concurrently, in order.
func Evaluate(ctx context.Context, e *env.Environment, cs []Component, cfg ParallelConfig) ([]SMatrix, error) {
	return component.Evaluate(ctx, e, cs, cfg)
}
