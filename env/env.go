// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package env provides the simulation environment that is passed explicitly
// to every scattering-matrix query.
//
// Example:
//
//	e, err := env.Span("sweep", 1.5e-6, 1.6e-6, 11)
//	rS := mirror.RealS(e) // shape (11, 2, 2)
package env

import (
	"github.com/born-ml/photon/internal/env"
)

// DefaultWavelength is the wavelength used when none is configured (1.55 µm).
const DefaultWavelength = env.DefaultWavelength

// Environment is the simulation context shared by all components of a circuit.
type Environment = env.Environment

// Errors returned by the constructors.
var (
	ErrNoWavelengths     = env.ErrNoWavelengths
	ErrInvalidWavelength = env.ErrInvalidWavelength
	ErrInvalidSpan       = env.ErrInvalidSpan
)

// New creates an environment over explicit wavelengths (meters).
func New(name string, wavelengths ...float64) (*Environment, error) {
	return env.New(name, wavelengths...)
}

// Span creates an environment with num evenly spaced wavelengths in [start, stop].
func Span(name string, start, stop float64, num int) (*Environment, error) {
	return env.Span(name, start, stop, num)
}

// Default returns a single-wavelength environment at DefaultWavelength.
func Default() *Environment {
	return env.Default()
}
