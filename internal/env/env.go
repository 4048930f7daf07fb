// Package env defines the simulation environment passed explicitly to every
// scattering-matrix query.
//
// Components never look up a global environment: the solver (or a test)
// hands the current Environment to RealS/ImagS, and the component reads
// the wavelength count from it at evaluation time.
package env

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultWavelength is the wavelength used when none is configured (1.55 µm).
const DefaultWavelength = 1.55e-6

// Common errors.
var (
	ErrNoWavelengths     = errors.New("environment has no wavelengths")
	ErrInvalidWavelength = errors.New("wavelength must be positive and finite")
	ErrInvalidSpan       = errors.New("invalid wavelength span")
)

// Environment is the simulation context shared by all components of a circuit.
type Environment struct {
	Name        string
	Wavelengths []float64 // meters
}

// New creates an environment over the given wavelengths.
//
// The slice is copied. At least one wavelength is required and each must be
// positive and finite.
func New(name string, wavelengths ...float64) (*Environment, error) {
	if len(wavelengths) == 0 {
		return nil, ErrNoWavelengths
	}
	for i, wl := range wavelengths {
		if !(wl > 0) || math.IsInf(wl, 0) {
			return nil, fmt.Errorf("wavelength %d (%g): %w", i, wl, ErrInvalidWavelength)
		}
	}

	wls := make([]float64, len(wavelengths))
	copy(wls, wavelengths)
	return &Environment{Name: name, Wavelengths: wls}, nil
}

// Span creates an environment with num evenly spaced wavelengths from start
// to stop inclusive. num == 1 yields just start.
func Span(name string, start, stop float64, num int) (*Environment, error) {
	if num < 1 {
		return nil, fmt.Errorf("%w: num must be >= 1, got %d", ErrInvalidSpan, num)
	}
	if num == 1 {
		return New(name, start)
	}
	if stop < start {
		return nil, fmt.Errorf("%w: stop %g < start %g", ErrInvalidSpan, stop, start)
	}
	return New(name, floats.Span(make([]float64, num), start, stop)...)
}

// Default returns a single-wavelength environment at DefaultWavelength.
func Default() *Environment {
	return &Environment{Name: "default", Wavelengths: []float64{DefaultWavelength}}
}

// NumWavelengths returns the number of simulated wavelength channels.
func (e *Environment) NumWavelengths() int {
	return len(e.Wavelengths)
}

// String returns a short description of the environment.
func (e *Environment) String() string {
	if len(e.Wavelengths) == 0 {
		return fmt.Sprintf("Environment(%s, empty)", e.Name)
	}
	return fmt.Sprintf("Environment(%s, %d wavelengths in [%g, %g])",
		e.Name, len(e.Wavelengths), floats.Min(e.Wavelengths), floats.Max(e.Wavelengths))
}
