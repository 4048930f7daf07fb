// Package param implements bounded scalar parameters for photonic components.
//
// A Parameter is either Fixed (a constant) or Trainable within a closed
// interval [Low, High]. Optimizers only update Trainable parameters and
// every update is projected back onto the interval.
package param

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Common errors.
var (
	ErrInvalidBounds  = errors.New("lower bound exceeds upper bound")
	ErrOutOfBounds    = errors.New("value outside bounds")
	ErrNotFinite      = errors.New("value is not finite")
	ErrFixedParameter = errors.New("parameter is fixed")
)

// ConfigError describes a rejected parameter configuration.
type ConfigError struct {
	Param  string  // Parameter name
	Value  float64 // Offending value
	Bounds *Bounds // Bounds in effect, nil if none
	Err    error   // Sentinel error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Bounds != nil {
		return fmt.Sprintf("parameter %q: value %g, bounds %v: %v", e.Param, e.Value, *e.Bounds, e.Err)
	}
	return fmt.Sprintf("parameter %q: value %g: %v", e.Param, e.Value, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Bounds is a closed interval [Low, High].
type Bounds struct {
	Low  float64
	High float64
}

// Validate checks that the interval is well formed.
func (b Bounds) Validate() error {
	if math.IsNaN(b.Low) || math.IsNaN(b.High) {
		return ErrNotFinite
	}
	if b.Low > b.High {
		return ErrInvalidBounds
	}
	return nil
}

// Contains reports whether v lies in [Low, High].
func (b Bounds) Contains(v float64) bool {
	return v >= b.Low && v <= b.High
}

// Clamp projects v onto [Low, High].
func (b Bounds) Clamp(v float64) float64 {
	return math.Min(math.Max(v, b.Low), b.High)
}

// Within reports whether b is a sub-interval of outer.
func (b Bounds) Within(outer Bounds) bool {
	return b.Low >= outer.Low && b.High <= outer.High
}

// String formats the interval as [low, high].
func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g]", b.Low, b.High)
}

// Kind tags the parameter variant.
type Kind int

const (
	// Fixed parameters never change after construction.
	Fixed Kind = iota
	// Trainable parameters are updated by optimizers within their bounds.
	Trainable
)

// String returns the variant name.
func (k Kind) String() string {
	if k == Trainable {
		return "trainable"
	}
	return "fixed"
}

// Parameter is a named scalar that is either fixed or trainable.
//
// Reads and writes are guarded so that many forward evaluations may read the
// value while a single optimizer step writes it between passes.
//
// Example:
//
//	r, err := param.NewBounded("m1.R", 0.5, &param.Bounds{Low: 0, High: 1})
//	v := r.Value()
//	r.SetGrad(0.1)
type Parameter struct {
	name   string
	kind   Kind
	bounds Bounds

	mu    sync.RWMutex
	value float64
	grad  float64
}

// NewFixed creates a constant parameter.
func NewFixed(name string, value float64) (*Parameter, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, &ConfigError{Param: name, Value: value, Err: ErrNotFinite}
	}
	return &Parameter{
		name:   name,
		kind:   Fixed,
		bounds: Bounds{Low: value, High: value},
		value:  value,
	}, nil
}

// NewTrainable creates a parameter optimized within bounds.
//
// The value must already lie in bounds; it is not clamped. Degenerate
// bounds (Low == High) still yield a Trainable parameter that can never move;
// use NewBounded to get a Fixed one instead.
func NewTrainable(name string, value float64, bounds Bounds) (*Parameter, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, &ConfigError{Param: name, Value: value, Bounds: &bounds, Err: ErrNotFinite}
	}
	if err := bounds.Validate(); err != nil {
		return nil, &ConfigError{Param: name, Value: value, Bounds: &bounds, Err: err}
	}
	if !bounds.Contains(value) {
		return nil, &ConfigError{Param: name, Value: value, Bounds: &bounds, Err: ErrOutOfBounds}
	}
	return &Parameter{
		name:   name,
		kind:   Trainable,
		bounds: bounds,
		value:  value,
	}, nil
}

// NewBounded creates a parameter from a value and optional bounds.
//
// bounds == nil or Low == High yields a Fixed parameter; otherwise the
// parameter is Trainable in [Low, High]. Values outside the bounds are
// rejected.
func NewBounded(name string, value float64, bounds *Bounds) (*Parameter, error) {
	if bounds == nil {
		return NewFixed(name, value)
	}
	if bounds.Low == bounds.High {
		if value != bounds.Low {
			b := *bounds
			return nil, &ConfigError{Param: name, Value: value, Bounds: &b, Err: ErrOutOfBounds}
		}
		return NewFixed(name, value)
	}
	return NewTrainable(name, value, *bounds)
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Kind returns the parameter variant.
func (p *Parameter) Kind() Kind {
	return p.kind
}

// Trainable reports whether optimizers may update the parameter.
func (p *Parameter) Trainable() bool {
	return p.kind == Trainable
}

// Bounds returns the admissible interval. For Fixed parameters it is the
// degenerate interval [value, value].
func (p *Parameter) Bounds() Bounds {
	return p.bounds
}

// Value returns the current value.
func (p *Parameter) Value() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// SetValue sets a Trainable parameter, projecting v onto its bounds, and
// returns the stored value. Fixed parameters return ErrFixedParameter.
func (p *Parameter) SetValue(v float64) (float64, error) {
	if p.kind == Fixed {
		return p.Value(), fmt.Errorf("set %q: %w", p.name, ErrFixedParameter)
	}
	if math.IsNaN(v) {
		return p.Value(), &ConfigError{Param: p.name, Value: v, Bounds: &p.bounds, Err: ErrNotFinite}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = p.bounds.Clamp(v)
	return p.value, nil
}

// Project clamps the stored value onto the bounds and returns it.
func (p *Parameter) Project() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = p.bounds.Clamp(p.value)
	return p.value
}

// Grad returns the gradient recorded by the last optimizer step.
func (p *Parameter) Grad() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.grad
}

// SetGrad sets the gradient.
//
// This is typically called by the optimizer before it applies an update.
func (p *Parameter) SetGrad(g float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.grad = g
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.SetGrad(0)
}

// String returns a short description of the parameter.
func (p *Parameter) String() string {
	if p.kind == Fixed {
		return fmt.Sprintf("%s=%g (fixed)", p.name, p.Value())
	}
	return fmt.Sprintf("%s=%g in %v", p.name, p.Value(), p.bounds)
}
