// Package component implements photonic circuit components.
//
// A component exposes its frequency-dependent scattering matrix as two
// rank-3 tensors (real and imaginary part) shaped (wavelengths, ports, ports),
// plus the closed-form derivative of those tensors with respect to its
// parameters so an external solver can back-propagate a loss into them.
//
// Design inspired by PyTorch's nn.Module, with explicit environment passing.
package component

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/photon/internal/env"
	"github.com/born-ml/photon/internal/param"
	"github.com/born-ml/photon/internal/tensor"
	"github.com/google/uuid"
)

// Common errors.
var (
	ErrShapeMismatch  = errors.New("shape does not match scattering matrix")
	ErrNilEnvironment = errors.New("nil environment")
	ErrDuplicateName  = errors.New("duplicate component name")
	ErrMissingState   = errors.New("missing parameter in state")
)

// Component is the contract between a photonic component and the circuit
// solver that assembles it into a network.
type Component interface {
	// Name returns the unique name of this component instance.
	Name() string

	// NumPorts returns the number of ports P.
	NumPorts() int

	// RealS returns the real part of the scattering matrix, shape (W, P, P),
	// where W is e.NumWavelengths() at call time.
	RealS(e *env.Environment) *tensor.Tensor

	// ImagS returns the imaginary part of the scattering matrix, shape (W, P, P).
	ImagS(e *env.Environment) *tensor.Tensor

	// Parameters returns all parameters of the component, fixed ones included.
	Parameters() []*param.Parameter

	// Backward maps the loss gradients w.r.t. RealS and ImagS onto the
	// component's trainable parameters.
	Backward(e *env.Environment, gradRS, gradIS *tensor.Tensor) (param.Gradients, error)
}

// Base holds the bookkeeping shared by all components: the instance name and
// the registered parameters.
type Base struct {
	name   string
	params []*param.Parameter
}

// NewBase creates the bookkeeping for a component of the given kind.
// An empty name is replaced by "<kind>-<8 hex digits>".
func NewBase(name, kind string) Base {
	if name == "" {
		name = kind + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
	return Base{name: name}
}

// Name returns the component name.
func (b *Base) Name() string {
	return b.name
}

// Parameters returns the registered parameters in registration order.
func (b *Base) Parameters() []*param.Parameter {
	out := make([]*param.Parameter, len(b.params))
	copy(out, b.params)
	return out
}

func (b *Base) register(p *param.Parameter) *param.Parameter {
	b.params = append(b.params, p)
	return p
}

// StateKey returns the state-dict key of a parameter: "<component>.<param>".
func (b *Base) StateKey(p *param.Parameter) string {
	return b.name + "." + p.Name()
}

// StateDict returns the current parameter values keyed by StateKey.
func (b *Base) StateDict() map[string]float64 {
	state := make(map[string]float64, len(b.params))
	for _, p := range b.params {
		state[b.StateKey(p)] = p.Value()
	}
	return state
}

// CheckStateDict reports whether LoadStateDict would accept state, without
// changing any parameter.
//
// Every registered parameter must be present. Trainable values must lie in
// their bounds and fixed values must match exactly. Keys belonging to other
// components are ignored.
func (b *Base) CheckStateDict(state map[string]float64) error {
	for _, p := range b.params {
		key := b.StateKey(p)
		v, ok := state[key]
		if !ok {
			return fmt.Errorf("%s: %w", key, ErrMissingState)
		}

		bounds := p.Bounds()
		if p.Kind() == param.Fixed {
			if v != p.Value() {
				return &param.ConfigError{Param: key, Value: v, Bounds: &bounds, Err: param.ErrFixedParameter}
			}
			continue
		}
		if !bounds.Contains(v) {
			return &param.ConfigError{Param: key, Value: v, Bounds: &bounds, Err: param.ErrOutOfBounds}
		}
	}
	return nil
}

// LoadStateDict restores parameter values from state. Nothing is written
// unless CheckStateDict accepts the whole state.
func (b *Base) LoadStateDict(state map[string]float64) error {
	if err := b.CheckStateDict(state); err != nil {
		return err
	}
	for _, p := range b.params {
		if !p.Trainable() {
			continue
		}
		key := b.StateKey(p)
		if _, err := p.SetValue(state[key]); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// Parameters collects the parameters of several components, as a parent
// circuit does when registering its children. Component names must be unique.
func Parameters(cs ...Component) ([]*param.Parameter, error) {
	seen := make(map[string]bool, len(cs))
	var params []*param.Parameter
	for _, c := range cs {
		if seen[c.Name()] {
			return nil, fmt.Errorf("%q: %w", c.Name(), ErrDuplicateName)
		}
		seen[c.Name()] = true
		params = append(params, c.Parameters()...)
	}
	return params, nil
}

// TrainableParameters filters ps down to the trainable parameters.
// Nil entries are dropped.
func TrainableParameters(ps []*param.Parameter) []*param.Parameter {
	out := make([]*param.Parameter, 0, len(ps))
	for _, p := range ps {
		if p != nil && p.Kind() == param.Trainable {
			out = append(out, p)
		}
	}
	return out
}

func mustEnv(e *env.Environment, op string) int {
	if e == nil {
		panic(fmt.Sprintf("%s: %v", op, ErrNilEnvironment))
	}
	return e.NumWavelengths()
}

func checkGradShape(e *env.Environment, ports int, gradRS, gradIS *tensor.Tensor) error {
	if e == nil {
		return ErrNilEnvironment
	}
	if e.NumWavelengths() == 0 {
		return env.ErrNoWavelengths
	}
	want := tensor.Shape{e.NumWavelengths(), ports, ports}
	if gradRS == nil || !gradRS.Shape().Equal(want) {
		return fmt.Errorf("real part: want %v: %w", want, ErrShapeMismatch)
	}
	if gradIS == nil || !gradIS.Shape().Equal(want) {
		return fmt.Errorf("imaginary part: want %v: %w", want, ErrShapeMismatch)
	}
	return nil
}
