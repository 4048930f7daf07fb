package component

import (
	"math"

	"github.com/born-ml/photon/internal/env"
	"github.com/born-ml/photon/internal/param"
	"github.com/born-ml/photon/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// gradFloor bounds the square-root arguments in the derivative away from
// zero, where d(sqrt(x))/dx diverges.
const gradFloor = 1e-12

var _ Component = (*Mirror)(nil)

// physicalRange is the interval every reflectivity must stay in.
var physicalRange = param.Bounds{Low: 0, High: 1}

// Mirror is a memory-less, lossless two-port component.
//
// Its only degree of freedom is the reflectivity R: power R is reflected
// back onto the incoming port and 1-R is transmitted to the other one.
//
//	    |
//	i --|-- j
//	    |
//
// At every wavelength the scattering matrix is
//
//	S = sqrt(R) * [[1, 0], [0, 1]] + i * sqrt(1-R) * [[0, 1], [1, 0]]
//
// Example:
//
//	m, err := component.NewMirror(component.DefaultMirrorConfig())
//	rS := m.RealS(e) // shape (W, 2, 2)
type Mirror struct {
	Base
	r *param.Parameter
}

// MirrorConfig holds configuration for a Mirror.
type MirrorConfig struct {
	R      float64       // Reflectivity in [0, 1]
	Bounds *param.Bounds // Optimization bounds; nil means R is not optimized
	Name   string        // Instance name; generated when empty
}

// DefaultMirrorConfig returns R = 0.5, trainable in [0, 1].
func DefaultMirrorConfig() MirrorConfig {
	return MirrorConfig{
		R:      0.5,
		Bounds: &param.Bounds{Low: 0, High: 1},
	}
}

// NewMirror creates a mirror.
//
// R and the bounds must lie in [0, 1], and R must lie within the bounds.
// Equal lower and upper bounds make R a fixed constant.
func NewMirror(cfg MirrorConfig) (*Mirror, error) {
	m := &Mirror{Base: NewBase(cfg.Name, "mirror")}

	if !physicalRange.Contains(cfg.R) {
		b := physicalRange
		return nil, &param.ConfigError{Param: m.Name() + ".R", Value: cfg.R, Bounds: &b, Err: param.ErrOutOfBounds}
	}
	if cfg.Bounds != nil {
		if err := cfg.Bounds.Validate(); err != nil {
			b := *cfg.Bounds
			return nil, &param.ConfigError{Param: m.Name() + ".R", Value: cfg.R, Bounds: &b, Err: err}
		}
		if !cfg.Bounds.Within(physicalRange) {
			b := *cfg.Bounds
			return nil, &param.ConfigError{Param: m.Name() + ".R", Value: cfg.R, Bounds: &b, Err: param.ErrOutOfBounds}
		}
	}

	r, err := param.NewBounded("R", cfg.R, cfg.Bounds)
	if err != nil {
		return nil, err
	}
	m.r = m.register(r)
	return m, nil
}

// NumPorts returns 2.
func (m *Mirror) NumPorts() int {
	return 2
}

// Ports returns the port names in row/column order.
func (m *Mirror) Ports() []string {
	return []string{"i", "j"}
}

// R returns the reflectivity parameter.
func (m *Mirror) R() *param.Parameter {
	return m.r
}

// Reflectivity returns the current value of R.
func (m *Mirror) Reflectivity() float64 {
	return m.r.Value()
}

// RealS returns the real part of the scattering matrix: sqrt(R) on the
// diagonal at every wavelength.
func (m *Mirror) RealS(e *env.Environment) *tensor.Tensor {
	w := mustEnv(e, "mirror RealS")
	return tensor.Repeat(reflection(), w).Scale(math.Sqrt(m.r.Value()))
}

// ImagS returns the imaginary part of the scattering matrix: sqrt(1-R) on
// the anti-diagonal at every wavelength.
func (m *Mirror) ImagS(e *env.Environment) *tensor.Tensor {
	w := mustEnv(e, "mirror ImagS")
	return tensor.Repeat(transmission(), w).Scale(math.Sqrt(1 - m.r.Value()))
}

// Jacobian returns dRealS/dR and dImagS/dR, both shaped (W, 2, 2).
//
//	d sqrt(R)/dR   =  1 / (2 sqrt(R))
//	d sqrt(1-R)/dR = -1 / (2 sqrt(1-R))
func (m *Mirror) Jacobian(e *env.Environment) (dRealS, dImagS *tensor.Tensor) {
	w := mustEnv(e, "mirror Jacobian")
	r := m.r.Value()
	dr := 1 / (2 * math.Sqrt(math.Max(r, gradFloor)))
	dt := -1 / (2 * math.Sqrt(math.Max(1-r, gradFloor)))
	return tensor.Repeat(reflection(), w).Scale(dr), tensor.Repeat(transmission(), w).Scale(dt)
}

// Backward returns dL/dR given dL/dRealS and dL/dImagS.
//
// A fixed reflectivity yields empty gradients.
func (m *Mirror) Backward(e *env.Environment, gradRS, gradIS *tensor.Tensor) (param.Gradients, error) {
	if err := checkGradShape(e, m.NumPorts(), gradRS, gradIS); err != nil {
		return nil, err
	}

	grads := param.Gradients{}
	if !m.r.Trainable() {
		return grads, nil
	}

	jr, ji := m.Jacobian(e)
	grads.Accumulate(m.r, gradRS.Dot(jr)+gradIS.Dot(ji))
	return grads, nil
}

func reflection() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})
}

func transmission() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		0, 1,
		1, 0,
	})
}
