package component

import (
	"context"
	"fmt"

	"github.com/born-ml/photon/internal/env"
	"github.com/born-ml/photon/internal/parallel"
	"github.com/born-ml/photon/internal/tensor"
)

// SMatrix is the evaluated scattering matrix of one component.
type SMatrix struct {
	Name  string
	RealS *tensor.Tensor
	ImagS *tensor.Tensor
}

// Evaluate computes the scattering matrices of cs in one environment,
// spreading the components over cfg.NumWorkers goroutines. Results keep the
// order of cs.
//
// Forward passes only read parameters. Callers must not run an optimizer
// step on the same components while Evaluate is in flight.
func Evaluate(ctx context.Context, e *env.Environment, cs []Component, cfg parallel.Config) ([]SMatrix, error) {
	if e == nil {
		return nil, ErrNilEnvironment
	}
	if e.NumWavelengths() == 0 {
		return nil, env.ErrNoWavelengths
	}

	out := make([]SMatrix, len(cs))
	err := parallel.For(ctx, len(cs), func(i int) error {
		c := cs[i]
		rS, iS := c.RealS(e), c.ImagS(e)

		want := tensor.Shape{e.NumWavelengths(), c.NumPorts(), c.NumPorts()}
		if !rS.Shape().Equal(want) || !iS.Shape().Equal(want) {
			return fmt.Errorf("%s: %w: got %v and %v, want %v", c.Name(), ErrShapeMismatch, rS.Shape(), iS.Shape(), want)
		}
		out[i] = SMatrix{Name: c.Name(), RealS: rS, ImagS: iS}
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}
	return out, nil
}
