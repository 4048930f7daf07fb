// Package loss implements objectives on scattering matrices together with
// their gradients, ready to be fed into a component's Backward.
package loss

import (
	"errors"
	"fmt"

	"github.com/born-ml/photon/internal/tensor"
)

// ErrShapeMismatch is returned when predictions and targets differ in shape.
var ErrShapeMismatch = errors.New("prediction and target shapes differ")

// MSE computes Mean Squared Error between a complex scattering matrix and a
// target, both given as real and imaginary tensors.
//
// Loss = (sum((rS - tR)²) + sum((iS - tI)²)) / (2 * N)
//
// where N is the number of elements of one part.
//
// Example:
//
//	var mse loss.MSE
//	l, gR, gI, err := mse.Forward(m.RealS(e), m.ImagS(e), targetR, targetI)
//	grads, err := m.Backward(e, gR, gI)
type MSE struct{}

// Forward returns the loss and its gradients w.r.t. rS and iS.
func (MSE) Forward(rS, iS, targetRS, targetIS *tensor.Tensor) (value float64, gradRS, gradIS *tensor.Tensor, err error) {
	if !rS.Shape().Equal(iS.Shape()) {
		return 0, nil, nil, fmt.Errorf("real %v vs imaginary %v: %w", rS.Shape(), iS.Shape(), ErrShapeMismatch)
	}
	if !rS.Shape().Equal(targetRS.Shape()) || !iS.Shape().Equal(targetIS.Shape()) {
		return 0, nil, nil, fmt.Errorf("prediction %v vs target %v/%v: %w",
			rS.Shape(), targetRS.Shape(), targetIS.Shape(), ErrShapeMismatch)
	}

	dr := rS.Sub(targetRS)
	di := iS.Sub(targetIS)
	n := float64(2 * rS.NumElements())

	value = (dr.Dot(dr) + di.Dot(di)) / n
	return value, dr.Scale(2 / n), di.Scale(2 / n), nil
}
