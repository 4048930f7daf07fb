package loss

import (
	"testing"

	"github.com/born-ml/photon/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMSE_Forward(t *testing.T) {
	rS, err := tensor.FromSlice([]float64{1, 0, 0, 1}, tensor.Shape{1, 2, 2})
	require.NoError(t, err)
	iS := tensor.Zeros(tensor.Shape{1, 2, 2})
	tR := tensor.Zeros(tensor.Shape{1, 2, 2})
	tI, err := tensor.FromSlice([]float64{0, 1, 1, 0}, tensor.Shape{1, 2, 2})
	require.NoError(t, err)

	var mse MSE
	value, gR, gI, err := mse.Forward(rS, iS, tR, tI)
	require.NoError(t, err)

	// 4 unit errors over 8 entries.
	assert.InDelta(t, 0.5, value, 1e-12)
	assert.Equal(t, []float64{0.25, 0, 0, 0.25}, gR.Data())
	assert.Equal(t, []float64{0, -0.25, -0.25, 0}, gI.Data())
}

func TestMSE_ZeroAtTarget(t *testing.T) {
	s := tensor.Full(tensor.Shape{3, 2, 2}, 0.4)

	var mse MSE
	value, gR, gI, err := mse.Forward(s, s, s, s)
	require.NoError(t, err)
	assert.Equal(t, 0.0, value)
	assert.Equal(t, 0.0, gR.Sum())
	assert.Equal(t, 0.0, gI.Sum())
}

// TestMSE_GradientFiniteDifference perturbs one entry of rS.
func TestMSE_GradientFiniteDifference(t *testing.T) {
	rS := tensor.Full(tensor.Shape{2, 2, 2}, 0.3)
	iS := tensor.Full(tensor.Shape{2, 2, 2}, -0.2)
	tR := tensor.Full(tensor.Shape{2, 2, 2}, 0.1)
	tI := tensor.Full(tensor.Shape{2, 2, 2}, 0.5)

	var mse MSE
	_, gR, _, err := mse.Forward(rS, iS, tR, tI)
	require.NoError(t, err)

	const h = 1e-6
	plus := rS.Clone()
	plus.Set(plus.At(1, 0, 1)+h, 1, 0, 1)
	minus := rS.Clone()
	minus.Set(minus.At(1, 0, 1)-h, 1, 0, 1)

	lp, _, _, err := mse.Forward(plus, iS, tR, tI)
	require.NoError(t, err)
	lm, _, _, err := mse.Forward(minus, iS, tR, tI)
	require.NoError(t, err)

	assert.InDelta(t, (lp-lm)/(2*h), gR.At(1, 0, 1), 1e-6)
}

func TestMSE_ShapeMismatch(t *testing.T) {
	a := tensor.Zeros(tensor.Shape{2, 2, 2})
	b := tensor.Zeros(tensor.Shape{1, 2, 2})

	var mse MSE
	_, _, _, err := mse.Forward(a, b, a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, _, _, err = mse.Forward(a, a, b, a)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
