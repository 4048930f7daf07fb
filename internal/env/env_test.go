package env

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e, err := New("sim", 1.5e-6, 1.55e-6)
	require.NoError(t, err)
	assert.Equal(t, 2, e.NumWavelengths())
	assert.Equal(t, "sim", e.Name)
}

func TestNew_CopiesInput(t *testing.T) {
	wls := []float64{1.5e-6}
	e, err := New("sim", wls...)
	require.NoError(t, err)

	wls[0] = 2e-6
	assert.Equal(t, 1.5e-6, e.Wavelengths[0])
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("sim")
	assert.ErrorIs(t, err, ErrNoWavelengths)

	for _, wl := range []float64{0, -1e-6, math.NaN(), math.Inf(1)} {
		_, err := New("sim", wl)
		assert.ErrorIs(t, err, ErrInvalidWavelength, "wavelength %g", wl)
	}
}

func TestSpan(t *testing.T) {
	e, err := Span("sweep", 1.5e-6, 1.6e-6, 3)
	require.NoError(t, err)
	require.Equal(t, 3, e.NumWavelengths())
	assert.InDelta(t, 1.5e-6, e.Wavelengths[0], 1e-15)
	assert.InDelta(t, 1.55e-6, e.Wavelengths[1], 1e-15)
	assert.InDelta(t, 1.6e-6, e.Wavelengths[2], 1e-15)

	single, err := Span("one", 1.55e-6, 1.6e-6, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.55e-6}, single.Wavelengths)
}

func TestSpan_Invalid(t *testing.T) {
	_, err := Span("sweep", 1.5e-6, 1.6e-6, 0)
	assert.ErrorIs(t, err, ErrInvalidSpan)

	_, err = Span("sweep", 1.6e-6, 1.5e-6, 4)
	assert.ErrorIs(t, err, ErrInvalidSpan)

	_, err = Span("sweep", -1e-6, 1.5e-6, 4)
	assert.ErrorIs(t, err, ErrInvalidWavelength)
}

func TestDefault(t *testing.T) {
	e := Default()
	assert.Equal(t, 1, e.NumWavelengths())
	assert.Equal(t, DefaultWavelength, e.Wavelengths[0])
	assert.Contains(t, e.String(), "1 wavelengths")
}
