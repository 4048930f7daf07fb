package param

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBounded_Variants(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		bounds    *Bounds
		trainable bool
	}{
		{"no bounds", 0.3, nil, false},
		{"degenerate bounds", 0.5, &Bounds{0.5, 0.5}, false},
		{"unit interval", 0.5, &Bounds{0, 1}, true},
		{"lower edge", 0, &Bounds{0, 1}, true},
		{"upper edge", 1, &Bounds{0, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewBounded("R", tt.value, tt.bounds)
			require.NoError(t, err)
			assert.Equal(t, tt.trainable, p.Trainable())
			assert.Equal(t, tt.value, p.Value())
		})
	}
}

func TestNewBounded_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		bounds *Bounds
		want   error
	}{
		{"inverted bounds", 0.5, &Bounds{1, 0}, ErrInvalidBounds},
		{"below low", -0.1, &Bounds{0, 1}, ErrOutOfBounds},
		{"above high", 1.2, &Bounds{0, 1}, ErrOutOfBounds},
		{"degenerate mismatch", 0.3, &Bounds{0.5, 0.5}, ErrOutOfBounds},
		{"nan value", math.NaN(), &Bounds{0, 1}, ErrNotFinite},
		{"nan fixed", math.NaN(), nil, ErrNotFinite},
		{"nan bound", 0.5, &Bounds{math.NaN(), 1}, ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBounded("R", tt.value, tt.bounds)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "R", cfgErr.Param)
		})
	}
}

func TestSetValue_Projects(t *testing.T) {
	p, err := NewTrainable("R", 0.5, Bounds{0.2, 0.8})
	require.NoError(t, err)

	v, err := p.SetValue(0.9)
	require.NoError(t, err)
	assert.Equal(t, 0.8, v)

	v, err = p.SetValue(-3)
	require.NoError(t, err)
	assert.Equal(t, 0.2, v)

	v, err = p.SetValue(0.4)
	require.NoError(t, err)
	assert.Equal(t, 0.4, v)
	assert.Equal(t, 0.4, p.Value())

	_, err = p.SetValue(math.NaN())
	assert.ErrorIs(t, err, ErrNotFinite)
	assert.Equal(t, 0.4, p.Value())
}

func TestSetValue_Fixed(t *testing.T) {
	p, err := NewBounded("R", 0.5, &Bounds{0.5, 0.5})
	require.NoError(t, err)

	v, err := p.SetValue(0.1)
	assert.ErrorIs(t, err, ErrFixedParameter)
	assert.Equal(t, 0.5, v)
	assert.Equal(t, 0.5, p.Value())
}

func TestGrad(t *testing.T) {
	p, err := NewTrainable("R", 0.5, Bounds{0, 1})
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.Grad())
	p.SetGrad(1.5)
	assert.Equal(t, 1.5, p.Grad())
	p.ZeroGrad()
	assert.Equal(t, 0.0, p.Grad())
}

func TestGradients_Accumulate(t *testing.T) {
	trainable, err := NewTrainable("a", 0.5, Bounds{0, 1})
	require.NoError(t, err)
	fixed, err := NewFixed("b", 0.5)
	require.NoError(t, err)

	gs := Gradients{}
	gs.Accumulate(trainable, 1)
	gs.Accumulate(trainable, 2)
	gs.Accumulate(fixed, 5)
	gs.Accumulate(nil, 5)

	g, ok := gs.Get(trainable)
	assert.True(t, ok)
	assert.Equal(t, 3.0, g)

	_, ok = gs.Get(fixed)
	assert.False(t, ok)
}

func TestParameter_ConcurrentReads(t *testing.T) {
	p, err := NewTrainable("R", 0.5, Bounds{0, 1})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v := p.Value()
				assert.True(t, v >= 0 && v <= 1)
			}
		}()
	}
	for j := 0; j < 100; j++ {
		_, _ = p.SetValue(float64(j%10) / 10)
	}
	wg.Wait()
}

func TestBounds(t *testing.T) {
	b := Bounds{0.2, 0.8}
	assert.True(t, b.Contains(0.2))
	assert.False(t, b.Contains(0.81))
	assert.Equal(t, 0.8, b.Clamp(2))
	assert.True(t, b.Within(Bounds{0, 1}))
	assert.False(t, Bounds{-0.1, 1}.Within(Bounds{0, 1}))
	assert.Equal(t, "[0.2, 0.8]", b.String())
	assert.Equal(t, "trainable", Trainable.String())
	assert.Equal(t, "fixed", Fixed.String())
}

func TestParameter_Project(t *testing.T) {
	p, err := NewTrainable("R", 0.25, Bounds{0.2, 0.8})
	require.NoError(t, err)
	assert.Equal(t, 0.25, p.Project())

	got, err := p.SetValue(5)
	require.NoError(t, err)
	assert.Equal(t, 0.8, got)
	assert.Equal(t, 0.8, p.Project())
	assert.Equal(t, 0.8, p.Value())

	fixed, err := NewFixed("F", 0.9)
	require.NoError(t, err)
	assert.Equal(t, 0.9, fixed.Project())
	assert.Equal(t, Fixed, fixed.Kind())
}
