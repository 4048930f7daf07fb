package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{3}, 3},
		{Shape{4, 2, 2}, 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShape_Validate(t *testing.T) {
	assert.NoError(t, Shape{1, 2, 2}.Validate())
	assert.Error(t, Shape{0, 2, 2}.Validate())
	assert.Error(t, Shape{2, -1}.Validate())
}

func TestShape_ComputeStrides(t *testing.T) {
	assert.Equal(t, []int{4, 2, 1}, Shape{3, 2, 2}.ComputeStrides())
	assert.Equal(t, []int{}, Shape{}.ComputeStrides())
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "(3, 2, 2)", Shape{3, 2, 2}.String())
}

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4}, Shape{1, 2, 2})
	require.NoError(t, err)

	assert.Equal(t, 2.0, x.At(0, 0, 1))
	assert.Equal(t, 3.0, x.At(0, 1, 0))

	_, err = FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	assert.Error(t, err)
}

func TestFromSlice_Copies(t *testing.T) {
	src := []float64{1, 2}
	x, err := FromSlice(src, Shape{2})
	require.NoError(t, err)

	src[0] = 100
	assert.Equal(t, 1.0, x.At(0))
}

func TestAtSet_OutOfBounds(t *testing.T) {
	x := Zeros(Shape{2, 2, 2})
	assert.Panics(t, func() { x.At(2, 0, 0) })
	assert.Panics(t, func() { x.At(0, 0) })
	assert.Panics(t, func() { x.Set(1, 0, 0, -1) })
}

func TestRepeat(t *testing.T) {
	swap := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	s := Repeat(swap, 3)

	assert.True(t, s.Shape().Equal(Shape{3, 2, 2}))
	for w := 0; w < 3; w++ {
		assert.True(t, mat.Equal(swap, s.Block(w)), "block %d", w)
	}
	assert.Panics(t, func() { Repeat(swap, 0) })
}

func TestStack(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	b := mat.NewDense(2, 2, []float64{0, 2, 2, 0})

	s, err := Stack(a, b)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, s.Block(0)))
	assert.True(t, mat.Equal(b, s.Block(1)))

	_, err = Stack(a, mat.NewDense(3, 2, nil))
	assert.Error(t, err)

	_, err = Stack()
	assert.Error(t, err)
}

func TestElementwiseOps(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4}, Shape{1, 2, 2})
	require.NoError(t, err)
	b := Full(Shape{1, 2, 2}, 2)

	assert.Equal(t, []float64{3, 4, 5, 6}, a.Add(b).Data())
	assert.Equal(t, []float64{-1, 0, 1, 2}, a.Sub(b).Data())
	assert.Equal(t, []float64{2, 4, 6, 8}, a.Mul(b).Data())
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, a.Scale(0.5).Data())
	assert.Equal(t, 10.0, a.Sum())
	assert.Equal(t, 20.0, a.Dot(b))

	// Inputs are untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())

	assert.Panics(t, func() { a.Add(Zeros(Shape{2, 2})) })
}

func TestAllClose(t *testing.T) {
	a := Full(Shape{2, 2, 2}, 1)
	b := Full(Shape{2, 2, 2}, 1+1e-9)

	assert.True(t, a.AllClose(b, 1e-6))
	assert.False(t, a.AllClose(Full(Shape{2, 2, 2}, 1.1), 1e-6))
	assert.False(t, a.AllClose(Full(Shape{1, 2, 2}, 1), 1e-6))
}

func TestBlock_Copy(t *testing.T) {
	x := Zeros(Shape{2, 2, 2})
	blk := x.Block(1)
	blk.Set(0, 0, 5)

	assert.Equal(t, 0.0, x.At(1, 0, 0))
	assert.Panics(t, func() { x.Block(2) })
	assert.Panics(t, func() { Zeros(Shape{2, 2}).Block(0) })
}
