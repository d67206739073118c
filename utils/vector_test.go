package utils

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	N := 3
	v1 := NewVector(N).Set(1)
	require.Equal(t, 1., v1.V.RawVector().Data[N-1])
	v1.Set(2)
	require.Equal(t, 2., v1.Data()[N-1])
	v1.AddScalar(1).Scale(2)
	assert.Equal(t, []float64{6, 6, 6}, v1.Data())

	v2 := v1.Copy()
	v2.Set(0)
	assert.Equal(t, 6., v1.AtVec(0))
	fmt.Printf("v1 = \n%v\n", mat.Formatted(v1, mat.Squeeze()))

	// Linspace
	{
		req := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 1., req.AtVec(1))
		req = NewVector(3).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 0., req.AtVec(1))
		assert.Equal(t, 1., req.AtVec(2))
		assert.Equal(t, -1., req.Min())
		assert.Equal(t, 1., req.Max())
	}
	assert.Panics(t, func() { NewVector(2, []float64{1}) })
}
