package ref

import (
	"github.com/notargets/cartmesh/backend"
	"github.com/notargets/cartmesh/utils"
)

type Vector struct {
	utils.Vector
}

var _ backend.Vector = (*Vector)(nil)

func newVector(n int, data []float64) *Vector {
	if data == nil {
		return &Vector{utils.NewVector(n)}
	}
	return &Vector{utils.NewVector(n, data)}
}

func (v *Vector) SetValue(val float64) error {
	v.Set(val)
	return nil
}

func (v *Vector) View() ([]float64, error) {
	return v.Data(), nil
}
