/*
Package ref is the host reference implementation of the backend contract. Vectors are gonum
dense vectors, the 1-D Lagrange basis is built from the DG1D Jacobi machinery and offset
restrictions are stored as sparse CSR operators.
*/
package ref

import (
	"fmt"

	"github.com/notargets/cartmesh/backend"
)

const Resource = "/cpu/self/ref"

type Ceed struct{}

var _ backend.Backend = (*Ceed)(nil)

func New() *Ceed {
	return &Ceed{}
}

func (c *Ceed) Resource() string { return Resource }

func (c *Ceed) NewVector(n int) (backend.Vector, error) {
	if n < 1 {
		return nil, fmt.Errorf("vector length %d: %w", n, backend.ErrInvalidSize)
	}
	return newVector(n, nil), nil
}

func (c *Ceed) NewVectorFromSlice(vals []float64) (backend.Vector, error) {
	if len(vals) == 0 {
		return nil, fmt.Errorf("empty vector literal: %w", backend.ErrInvalidSize)
	}
	data := make([]float64, len(vals))
	copy(data, vals)
	return newVector(len(data), data), nil
}

func checkPositive(names []string, vals ...int) (err error) {
	for i, val := range vals {
		if val < 1 {
			err = fmt.Errorf("%s = %d: %w", names[i], val, backend.ErrInvalidSize)
			return
		}
	}
	return
}

func viewOf(v backend.Vector, n int, name string) (data []float64, err error) {
	if v == nil {
		err = fmt.Errorf("%s vector is nil: %w", name, backend.ErrLengthMismatch)
		return
	}
	if v.Len() != n {
		err = fmt.Errorf("%s vector has length %d, need %d: %w", name, v.Len(), n, backend.ErrLengthMismatch)
		return
	}
	return v.View()
}
