package ref

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/cartmesh/DG1D"
	"github.com/notargets/cartmesh/backend"
	"github.com/notargets/cartmesh/utils"
)

// LagrangeBasis1D holds the [Q x P] interpolation and derivative matrices of a nodal
// Lagrange basis with Gauss-Lobatto nodes on [-1,1].
type LagrangeBasis1D struct {
	NComp, P, Q  int
	QMode        backend.QuadMode
	Nodes, QRef  utils.Vector
	Interp, Grad *mat.Dense
}

var _ backend.Basis = (*LagrangeBasis1D)(nil)

func (c *Ceed) NewLagrangeBasis1D(ncomp, P, Q int, qmode backend.QuadMode) (backend.Basis, error) {
	return NewLagrangeBasis1D(ncomp, P, Q, qmode)
}

func NewLagrangeBasis1D(ncomp, P, Q int, qmode backend.QuadMode) (b *LagrangeBasis1D, err error) {
	if err = checkPositive([]string{"ncomp", "P", "Q"}, ncomp, P, Q); err != nil {
		return
	}
	if P < 2 {
		err = fmt.Errorf("a nodal basis needs P >= 2 nodes, have %d: %w", P, backend.ErrInvalidSize)
		return
	}
	b = &LagrangeBasis1D{
		NComp: ncomp,
		P:     P,
		Q:     Q,
		QMode: qmode,
		Nodes: DG1D.JacobiGL(0, 0, P-1),
	}
	switch qmode {
	case backend.GaussLobatto:
		if Q < 2 {
			err = fmt.Errorf("Gauss-Lobatto quadrature needs Q >= 2, have %d: %w", Q, backend.ErrInvalidSize)
			return nil, err
		}
		b.QRef = DG1D.JacobiGL(0, 0, Q-1)
	case backend.Gauss:
		b.QRef, _ = DG1D.JacobiGQ(0, 0, Q-1)
	default:
		return nil, fmt.Errorf("quadrature mode %v: %w", qmode, backend.ErrUnsupported)
	}
	if b.Interp, err = DG1D.LagrangeInterp1D(b.Nodes, b.QRef); err != nil {
		return nil, err
	}
	if b.Grad, err = DG1D.LagrangeGrad1D(b.Nodes, b.QRef); err != nil {
		return nil, err
	}
	return
}

func (b *LagrangeBasis1D) NumNodes() int      { return b.P }
func (b *LagrangeBasis1D) NumQuadPoints() int { return b.Q }

/*
Apply maps element-local data between nodes and quadrature points. With NoTranspose, u holds
nelem*ncomp*P nodal values laid out as [elem][comp][node] and v receives nelem*ncomp*Q values
at the quadrature points. Transpose applies the adjoint, overwriting v.
*/
func (b *LagrangeBasis1D) Apply(nelem int, tmode backend.TransposeMode, emode backend.EvalMode,
	u, v backend.Vector) (err error) {
	var (
		op       *mat.Dense
		nIn, nOt = b.P, b.Q
		in, out  []float64
	)
	if err = checkPositive([]string{"nelem"}, nelem); err != nil {
		return
	}
	switch emode {
	case backend.Interp:
		op = b.Interp
	case backend.Grad:
		op = b.Grad
	default:
		return fmt.Errorf("eval mode %d: %w", emode, backend.ErrUnsupported)
	}
	var opM mat.Matrix = op
	if tmode == backend.Transpose {
		nIn, nOt = nOt, nIn
		opM = op.T()
	}
	if in, err = viewOf(u, nelem*b.NComp*nIn, "input"); err != nil {
		return
	}
	if out, err = viewOf(v, nelem*b.NComp*nOt, "output"); err != nil {
		return
	}
	for blk := 0; blk < nelem*b.NComp; blk++ {
		x := mat.NewVecDense(nIn, in[blk*nIn:(blk+1)*nIn])
		y := mat.NewVecDense(nOt, out[blk*nOt:(blk+1)*nOt])
		y.MulVec(opM, x)
	}
	return
}
