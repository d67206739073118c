package mesh

import (
	"errors"
	"fmt"

	"github.com/notargets/cartmesh/backend"
)

var errInjected = errors.New("injected failure")

// fakeBackend is a minimal in-memory runtime. Its basis interpolates the corner values onto
// equally spaced points, which is enough to check index placement independent of the
// Gauss-Lobatto machinery.
type fakeBackend struct {
	fail         string
	basisApplies int
	restrictions []*fakeRestriction
}

type fakeVector []float64

func (v *fakeVector) Len() int                   { return len(*v) }
func (v *fakeVector) SetValue(val float64) error { fill(*v, val); return nil }
func (v *fakeVector) View() ([]float64, error)   { return *v, nil }

func fill(data []float64, val float64) {
	for i := range data {
		data[i] = val
	}
}

type fakeBasis struct {
	bk   *fakeBackend
	P, Q int
}

func (b *fakeBasis) NumNodes() int      { return b.P }
func (b *fakeBasis) NumQuadPoints() int { return b.Q }

func (b *fakeBasis) Apply(nelem int, tmode backend.TransposeMode, emode backend.EvalMode,
	u, v backend.Vector) error {
	b.bk.basisApplies++
	if b.bk.fail == "apply" {
		return errInjected
	}
	in, _ := u.View()
	out, _ := v.View()
	for i := 0; i < b.Q; i++ {
		out[i] = in[0] + (in[1]-in[0])*float64(i)/float64(b.Q-1)
	}
	return nil
}

type fakeRestriction struct {
	strided                       bool
	nelem, elemSize, ncomp, lsize int
	compStride                    int
	offsets                       []int32
	strides                       backend.Strides
}

func (r *fakeRestriction) NumElements() int { return r.nelem }
func (r *fakeRestriction) ElemSize() int    { return r.elemSize }
func (r *fakeRestriction) NumComp() int     { return r.ncomp }
func (r *fakeRestriction) LSize() int       { return r.lsize }
func (r *fakeRestriction) ESize() int       { return r.nelem * r.elemSize * r.ncomp }
func (r *fakeRestriction) Apply(backend.TransposeMode, backend.Vector, backend.Vector) error {
	return backend.ErrUnsupported
}

func (bk *fakeBackend) Resource() string { return "/fake" }

func (bk *fakeBackend) NewVector(n int) (backend.Vector, error) {
	if bk.fail == "vector" || n < 1 {
		return nil, fmt.Errorf("vector of %d: %w", n, errInjected)
	}
	v := make(fakeVector, n)
	fill(v, 42) // garbage until SetValue
	return &v, nil
}

func (bk *fakeBackend) NewVectorFromSlice(vals []float64) (backend.Vector, error) {
	v := make(fakeVector, len(vals))
	copy(v, vals)
	return &v, nil
}

func (bk *fakeBackend) NewLagrangeBasis1D(ncomp, P, Q int, qmode backend.QuadMode) (backend.Basis, error) {
	if bk.fail == "basis" {
		return nil, errInjected
	}
	return &fakeBasis{bk: bk, P: P, Q: Q}, nil
}

func (bk *fakeBackend) NewElemRestriction(nelem, elemSize, ncomp, compStride, lsize int,
	offsets []int32) (backend.ElemRestriction, error) {
	if bk.fail == "restriction" {
		return nil, errInjected
	}
	r := &fakeRestriction{nelem: nelem, elemSize: elemSize, ncomp: ncomp, compStride: compStride,
		lsize: lsize, offsets: offsets}
	bk.restrictions = append(bk.restrictions, r)
	return r, nil
}

func (bk *fakeBackend) NewStridedElemRestriction(nelem, elemSize, ncomp, lsize int,
	strides backend.Strides) (backend.ElemRestriction, error) {
	if bk.fail == "strided" {
		return nil, errInjected
	}
	r := &fakeRestriction{strided: true, nelem: nelem, elemSize: elemSize, ncomp: ncomp,
		lsize: lsize, strides: strides}
	bk.restrictions = append(bk.restrictions, r)
	return r, nil
}
