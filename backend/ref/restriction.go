package ref

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/notargets/cartmesh/backend"
)

type restrictionSizes struct {
	nelem, elemSize, ncomp, lsize int
}

func (r restrictionSizes) NumElements() int { return r.nelem }
func (r restrictionSizes) ElemSize() int    { return r.elemSize }
func (r restrictionSizes) NumComp() int     { return r.ncomp }
func (r restrictionSizes) LSize() int       { return r.lsize }
func (r restrictionSizes) ESize() int       { return r.nelem * r.elemSize * r.ncomp }

// eIndex is the E-vector position of (elem, comp, node): [elem][comp][node].
func (r restrictionSizes) eIndex(elem, comp, node int) int {
	return (elem*r.ncomp+comp)*r.elemSize + node
}

/*
OffsetRestriction is the Boolean gather operator E, stored as an [ESize x LSize] CSR matrix with
a single 1 per row. NoTranspose computes E*u, Transpose accumulates E^T*u into v so that values
of nodes shared between elements are summed.
*/
type OffsetRestriction struct {
	restrictionSizes
	CompStride int
	Offsets    []int32
	E          *sparse.CSR
}

var _ backend.ElemRestriction = (*OffsetRestriction)(nil)

func (c *Ceed) NewElemRestriction(nelem, elemSize, ncomp, compStride, lsize int,
	offsets []int32) (backend.ElemRestriction, error) {
	return NewOffsetRestriction(nelem, elemSize, ncomp, compStride, lsize, offsets)
}

func NewOffsetRestriction(nelem, elemSize, ncomp, compStride, lsize int,
	offsets []int32) (r *OffsetRestriction, err error) {
	if err = checkPositive([]string{"nelem", "elemSize", "ncomp", "compStride", "lsize"},
		nelem, elemSize, ncomp, compStride, lsize); err != nil {
		return
	}
	if len(offsets) != nelem*elemSize {
		err = fmt.Errorf("have %d offsets for %d elements of size %d: %w",
			len(offsets), nelem, elemSize, backend.ErrInvalidSize)
		return
	}
	r = &OffsetRestriction{
		restrictionSizes: restrictionSizes{nelem, elemSize, ncomp, lsize},
		CompStride:       compStride,
		Offsets:          make([]int32, len(offsets)),
	}
	copy(r.Offsets, offsets)
	dok := sparse.NewDOK(r.ESize(), lsize)
	for e := 0; e < nelem; e++ {
		for i := 0; i < elemSize; i++ {
			off := int(offsets[e*elemSize+i])
			for comp := 0; comp < ncomp; comp++ {
				col := off + comp*compStride
				if off < 0 || col >= lsize {
					err = fmt.Errorf("offset %d of element %d, component %d maps to %d, L-vector size %d: %w",
						off, e, comp, col, lsize, backend.ErrIndexOutOfRange)
					return nil, err
				}
				dok.Set(r.eIndex(e, comp, i), col, 1)
			}
		}
	}
	r.E = dok.ToCSR()
	return
}

func (r *OffsetRestriction) Apply(tmode backend.TransposeMode, u, v backend.Vector) (err error) {
	var (
		in, out []float64
		nIn     = r.lsize
		nOut    = r.ESize()
		trans   = tmode == backend.Transpose
	)
	if trans {
		nIn, nOut = nOut, nIn
	}
	if in, err = viewOf(u, nIn, "input"); err != nil {
		return
	}
	if out, err = viewOf(v, nOut, "output"); err != nil {
		return
	}
	tmp := make([]float64, nOut)
	r.E.MulVecTo(tmp, trans, in)
	if trans {
		for i, val := range tmp {
			out[i] += val
		}
		return
	}
	copy(out, tmp)
	return
}

// StridedRestriction addresses L-vector entries as node*s[0] + comp*s[1] + elem*s[2].
type StridedRestriction struct {
	restrictionSizes
	Strides backend.Strides
}

var _ backend.ElemRestriction = (*StridedRestriction)(nil)

func (c *Ceed) NewStridedElemRestriction(nelem, elemSize, ncomp, lsize int,
	strides backend.Strides) (backend.ElemRestriction, error) {
	return NewStridedRestriction(nelem, elemSize, ncomp, lsize, strides)
}

func NewStridedRestriction(nelem, elemSize, ncomp, lsize int,
	strides backend.Strides) (r *StridedRestriction, err error) {
	if err = checkPositive([]string{"nelem", "elemSize", "ncomp", "lsize"},
		nelem, elemSize, ncomp, lsize); err != nil {
		return
	}
	if strides.IsBackend() {
		strides = backend.Strides{1, elemSize, elemSize * ncomp}
	}
	for d, s := range strides {
		if s < 0 {
			err = fmt.Errorf("stride %d is negative (%d): %w", d, s, backend.ErrInvalidSize)
			return
		}
	}
	r = &StridedRestriction{
		restrictionSizes: restrictionSizes{nelem, elemSize, ncomp, lsize},
		Strides:          strides,
	}
	if last := r.lIndex(nelem-1, ncomp-1, elemSize-1); last >= lsize {
		err = fmt.Errorf("strides %v reach index %d, L-vector size %d: %w",
			strides, last, lsize, backend.ErrIndexOutOfRange)
		return nil, err
	}
	return
}

func (r *StridedRestriction) lIndex(elem, comp, node int) int {
	return node*r.Strides[0] + comp*r.Strides[1] + elem*r.Strides[2]
}

func (r *StridedRestriction) Apply(tmode backend.TransposeMode, u, v backend.Vector) (err error) {
	var (
		in, out []float64
		nIn     = r.lsize
		nOut    = r.ESize()
		trans   = tmode == backend.Transpose
	)
	if trans {
		nIn, nOut = nOut, nIn
	}
	if in, err = viewOf(u, nIn, "input"); err != nil {
		return
	}
	if out, err = viewOf(v, nOut, "output"); err != nil {
		return
	}
	for e := 0; e < r.nelem; e++ {
		for comp := 0; comp < r.ncomp; comp++ {
			for i := 0; i < r.elemSize; i++ {
				li, ei := r.lIndex(e, comp, i), r.eIndex(e, comp, i)
				if trans {
					out[li] += in[ei]
				} else {
					out[ei] = in[li]
				}
			}
		}
	}
	return
}
