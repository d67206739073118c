/*
Package backend declares the narrow contract the mesh generator needs from a numerical
runtime: flat vectors, a 1-D Lagrange basis that can be applied once, and the two kinds of
element restriction. Implementations own their storage; handles are not safe to share
across concurrent mesh generations.
*/
package backend

import "errors"

var (
	// ErrInvalidSize is returned when a count or length is not positive, or sizes disagree.
	ErrInvalidSize = errors.New("backend: invalid size")

	// ErrIndexOutOfRange is returned when a restriction offset falls outside the L-vector.
	ErrIndexOutOfRange = errors.New("backend: index out of range")

	// ErrLengthMismatch is returned when a vector passed to Apply has the wrong length.
	ErrLengthMismatch = errors.New("backend: vector length mismatch")

	// ErrUnsupported is returned for modes the runtime does not implement.
	ErrUnsupported = errors.New("backend: unsupported mode")
)

type QuadMode uint8

const (
	Gauss QuadMode = iota
	GaussLobatto
)

func (qm QuadMode) String() string {
	switch qm {
	case Gauss:
		return "Gauss"
	case GaussLobatto:
		return "GaussLobatto"
	}
	return "Unknown"
}

type TransposeMode uint8

const (
	NoTranspose TransposeMode = iota
	Transpose
)

type EvalMode uint8

const (
	Interp EvalMode = iota
	Grad
)

// Strides addresses an L-vector entry of a strided restriction as
// node*s[0] + comp*s[1] + elem*s[2].
type Strides [3]int

// StridesBackend asks the runtime to choose its native layout for element-local data.
var StridesBackend = Strides{-1, -1, -1}

func (s Strides) IsBackend() bool { return s == StridesBackend }

type Vector interface {
	Len() int
	SetValue(val float64) error
	// View exposes the flat storage; writes are visible to later reads of the vector.
	View() ([]float64, error)
}

type Basis interface {
	NumNodes() int
	NumQuadPoints() int
	Apply(nelem int, tmode TransposeMode, emode EvalMode, u, v Vector) error
}

type ElemRestriction interface {
	NumElements() int
	ElemSize() int
	NumComp() int
	// LSize is the length of the global (L) vector, ESize of the element-local (E) vector.
	LSize() int
	ESize() int
	// Apply gathers L->E with NoTranspose and scatter-adds E->L with Transpose.
	Apply(tmode TransposeMode, u, v Vector) error
}

type Backend interface {
	Resource() string
	NewVector(n int) (Vector, error)
	NewVectorFromSlice(vals []float64) (Vector, error)
	NewLagrangeBasis1D(ncomp, P, Q int, qmode QuadMode) (Basis, error)
	NewElemRestriction(nelem, elemSize, ncomp, compStride, lsize int, offsets []int32) (ElemRestriction, error)
	NewStridedElemRestriction(nelem, elemSize, ncomp, lsize int, strides Strides) (ElemRestriction, error)
}
