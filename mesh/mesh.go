package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/cartmesh/backend"
)

type Options struct {
	Dim            int
	SolutionDegree int
	MeshDegree     int
	ProblemSize    int64
	NumComp        int // Solution components
	NumQPts        int // 1-D quadrature points, zero means SolutionDegree+2
}

func (o Options) Validate() (err error) {
	switch {
	case o.Dim < 1 || o.Dim > MaxDim:
		err = fmt.Errorf("dimension must be 1, 2 or 3, have %d", o.Dim)
	case o.SolutionDegree < 1:
		err = fmt.Errorf("solution degree must be at least 1, have %d", o.SolutionDegree)
	case o.MeshDegree < 1:
		err = fmt.Errorf("mesh degree must be at least 1, have %d", o.MeshDegree)
	case o.ProblemSize < 1:
		err = fmt.Errorf("problem size must be at least 1, have %d", o.ProblemSize)
	case o.NumComp < 1:
		err = fmt.Errorf("number of components must be at least 1, have %d", o.NumComp)
	case o.NumQPts < 0:
		err = fmt.Errorf("number of quadrature points cannot be negative, have %d", o.NumQPts)
	}
	return
}

func (o Options) QPts() int {
	if o.NumQPts == 0 {
		return o.SolutionDegree + 2
	}
	return o.NumQPts
}

// Mesh is the complete description of one generated mesh. The coordinate field uses the mesh
// degree with Dim components; the solution field uses the solution degree.
type Mesh struct {
	Options
	Counts              AxisCounts
	NumElements         int
	MeshScalarSize      int
	SolutionScalarSize  int
	MeshRestriction     backend.ElemRestriction
	SolutionRestriction backend.ElemRestriction
	QDataRestriction    backend.ElemRestriction
	Coords              backend.Vector
}

// Generate runs the sizer, the restriction builder and the coordinate generator in order.
// Concurrent calls are independent as long as each uses its own backend handles.
func Generate(bk backend.Backend, opts Options) (m *Mesh, err error) {
	if err = opts.Validate(); err != nil {
		return
	}
	var (
		dim    = opts.Dim
		nqpts  = opts.QPts()
		counts = CartesianMeshSize(dim, opts.SolutionDegree, opts.ProblemSize)
	)
	m = &Mesh{
		Options:            opts,
		Counts:             counts,
		NumElements:        counts.NumElements(dim),
		MeshScalarSize:     counts.ScalarSize(dim, opts.MeshDegree),
		SolutionScalarSize: counts.ScalarSize(dim, opts.SolutionDegree),
	}
	if m.MeshRestriction, _, err = BuildCartesianRestriction(bk, dim, counts,
		opts.MeshDegree, dim, nqpts); err != nil {
		return nil, err
	}
	if m.SolutionRestriction, m.QDataRestriction, err = BuildCartesianRestriction(bk, dim, counts,
		opts.SolutionDegree, opts.NumComp, nqpts); err != nil {
		return nil, err
	}
	if m.Coords, err = CartesianMeshCoords(bk, dim, counts, opts.MeshDegree,
		m.MeshRestriction.LSize()); err != nil {
		return nil, err
	}
	return
}

// CoordRange returns the smallest and largest coordinate along axis d.
func (m *Mesh) CoordRange(d int) (min, max float64, err error) {
	var view []float64
	if d < 0 || d >= m.Dim {
		err = fmt.Errorf("axis %d outside dimension %d", d, m.Dim)
		return
	}
	if view, err = m.Coords.View(); err != nil {
		return
	}
	axis := view[d*m.MeshScalarSize : (d+1)*m.MeshScalarSize]
	return floats.Min(axis), floats.Max(axis), nil
}

func (m *Mesh) String() string {
	return fmt.Sprintf("dim=%d elements=%d counts=%v mesh nodes=%d solution nodes=%d",
		m.Dim, m.NumElements, m.Counts, m.MeshScalarSize, m.SolutionScalarSize)
}
