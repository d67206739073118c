package mesh

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/cartmesh/backend"
	"github.com/notargets/cartmesh/backend/ref"
	"github.com/notargets/cartmesh/utils"
)

var testGrids = []struct {
	dim    int
	counts AxisCounts
}{
	{1, AxisCounts{1, 1, 1}},
	{1, AxisCounts{4, 1, 1}},
	{2, AxisCounts{2, 2, 1}},
	{2, AxisCounts{4, 2, 1}},
	{2, AxisCounts{1, 3, 1}},
	{3, AxisCounts{2, 2, 2}},
	{3, AxisCounts{2, 1, 4}},
	{3, AxisCounts{3, 2, 2}},
}

func TestCartesianElemNodesScenario(t *testing.T) {
	var (
		dim    = 2
		counts = AxisCounts{2, 2, 1}
	)
	assert.Equal(t, 4, counts.NumElements(dim))
	assert.Equal(t, AxisCounts{3, 3, 1}, counts.NodesPerAxis(dim, 1))
	assert.Equal(t, 9, counts.ScalarSize(dim, 1))

	elemNodes := CartesianElemNodes(dim, counts, 1)
	want := []int32{
		0, 1, 3, 4, // element 0
		1, 2, 4, 5, // element 1
		3, 4, 6, 7, // element 2
		4, 5, 7, 8, // element 3
	}
	if diff := cmp.Diff(want, elemNodes); diff != "" {
		t.Errorf("connectivity mismatch (-want +got):\n%s", diff)
	}
	mult := multiplicity(elemNodes, 9)
	assert.Equal(t, 1, mult[0])
	assert.Equal(t, 4, mult[4])
	assert.Equal(t, 2, mult[1])
}

func TestCartesianElemNodes1D(t *testing.T) {
	// Three elements of degree 2 share their end nodes
	elemNodes := CartesianElemNodes(1, AxisCounts{3, 1, 1}, 2)
	assert.Equal(t, []int32{0, 1, 2, 2, 3, 4, 4, 5, 6}, elemNodes)
}

func TestCartesianElemNodesConformity(t *testing.T) {
	for _, grid := range testGrids {
		for degree := 1; degree <= 3; degree++ {
			var (
				dim       = grid.dim
				p         = degree + 1
				nodesElem = utils.IPow(p, dim)
				elemNodes = CartesianElemNodes(dim, grid.counts, degree)
				local     = utils.ConstIndex(dim, p)
				eXYZ      = make([]int, dim)
				locXYZ    = make([]int, dim)
				nbrXYZ    = make([]int, dim)
			)
			for e := 0; e < grid.counts.NumElements(dim); e++ {
				utils.Decompose(e, grid.counts.Used(dim), eXYZ)
				for d := 0; d < dim; d++ {
					if eXYZ[d]+1 == grid.counts[d] {
						continue
					}
					copy(nbrXYZ, eXYZ)
					nbrXYZ[d]++
					nbr := utils.Recombine(nbrXYZ, grid.counts.Used(dim))
					for loc := 0; loc < nodesElem; loc++ {
						utils.Decompose(loc, local, locXYZ)
						if locXYZ[d] != p-1 {
							continue
						}
						locXYZ[d] = 0
						nbrLoc := utils.Recombine(locXYZ, local)
						require.Equal(t, elemNodes[e*nodesElem+loc], elemNodes[nbr*nodesElem+nbrLoc],
							"dim %d counts %v degree %d element %d axis %d", dim, grid.counts, degree, e, d)
					}
				}
			}
		}
	}
}

func TestCartesianElemNodesCoverage(t *testing.T) {
	for _, grid := range testGrids {
		for degree := 1; degree <= 3; degree++ {
			var (
				dim        = grid.dim
				nodesAxis  = grid.counts.NodesPerAxis(dim, degree)
				scalarSize = grid.counts.ScalarSize(dim, degree)
				elemNodes  = CartesianElemNodes(dim, grid.counts, degree)
				gXYZ       = make([]int, dim)
			)
			require.Len(t, elemNodes, grid.counts.NumElements(dim)*utils.IPow(degree+1, dim))
			mult := multiplicity(elemNodes, scalarSize)
			for g := 0; g < scalarSize; g++ {
				// A node on an interior element boundary along an axis is seen from both sides
				want := 1
				utils.Decompose(g, nodesAxis.Used(dim), gXYZ)
				for d := 0; d < dim; d++ {
					n := gXYZ[d]
					if n%degree == 0 && n != 0 && n != nodesAxis[d]-1 {
						want *= 2
					}
				}
				require.Equal(t, want, mult[g], "dim %d counts %v degree %d node %d", dim, grid.counts, degree, g)
			}
		}
	}
}

func TestCartesianElemNodesRoundTrip(t *testing.T) {
	var (
		dim       = 3
		counts    = AxisCounts{2, 3, 2}
		degree    = 2
		p         = degree + 1
		nodesElem = utils.IPow(p, dim)
		local     = utils.ConstIndex(dim, p)
		eXYZ      = make([]int, dim)
		locXYZ    = make([]int, dim)
	)
	for e := 0; e < counts.NumElements(dim); e++ {
		utils.Decompose(e, counts.Used(dim), eXYZ)
		require.Equal(t, e, utils.Recombine(eXYZ, counts.Used(dim)))
		for loc := 0; loc < nodesElem; loc++ {
			utils.Decompose(loc, local, locXYZ)
			require.Equal(t, loc, utils.Recombine(locXYZ, local))
		}
	}
}

func TestCartesianElemNodesPreconditions(t *testing.T) {
	assert.Panics(t, func() { CartesianElemNodes(2, AxisCounts{2, 2, 1}, 0) })
	assert.Panics(t, func() { CartesianElemNodes(2, AxisCounts{2, 0, 1}, 1) })
	assert.Panics(t, func() { CartesianElemNodes(0, AxisCounts{2, 2, 1}, 1) })
	// Unused axes are never inspected
	assert.NotPanics(t, func() { CartesianElemNodes(1, AxisCounts{2, 0, 0}, 1) })
}

func TestBuildCartesianRestriction(t *testing.T) {
	{ // Sizes handed to the runtime
		bk := &fakeBackend{}
		rstr, rstrQ, err := BuildCartesianRestriction(bk, 2, AxisCounts{2, 2, 1}, 1, 3, 2)
		require.NoError(t, err)
		require.Len(t, bk.restrictions, 2)
		r := rstr.(*fakeRestriction)
		assert.Equal(t, 4, r.nelem)
		assert.Equal(t, 4, r.elemSize)
		assert.Equal(t, 3, r.ncomp)
		assert.Equal(t, 9, r.compStride)
		assert.Equal(t, 27, r.lsize)
		assert.Len(t, r.offsets, 16)
		q := rstrQ.(*fakeRestriction)
		assert.True(t, q.strided)
		assert.Equal(t, 4, q.nelem)
		assert.Equal(t, 4, q.elemSize)
		assert.Equal(t, 3*4*4, q.lsize)
		assert.True(t, q.strides.IsBackend())
	}
	{ // Failures are propagated unchanged and no handles escape
		for _, fail := range []string{"restriction", "strided"} {
			bk := &fakeBackend{fail: fail}
			rstr, rstrQ, err := BuildCartesianRestriction(bk, 3, AxisCounts{2, 2, 2}, 2, 1, 3)
			assert.True(t, errors.Is(err, errInjected), fail)
			assert.Nil(t, rstr)
			assert.Nil(t, rstrQ)
		}
	}
	assert.Panics(t, func() { BuildCartesianRestriction(&fakeBackend{}, 2, AxisCounts{2, 2, 1}, 1, 0, 2) })
	assert.Panics(t, func() { BuildCartesianRestriction(&fakeBackend{}, 2, AxisCounts{2, 2, 1}, 1, 1, 0) })
}

func TestBuildCartesianRestrictionRef(t *testing.T) {
	var (
		bk     = ref.New()
		dim    = 2
		counts = AxisCounts{2, 2, 1}
		degree = 2
		ncomp  = 2
	)
	rstr, rstrQ, err := BuildCartesianRestriction(bk, dim, counts, degree, ncomp, 3)
	require.NoError(t, err)
	scalarSize := counts.ScalarSize(dim, degree)
	assert.Equal(t, 25, scalarSize)
	assert.Equal(t, ncomp*scalarSize, rstr.LSize())
	assert.Equal(t, 4*9*ncomp, rstr.ESize())
	assert.Equal(t, 4*9*ncomp, rstrQ.LSize())

	// Gather the node numbers then scatter a vector of ones back: every node receives its
	// multiplicity and component 1 is offset by the scalar size.
	lvals := make([]float64, rstr.LSize())
	for i := range lvals {
		lvals[i] = float64(i)
	}
	l, _ := bk.NewVectorFromSlice(lvals)
	evec, _ := bk.NewVector(rstr.ESize())
	require.NoError(t, rstr.Apply(backend.NoTranspose, l, evec))
	edata, _ := evec.View()
	elemNodes := CartesianElemNodes(dim, counts, degree)
	for e := 0; e < 4; e++ {
		for comp := 0; comp < ncomp; comp++ {
			for i := 0; i < 9; i++ {
				want := float64(int(elemNodes[e*9+i]) + comp*scalarSize)
				require.Equal(t, want, edata[(e*ncomp+comp)*9+i])
			}
		}
	}
	require.NoError(t, evec.SetValue(1))
	back, _ := bk.NewVector(rstr.LSize())
	require.NoError(t, back.SetValue(0))
	require.NoError(t, rstr.Apply(backend.Transpose, evec, back))
	bdata, _ := back.View()
	mult := multiplicity(elemNodes, scalarSize)
	for comp := 0; comp < ncomp; comp++ {
		for g := 0; g < scalarSize; g++ {
			require.Equal(t, float64(mult[g]), bdata[g+comp*scalarSize], fmt.Sprintf("node %d", g))
		}
	}
	assert.Equal(t, 4., bdata[12]) // center node
}

func multiplicity(elemNodes []int32, scalarSize int) (mult []int) {
	mult = make([]int, scalarSize)
	for _, g := range elemNodes {
		mult[g]++
	}
	return
}
