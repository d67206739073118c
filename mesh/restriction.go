package mesh

import (
	"fmt"

	"github.com/notargets/cartmesh/backend"
	"github.com/notargets/cartmesh/utils"
)

/*
CartesianElemNodes returns the element-to-global-node map of a conforming mesh, with
entry e*p^dim + loc holding the global node of local node loc in element e, p = degree+1.

	elem:         0             1                 n-1
	       |---*-...-*---|---*-...-*---|- ... -|--...--|
	nodes: 0   1    p-1  p  p+1       2*p             n*p

Along axis d the global node is elem[d]*(p-1) + loc[d]; the last local node of one element and
the first of its neighbor therefore coincide.
*/
func CartesianElemNodes(dim int, counts AxisCounts, degree int) (elemNodes []int32) {
	checkDim(dim)
	checkDegree("degree", degree)
	checkCounts(dim, counts)
	var (
		p          = degree + 1
		nodesElem  = utils.IPow(p, dim)
		numElem    = counts.NumElements(dim)
		elemRadix  = counts.Used(dim)
		nodesAxis  = counts.NodesPerAxis(dim, degree)
		nodeRadix  = nodesAxis.Used(dim)
		localRadix = utils.ConstIndex(dim, p)
		eXYZ       = make([]int, dim)
		locXYZ     = make([]int, dim)
		gXYZ       = make([]int, dim)
	)
	elemNodes = make([]int32, numElem*nodesElem)
	for e := 0; e < numElem; e++ {
		utils.Decompose(e, elemRadix, eXYZ)
		offset := e * nodesElem
		for loc := 0; loc < nodesElem; loc++ {
			utils.Decompose(loc, localRadix, locXYZ)
			for d := 0; d < dim; d++ {
				gXYZ[d] = eXYZ[d]*(p-1) + locXYZ[d]
			}
			elemNodes[offset+loc] = int32(utils.Recombine(gXYZ, nodeRadix))
		}
	}
	return
}

/*
BuildCartesianRestriction creates the solution/coordinate restriction over the shared global
nodes and the strided restriction for quadrature-point data, which is element local and
needs no connectivity. Backend failures are returned wrapped; nothing is returned on failure.
*/
func BuildCartesianRestriction(bk backend.Backend, dim int, counts AxisCounts,
	degree, ncomp, nqpts int) (rstr, rstrQData backend.ElemRestriction, err error) {
	checkDim(dim)
	checkDegree("degree", degree)
	checkDegree("number of components", ncomp)
	checkDegree("number of quadrature points", nqpts)
	checkCounts(dim, counts)
	var (
		p          = degree + 1
		nodesElem  = utils.IPow(p, dim)
		qptsElem   = utils.IPow(nqpts, dim)
		numElem    = counts.NumElements(dim)
		scalarSize = counts.ScalarSize(dim, degree)
		elemNodes  = CartesianElemNodes(dim, counts, degree)
	)
	if rstr, err = bk.NewElemRestriction(numElem, nodesElem, ncomp, scalarSize,
		ncomp*scalarSize, elemNodes); err != nil {
		err = fmt.Errorf("mesh restriction (%d elements of %d nodes): %w", numElem, nodesElem, err)
		return nil, nil, err
	}
	if rstrQData, err = bk.NewStridedElemRestriction(numElem, qptsElem, ncomp,
		ncomp*qptsElem*numElem, backend.StridesBackend); err != nil {
		err = fmt.Errorf("quadrature data restriction (%d elements of %d points): %w", numElem, qptsElem, err)
		return nil, nil, err
	}
	return
}
