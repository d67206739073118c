package mesh

import (
	"github.com/notargets/cartmesh/utils"
)

/*
CartesianMeshSize picks per-axis element counts for a target number of degrees of freedom,
using problemSize ~ numElem * degree^dim.

The element count is rounded down to 2^s and the exponent s is spread over the used axes as
evenly as possible. The s mod dim leftover exponents go to the lowest numbered axes first, so
for s=5, dim=3 the counts are [4, 4, 2].
*/
func CartesianMeshSize(dim, degree int, problemSize int64) (counts AxisCounts) {
	checkDim(dim)
	checkDegree("solution degree", degree)
	var (
		numElem = problemSize / int64(utils.IPow(degree, dim))
		s       = utils.Log2Floor(numElem)
		r       = s % dim
	)
	counts = AxisCounts{1, 1, 1}
	for d := 0; d < dim; d++ {
		sd := s / dim
		if d < r {
			sd++
		}
		counts[d] = 1 << sd
	}
	return
}
