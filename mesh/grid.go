/*
Package mesh builds structured Cartesian meshes of identical tensor-product elements on the
unit hypercube in one, two or three dimensions: balanced element counts, the conforming
element-to-node restriction, a strided quadrature-data restriction and the nodal coordinates.

All index arithmetic goes through utils.Decompose / utils.Recombine with axis 0 varying
fastest, so connectivity entries and coordinate entries name the same node.
*/
package mesh

import (
	"fmt"

	"github.com/notargets/cartmesh/utils"
)

const MaxDim = 3

// AxisCounts is the number of elements along each axis; axes at or beyond dim stay 1.
type AxisCounts [MaxDim]int

func (ac AxisCounts) Used(dim int) []int {
	return ac[:dim]
}

// NumElements is the product of the counts over the used axes.
func (ac AxisCounts) NumElements(dim int) int {
	return utils.Index(ac.Used(dim)).Product()
}

// NodesPerAxis is the number of global 1-D nodes along each used axis. Neighboring elements
// share their boundary node, so each axis has counts*degree+1 nodes. Unused axes are 1.
func (ac AxisCounts) NodesPerAxis(dim, degree int) (nodes AxisCounts) {
	nodes = AxisCounts{1, 1, 1}
	for d := 0; d < dim; d++ {
		nodes[d] = ac[d]*degree + 1
	}
	return
}

// ScalarSize is the number of distinct global nodes for one field component.
func (ac AxisCounts) ScalarSize(dim, degree int) int {
	return ac.NodesPerAxis(dim, degree).NumElements(dim)
}

func (ac AxisCounts) String() string {
	return fmt.Sprintf("[%d, %d, %d]", ac[0], ac[1], ac[2])
}

func checkDim(dim int) {
	if dim < 1 || dim > MaxDim {
		panic(fmt.Errorf("dimension must be 1, 2 or 3, have %d", dim))
	}
}

func checkDegree(name string, degree int) {
	if degree < 1 {
		panic(fmt.Errorf("%s must be at least 1, have %d", name, degree))
	}
}

func checkCounts(dim int, counts AxisCounts) {
	if err := utils.CheckRadix(counts.Used(dim)); err != nil {
		panic(fmt.Errorf("element counts %v: %w", counts, err))
	}
}
