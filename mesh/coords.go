package mesh

import (
	"errors"
	"fmt"

	"github.com/notargets/cartmesh/backend"
	"github.com/notargets/cartmesh/utils"
)

var ErrMeshSize = errors.New("mesh: coordinate vector too short")

// LobattoNodes returns the degree+1 Gauss-Lobatto points on [0,1], obtained by interpolating
// the corner values {0, 1} of a linear element onto Gauss-Lobatto points with one basis apply.
func LobattoNodes(bk backend.Backend, degree int) (nodes []float64, err error) {
	checkDegree("degree", degree)
	var (
		p                  = degree + 1
		basis              backend.Basis
		corners, nodesFull backend.Vector
		view               []float64
	)
	if basis, err = bk.NewLagrangeBasis1D(1, 2, p, backend.GaussLobatto); err != nil {
		return nil, fmt.Errorf("building Lobatto basis of %d points: %w", p, err)
	}
	if corners, err = bk.NewVectorFromSlice([]float64{0, 1}); err != nil {
		return nil, err
	}
	if nodesFull, err = bk.NewVector(p); err != nil {
		return nil, err
	}
	if err = basis.Apply(1, backend.NoTranspose, backend.Interp, corners, nodesFull); err != nil {
		return nil, fmt.Errorf("interpolating Lobatto points: %w", err)
	}
	if view, err = nodesFull.View(); err != nil {
		return nil, err
	}
	nodes = make([]float64, p)
	copy(nodes, view)
	return
}

/*
CartesianCoords places every global node on the unit hypercube. Entry g + scalarSize*d is the
axis d coordinate of node g; along each axis the node at 1-D position n lies in element
n/(p-1) at local node n%(p-1). The last node of an axis is reached as local node 0 of the
element one past the end, which puts it at exactly 1.
*/
func CartesianCoords(dim int, counts AxisCounts, degree int, nodes1D []float64) (coords []float64) {
	checkDim(dim)
	checkDegree("mesh degree", degree)
	checkCounts(dim, counts)
	var (
		p          = degree + 1
		nodesAxis  = counts.NodesPerAxis(dim, degree)
		nodeRadix  = nodesAxis.Used(dim)
		scalarSize = counts.ScalarSize(dim, degree)
		gXYZ       = make([]int, dim)
	)
	if len(nodes1D) < p-1 {
		panic(fmt.Errorf("need %d 1-D nodes for degree %d, have %d", p-1, degree, len(nodes1D)))
	}
	coords = make([]float64, scalarSize*dim)
	for g := 0; g < scalarSize; g++ {
		utils.Decompose(g, nodeRadix, gXYZ)
		for d := 0; d < dim; d++ {
			d1D := gXYZ[d]
			coords[g+scalarSize*d] = (float64(d1D/(p-1)) + nodes1D[d1D%(p-1)]) / float64(counts[d])
		}
	}
	return
}

// CartesianMeshCoords allocates a coordinate vector of meshSize entries, zeroes it and fills
// the first ScalarSize*dim entries with the node coordinates of the mesh.
func CartesianMeshCoords(bk backend.Backend, dim int, counts AxisCounts,
	meshDegree, meshSize int) (meshCoords backend.Vector, err error) {
	checkDim(dim)
	checkDegree("mesh degree", meshDegree)
	checkCounts(dim, counts)
	var (
		nodes1D []float64
		view    []float64
		need    = counts.ScalarSize(dim, meshDegree) * dim
		vec     backend.Vector
	)
	if meshSize < need {
		return nil, fmt.Errorf("mesh size %d, need %d: %w", meshSize, need, ErrMeshSize)
	}
	if nodes1D, err = LobattoNodes(bk, meshDegree); err != nil {
		return
	}
	if vec, err = bk.NewVector(meshSize); err != nil {
		return nil, fmt.Errorf("coordinate vector: %w", err)
	}
	if err = vec.SetValue(0); err != nil {
		return nil, err
	}
	if view, err = vec.View(); err != nil {
		return nil, err
	}
	copy(view, CartesianCoords(dim, counts, meshDegree, nodes1D))
	meshCoords = vec
	return
}
