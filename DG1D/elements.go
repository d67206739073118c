package DG1D

import (
	"fmt"
	"math"

	"github.com/notargets/cartmesh/utils"
	"gonum.org/v1/gonum/mat"
)

// JacobiGL returns the N+1 Gauss-Lobatto points of the Jacobi polynomial on [-1,1],
// including both endpoints.
func JacobiGL(alpha, beta float64, N int) (X utils.Vector) {
	var (
		x = make([]float64, N+1)
	)
	if N == 0 {
		panic("JacobiGL needs at least two points")
	}
	x[0] = -1
	x[N] = 1
	if N == 1 {
		X = utils.NewVector(N+1, x)
		return
	}
	xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
	copy(x[1:N], xint.Data())
	X = utils.NewVector(len(x), x)
	return
}

// JacobiGQ returns the N+1 Gauss quadrature points and weights of the Jacobi polynomial,
// using the Golub-Welsch eigenvalue formulation.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	var (
		x, w       []float64
		fac        float64
		h1, d0, d1 []float64
		VVr        *mat.Dense
	)
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{2.}
		return utils.NewVector(len(x), x), utils.NewVector(len(w), w)
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: diag(-1/2*(alpha^2-beta^2)./(h1+2)./h1)
	d0 = make([]float64, N+1)
	fac = -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := mat.NewSymDense(N+1, nil)
	for i := 0; i < N+1; i++ {
		JJ.SetSym(i, i, d0[i])
		if i < N {
			JJ.SetSym(i, i+1, d1[i])
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(nil)
	X = utils.NewVector(N+1, x)

	VVr = mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	w = make([]float64, len(x))
	copy(w, VVr.RawRowView(0))
	W = utils.NewVector(len(w), w).POW(2).Scale(gamma0(alpha, beta))
	return X, W
}

// JacobiP evaluates the normalized Jacobi polynomial of order N at each point of r.
func JacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	var (
		Nc = r.Len()
		rr = r.Data()
	)
	rg := 1. / math.Sqrt(gamma0(alpha, beta))
	pm1 := utils.ConstArray(Nc, rg)
	if N == 0 {
		return pm1
	}
	ab := alpha + beta
	rg1 := 1. / math.Sqrt(gamma1(alpha, beta))
	p0 := make([]float64, Nc)
	for i := 0; i < Nc; i++ {
		p0[i] = rg1 * ((ab+2.0)*rr[i]/2.0 + (alpha-beta)/2.0)
	}
	if N == 1 {
		return p0
	}

	a1 := alpha + 1.
	b1 := beta + 1.
	ab1 := ab + 1.
	aold := 2.0 * math.Sqrt(a1*b1/(ab+3.0)) / (ab + 2.0)
	for i := 0; i < N-1; i++ {
		ip1 := float64(i + 1)
		ip2 := ip1 + 1
		h1 := 2.0*ip1 + ab
		anew := 2.0 / (h1 + 2.0) * math.Sqrt(ip2*(ip1+ab1)*(ip1+a1)*(ip1+b1)/(h1+1.0)/(h1+3.0))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
		pn := make([]float64, Nc)
		for j := range pn {
			pn[j] = (-aold*pm1[j] + (rr[j]-bnew)*p0[j]) / anew
		}
		pm1, p0 = p0, pn
		aold = anew
	}
	p = p0
	return
}

// Vandermonde1D is the [len(R) x N+1] generalized Vandermonde matrix of the orthonormal
// Legendre basis evaluated at R.
func Vandermonde1D(N int, R utils.Vector) (V *mat.Dense) {
	V = mat.NewDense(R.Len(), N+1, nil)
	for j := 0; j < N+1; j++ {
		V.SetCol(j, JacobiP(R, 0, 0, j))
	}
	return
}

func GradJacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	if N == 0 {
		p = make([]float64, r.Len())
		return
	}
	p = JacobiP(r, alpha+1, beta+1, N-1)
	fN := float64(N)
	fac := math.Sqrt(fN * (fN + alpha + beta + 1))
	for i, val := range p {
		p[i] = val * fac
	}
	return
}

func GradVandermonde1D(r utils.Vector, N int) (Vr *mat.Dense) {
	Vr = mat.NewDense(r.Len(), N+1, nil)
	for i := 0; i < N+1; i++ {
		Vr.SetCol(i, GradJacobiP(r, 0, 0, i))
	}
	return
}

// LagrangeInterp1D returns the [len(points) x len(nodes)] matrix that interpolates nodal
// values at nodes onto points using the Lagrange polynomial through the nodes.
func LagrangeInterp1D(nodes, points utils.Vector) (B *mat.Dense, err error) {
	if B, err = lagrange1D(nodes, points, Vandermonde1D); err != nil {
		return
	}
	// A point that coincides with a node takes that node's value exactly
	for i, r := range points.Data() {
		for j, rn := range nodes.Data() {
			if math.Abs(r-rn) < utils.NODETOL {
				row := B.RawRowView(i)
				for k := range row {
					row[k] = 0
				}
				row[j] = 1
				break
			}
		}
	}
	return
}

// LagrangeGrad1D is the derivative counterpart of LagrangeInterp1D, d/dr on [-1,1].
func LagrangeGrad1D(nodes, points utils.Vector) (D *mat.Dense, err error) {
	return lagrange1D(nodes, points, func(N int, r utils.Vector) *mat.Dense {
		return GradVandermonde1D(r, N)
	})
}

func lagrange1D(nodes, points utils.Vector,
	vandermonde func(N int, r utils.Vector) *mat.Dense) (B *mat.Dense, err error) {
	var (
		N    = nodes.Len() - 1
		Vinv mat.Dense
	)
	if N < 0 || points.Len() == 0 {
		err = fmt.Errorf("interpolation needs nodes and points, have %d nodes, %d points",
			nodes.Len(), points.Len())
		return
	}
	Vn := Vandermonde1D(N, nodes)
	Vq := vandermonde(N, points)
	if err = Vinv.Inverse(Vn); err != nil {
		err = fmt.Errorf("nodal Vandermonde matrix is singular: %w", err)
		return
	}
	B = mat.NewDense(points.Len(), N+1, nil)
	B.Mul(Vq, &Vinv)
	return
}
