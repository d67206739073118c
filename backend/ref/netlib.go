//go:build netlib

package ref

import (
	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// Building with -tags netlib routes the dense basis products through the system BLAS.
func init() {
	blas64.Use(netblas.Implementation{})
}
