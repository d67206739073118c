package utils

import "fmt"

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Subset(J Index) (r Index) {
	r = make(Index, len(J))
	for j, val := range J {
		r[j] = I[val]
	}
	return
}

func (I Index) Product() (p int) {
	p = 1
	for _, val := range I {
		p *= val
	}
	return
}

func (I Index) ToInt32() (r []int32) {
	r = make([]int32, len(I))
	for i, val := range I {
		r[i] = int32(val)
	}
	return
}

/*
Decompose and Recombine convert between a flat index and its per-axis coordinates
in a mixed radix system. Axis 0 varies fastest:

	idx = c[0] + radix[0]*(c[1] + radix[1]*(c[2] + ...))

Both the element/node connectivity and the coordinate layout are defined by this pair,
so every caller must go through them rather than reimplementing the arithmetic.
*/
func Decompose(idx int, radix, coords []int) {
	for d, r := range radix {
		coords[d] = idx % r
		idx /= r
	}
}

func Recombine(coords, radix []int) (idx int) {
	stride := 1
	for d, r := range radix {
		idx += coords[d] * stride
		stride *= r
	}
	return
}

// CheckRadix verifies every radix entry is positive, the precondition for Decompose.
func CheckRadix(radix []int) (err error) {
	for d, r := range radix {
		if r < 1 {
			err = fmt.Errorf("radix entry %d must be positive, have %d", d, r)
			return
		}
	}
	return
}

func ConstIndex(N, val int) (I Index) {
	I = make(Index, N)
	for i := range I {
		I[i] = val
	}
	return
}
