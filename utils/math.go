package utils

import (
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// IPow is integer exponentiation for non-negative exponents.
func IPow(x, p int) (y int) {
	y = 1
	for ; p > 0; p-- {
		y *= x
	}
	return
}

// Log2Floor counts the halvings needed to bring n down to 1, zero for n <= 1.
func Log2Floor(n int64) (s int) {
	for n > 1 {
		n /= 2
		s++
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	default:
		y = math.Pow(x, float64(p))
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(pp))
	return
}
