package rounds

import (
	"math"
	"math/big"
)

// log2Big returns log2(p) as a float64. The exponent is split off with
// MantExp before converting, so moduli past the float64 range (>= 2^1024)
// still come out finite with full mantissa precision, which is all the
// reference formulas work at.
func log2Big(p *big.Int) float64 {
	mant := new(big.Float)
	exp := new(big.Float).SetInt(p).MantExp(mant)
	m, _ := mant.Float64()
	return float64(exp) + math.Log2(m)
}

// logBase returns log_base(x).
func logBase(base, x float64) float64 {
	return math.Log(x) / math.Log(base)
}

// ceilPos is the ceiling of x truncated to a non-negative int. Every bound
// in the security inequalities goes through this before being compared
// against a round count, so all three predicates share one rounding rule.
func ceilPos(x float64) int {
	c := int(math.Ceil(x))
	if c < 0 {
		return 0
	}
	return c
}

// minFloat returns the smallest of xs. xs is never empty here.
func minFloat(xs ...float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// maxInt returns the largest of xs. xs is never empty here.
func maxInt(xs ...int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
