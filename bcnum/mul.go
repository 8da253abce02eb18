package bcnum

import "math/big"

// Mul returns a*b. The output scale is
//
//	min(a.scale+b.scale, max(scale, max(a.scale, b.scale)))
//
// The exact product is computed first and then truncated (never rounded)
// down to that scale if it carries more fractional digits than requested.
func Mul(a, b Number, scale uint32) Number {
	full := a.n.scale + b.n.scale
	m := scale
	if a.n.scale > m {
		m = a.n.scale
	}
	if b.n.scale > m {
		m = b.n.scale
	}
	prodScale := full
	if m < prodScale {
		prodScale = m
	}
	prod := new(big.Int).Mul(&a.n.value, &b.n.value)
	if full > prodScale {
		prod = tdivPow10(prod, full-prodScale)
	}
	out := New(prodScale)
	out.n.value.Set(prod)
	return out
}
