package bcnum

import "math/big"

// Add returns a+b. The result scale is max(a.scale, b.scale, scaleMin); if
// that exceeds max(a.scale, b.scale), the integer result is zero-padded by
// multiplying by the corresponding power of ten.
func Add(a, b Number, scaleMin uint32) Number {
	return addsub(a, b, scaleMin, false)
}

// Sub returns a-b under the same scale rule as Add. When a.scale < b.scale,
// the smaller operand is rescaled up before subtracting so the aligned
// subtraction computes (a*10^d) - b.value rather than the reverse.
func Sub(a, b Number, scaleMin uint32) Number {
	return addsub(a, b, scaleMin, true)
}

func addsub(a, b Number, scaleMin uint32, sub bool) Number {
	s := a.n.scale
	if b.n.scale > s {
		s = b.n.scale
	}
	av := alignedValue(a, s)
	bv := alignedValue(b, s)
	res := new(big.Int)
	if sub {
		res.Sub(av, bv)
	} else {
		res.Add(av, bv)
	}
	outScale := s
	if scaleMin > s {
		res = mulPow10(res, scaleMin-s)
		outScale = scaleMin
	}
	out := New(outScale)
	out.n.value.Set(res)
	return out
}

// alignedValue returns a copy of n's significand rescaled to scale s >=
// n.scale.
func alignedValue(n Number, s uint32) *big.Int {
	if n.n.scale == s {
		return new(big.Int).Set(&n.n.value)
	}
	return mulPow10(&n.n.value, s-n.n.scale)
}
