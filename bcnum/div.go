package bcnum

import "math/big"

// Divide returns a/b truncated toward zero to scale digits after the
// point. It fails with ErrDivideByZero when b is zero, in which case out
// is the zero Number and must be ignored.
func Divide(a, b Number, scale uint32) (Number, error) {
	if b.n.value.Sign() == 0 {
		return Number{}, wrapErr(ErrDivideByZero, "divide")
	}
	k := int64(b.n.scale) + int64(scale) - int64(a.n.scale)
	var n *big.Int
	switch {
	case k > 0:
		n = mulPow10(&a.n.value, uint32(k))
	case k < 0:
		n = tdivPow10(&a.n.value, uint32(-k))
	default:
		n = new(big.Int).Set(&a.n.value)
	}
	q := new(big.Int).Quo(n, &b.n.value)
	out := New(scale)
	out.n.value.Set(q)
	return out, nil
}

// Divmod computes the truncating quotient and remainder of a/b at scale
// scale. The remainder is returned at r_scale = max(a.scale, b.scale+scale)
// and has the same sign as a, since Divide truncates toward zero. The
// quotient is returned only when wantQuotient is true; otherwise q is the
// zero Number. Both fail with ErrDivideByZero when b is zero.
func Divmod(a, b Number, scale uint32, wantQuotient bool) (q, r Number, err error) {
	if b.n.value.Sign() == 0 {
		return Number{}, Number{}, wrapErr(ErrDivideByZero, "divmod")
	}
	rScale := a.n.scale
	if b.n.scale+scale > rScale {
		rScale = b.n.scale + scale
	}
	t, _ := Divide(a, b, scale) // b != 0 already checked above
	if wantQuotient {
		q = t.Copy()
	}
	prod := Mul(t, b, rScale)
	Release(&t)
	r = Sub(a, prod, rScale)
	Release(&prod)
	return q, r, nil
}

// Modulo returns a mod b at scale scale: the remainder of Divmod with the
// quotient discarded.
func Modulo(a, b Number, scale uint32) (Number, error) {
	_, r, err := Divmod(a, b, scale, false)
	if err != nil {
		return Number{}, err
	}
	return r, nil
}
