package bcnum

import "math/big"

// Sqrt replaces *slot with floor(sqrt(*slot)) computed to rscale =
// max(scale, slot.scale) digits after the point, and returns true on
// success. It returns false without modifying *slot when *slot is
// negative — the ErrNegativeRadicand condition, surfaced per spec §7 as
// this bool rather than a returned error. Zero and one are fast-pathed to
// the Zero and One singletons. The last digit may be off by at most one
// ULP (10^-rscale) in edge cases, per spec §4.9.
func Sqrt(slot *Number, scale uint32) bool {
	x := *slot
	if x.n.value.Sign() < 0 {
		return false
	}
	if x.n.value.Sign() == 0 {
		old := *slot
		*slot = Zero.Copy()
		Release(&old)
		return true
	}
	if Compare(x, One, true) == 0 {
		old := *slot
		*slot = One.Copy()
		Release(&old)
		return true
	}

	rscale := scale
	if x.n.scale > rscale {
		rscale = x.n.scale
	}
	k := int64(2*rscale) - int64(x.n.scale)
	var n *big.Int
	switch {
	case k > 0:
		n = mulPow10(&x.n.value, uint32(k))
	case k < 0:
		n = tdivPow10(&x.n.value, uint32(-k))
	default:
		n = new(big.Int).Set(&x.n.value)
	}

	r := new(big.Int).Sqrt(n)
	out := New(rscale)
	out.n.value.Set(r)
	old := *slot
	*slot = out
	Release(&old)
	return true
}
