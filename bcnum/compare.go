package bcnum

import "math/big"

// Compare returns -1, 0, or +1 as a compares less than, equal to, or
// greater than b. The operand with the smaller scale is rescaled up (never
// the larger one down) so no information is lost. When useSign is false,
// the comparison is performed on |a| and |b|.
func Compare(a, b Number, useSign bool) int {
	as, bs := a.n.scale, b.n.scale
	var av, bv *big.Int
	switch {
	case as > bs:
		av = &a.n.value
		bv = mulPow10(&b.n.value, as-bs)
	case as < bs:
		av = mulPow10(&a.n.value, bs-as)
		bv = &b.n.value
	default:
		av = &a.n.value
		bv = &b.n.value
	}
	if useSign {
		return av.Cmp(bv)
	}
	return new(big.Int).Abs(av).Cmp(new(big.Int).Abs(bv))
}
