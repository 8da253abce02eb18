package bcnum

import "math/big"

// defaultPow10CacheSize matches the teacher's 64-entry exp10cache
// (gopkg.in/inf.v0, dec.go).
const defaultPow10CacheSize = 64

var pow10Cache []big.Int

func buildPow10Cache(n int) []big.Int {
	if n < 1 {
		n = 1
	}
	c := make([]big.Int, n)
	c[0].SetInt64(1)
	for i := 1; i < n; i++ {
		c[i].Mul(&c[i-1], big.NewInt(10))
	}
	return c
}

func init() {
	pow10Cache = buildPow10Cache(defaultPow10CacheSize)
}

// pow10 returns 10^n, served from the cache when possible.
func pow10(n uint32) *big.Int {
	if int(n) < len(pow10Cache) {
		return &pow10Cache[n]
	}
	return new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(uint64(n)), nil)
}

// mulPow10 returns x * 10^n, the only "scale up" rescale primitive used
// throughout the package (spec §9: "centralize rescale in one helper").
func mulPow10(x *big.Int, n uint32) *big.Int {
	if n == 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Mul(x, pow10(n))
}

// tdivPow10 returns x truncated-divided by 10^n (truncation toward zero,
// matching math/big.Int.Quo), the only "scale down" rescale primitive.
func tdivPow10(x *big.Int, n uint32) *big.Int {
	if n == 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Quo(x, pow10(n))
}

// truncateToInt splits n into its truncated integer part and a flag
// reporting whether any nonzero fractional digit was discarded. Used by
// Raise/RaiseMod (which operate on integer exponents) and by ToInt.
func truncateToInt(n Number) (intPart *big.Int, hadFraction bool) {
	if n.n.scale == 0 {
		return new(big.Int).Set(&n.n.value), false
	}
	q, r := new(big.Int).QuoRem(&n.n.value, pow10(n.n.scale), new(big.Int))
	return q, r.Sign() != 0
}
