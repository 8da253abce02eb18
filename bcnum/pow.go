package bcnum

import (
	"math"
	"math/big"
)

// Raise returns base^expo truncated to scale digits after the point. Only
// the integer part of expo is used; a nonzero fractional part triggers a
// ScaleIgnored warning via diag (falling back to the sink InitNumbers
// installed, via Config.Diagnostics/WithDiagnostics, if diag is nil) and is
// truncated away. An exponent whose integer part does not fit a machine
// int, or is the most-negative int64 (whose negation overflows), fails with
// ErrExponentTooLarge, also reported through diag.Error.
func Raise(base, expo Number, scale uint32, diag Diagnostics) (Number, error) {
	diag = diagOrGlobal(diag)

	intPart, hadFraction := truncateToInt(expo)
	if hadFraction {
		diag.Warn("raise", "exponent has a nonzero fractional part; truncated to its integer part")
	}
	if !intPart.IsInt64() || intPart.Int64() == math.MinInt64 {
		diag.Error("raise", "exponent does not fit in a machine integer")
		return Number{}, wrapErr(ErrExponentTooLarge, "raise")
	}
	e := intPart.Int64()

	if e == 0 {
		return One.Copy(), nil
	}
	if e > 0 {
		return raisePositive(base, e, scale), nil
	}
	pos := raisePositive(base, -e, scale)
	out, err := Divide(One, pos, scale)
	Release(&pos)
	if err != nil {
		return Number{}, wrapErr(err, "raise")
	}
	return out, nil
}

// raisePositive implements spec §4.7's e>0 branch: an exact integer power
// followed by a single rescale to the target precision.
func raisePositive(base Number, e int64, scale uint32) Number {
	baseScale := int64(base.n.scale)
	target := baseScale * e
	m := int64(scale)
	if baseScale > m {
		m = baseScale
	}
	rscale := target
	if m < rscale {
		rscale = m
	}
	p := new(big.Int).Exp(&base.n.value, big.NewInt(e), nil)
	diff := target - rscale
	switch {
	case diff > 0:
		p = tdivPow10(p, uint32(diff))
	case diff < 0:
		p = mulPow10(p, uint32(-diff))
	}
	out := New(uint32(rscale))
	out.n.value.Set(p)
	return out
}

// RaiseMod returns base^expo mod m at scale scale, using binary
// exponentiation built from the package's own Mul and Modulo (spec §4.8).
// It fails with ErrDivideByZero when m is zero and ErrNegativeExponent when
// expo is negative. A nonzero scale on base, expo, or m triggers a
// ScaleIgnored warning via diag; expo is truncated to its integer part
// regardless.
func RaiseMod(base, expo, m Number, scale uint32, diag Diagnostics) (Number, error) {
	diag = diagOrGlobal(diag)

	if m.n.value.Sign() == 0 {
		return Number{}, wrapErr(ErrDivideByZero, "raisemod")
	}
	if expo.IsNeg() {
		return Number{}, wrapErr(ErrNegativeExponent, "raisemod")
	}
	if base.n.scale != 0 || expo.n.scale != 0 || m.n.scale != 0 {
		diag.Warn("raisemod", "base, exponent, or modulus has a nonzero scale; exponent truncated to its integer part")
	}

	intExpo, _ := truncateToInt(expo)
	rscale := scale
	if base.n.scale > rscale {
		rscale = base.n.scale
	}

	power := base.Copy()
	exponent := New(0)
	exponent.n.value.Set(intExpo)
	acc := One.Copy()

	for !exponent.IsZero() {
		q, r, _ := Divmod(exponent, Two, 0, true) // Two is never zero
		Release(&exponent)
		exponent = q

		if r.n.value.Sign() != 0 {
			prod := Mul(acc, power, rscale)
			Release(&acc)
			modded, err := Modulo(prod, m, scale)
			Release(&prod)
			if err != nil {
				Release(&power)
				Release(&exponent)
				Release(&r)
				return Number{}, wrapErr(err, "raisemod")
			}
			acc = modded
		}
		Release(&r)

		sq := Mul(power, power, rscale)
		Release(&power)
		moddedP, err := Modulo(sq, m, scale)
		Release(&sq)
		if err != nil {
			Release(&exponent)
			Release(&acc)
			return Number{}, wrapErr(err, "raisemod")
		}
		power = moddedP
	}

	Release(&power)
	Release(&exponent)
	return acc, nil
}
