package bcnum

import (
	"math/big"
	"strconv"
)

const hexDigits = "0123456789ABCDEF"

// OutNum streams n's text representation in the given output base to sink,
// one byte at a time. It emits '-' first when n is negative, a single '0'
// when n is zero, and otherwise streams ToString's output verbatim when
// obase is 10. For any other base, the integer part is emitted as a stack
// of base-obase digits (most significant first) and, if n has a nonzero
// scale, a point followed by obase-digits of the fractional part bounded
// by the scale's precision.
//
// leadingZero controls only whether a bare "0" integer part is printed in
// non-base-10 output (e.g. ".5" vs "0.5"); it has no effect when obase==10,
// since ToString always includes the leading zero there.
//
// Bases above 16 print each digit as a zero-padded decimal field (see
// OutLong) preceded by a space. Reproducing spec §4.11/§9 bit-for-bit, that
// separator precedes every integer digit including the first, but only
// follows the first fractional digit onward — the asymmetry is
// intentional, not a bug, and must not be "fixed" into symmetry.
func OutNum(n Number, obase int, sink func(byte), leadingZero bool) {
	if n.IsNeg() {
		sink('-')
	}
	if n.IsZero() {
		sink('0')
		return
	}
	if obase == 10 {
		s := n.ToString()
		if len(s) > 0 && s[0] == '-' {
			s = s[1:]
		}
		for i := 0; i < len(s); i++ {
			sink(s[i])
		}
		return
	}

	abs := new(big.Int).Abs(&n.n.value)
	scale := n.n.scale
	divisor := pow10(scale)
	intPart := new(big.Int).Quo(abs, divisor)
	fracPart := new(big.Int).Rem(abs, divisor)

	base := big.NewInt(int64(obase))
	w := decimalWidth(obase - 1)

	var digits []int
	for intPart.Sign() != 0 {
		q, r := new(big.Int).QuoRem(intPart, base, new(big.Int))
		digits = append(digits, int(r.Int64()))
		intPart = q
	}
	if len(digits) == 0 {
		if leadingZero {
			emitDigit(0, obase, w, true, sink)
		}
	} else {
		for i := len(digits) - 1; i >= 0; i-- {
			emitDigit(digits[i], obase, w, true, sink)
		}
	}

	if scale > 0 {
		sink('.')
		t := big.NewInt(1)
		first := true
		for decimalDigitCount(t) <= int(scale) {
			fracPart.Mul(fracPart, base)
			d, r := new(big.Int).QuoRem(fracPart, divisor, new(big.Int))
			fracPart = r
			spaceBefore := obase > 16 && !first
			emitDigit(int(d.Int64()), obase, w, spaceBefore, sink)
			first = false
			t.Mul(t, base)
		}
	}
}

// emitDigit writes a single output-base digit d. For obase<=16, it writes
// the conventional single hex-style character. For obase>16, it writes a
// space (only if spaceBefore) followed by d as a decimal field zero-padded
// to width w.
func emitDigit(d, obase, w int, spaceBefore bool, sink func(byte)) {
	if obase <= 16 {
		sink(hexDigits[d])
		return
	}
	if spaceBefore {
		sink(' ')
	}
	OutLong(d, w, false, sink)
}

// OutLong writes v as decimal digits, zero-left-padded to at least width
// columns, optionally preceded by a single space.
func OutLong(v, width int, leadingSpace bool, sink func(byte)) {
	if leadingSpace {
		sink(' ')
	}
	s := strconv.Itoa(v)
	for i := 0; i < width-len(s); i++ {
		sink('0')
	}
	for i := 0; i < len(s); i++ {
		sink(s[i])
	}
}

// decimalWidth returns the number of decimal digits needed to print v.
func decimalWidth(v int) int {
	if v <= 0 {
		return 1
	}
	return len(strconv.Itoa(v))
}

func decimalDigitCount(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(x).String())
}
