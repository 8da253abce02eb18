package bcnum

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"
)

// FromString parses s as an optionally-signed decimal literal (digits,
// optional point, digits; either side of the point may be empty but not
// both) and installs it with a scale equal to the number of fractional
// digits actually present, capped at scale: a literal with more fractional
// digits than scale is truncated (discarding the extra digits), but one
// with fewer is not zero-padded up to scale — its scale is simply smaller.
// Any trailing character that doesn't fit the grammar, or an input with no
// digits at all, silently yields a zero installed at the requested scale;
// FromString never returns an error, per spec §7.
func FromString(s string, scale uint32) Number {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	intStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	intDigits := s[intStart:i]

	var fracDigits string
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		fracDigits = s[fracStart:i]
	}

	if i < len(s) || (intDigits == "" && fracDigits == "") {
		return New(scale)
	}

	intDigits = strings.TrimLeft(intDigits, "0")
	if uint32(len(fracDigits)) > scale {
		fracDigits = fracDigits[:scale]
	}
	resultScale := uint32(len(fracDigits))

	combined := intDigits + fracDigits
	if combined == "" {
		combined = "0"
	}
	val := new(big.Int)
	val.SetString(combined, 10)
	if neg && val.Sign() != 0 {
		val.Neg(val)
	}

	out := New(resultScale)
	out.n.value.Set(val)
	return out
}

// ToString renders n in base 10: |value|'s decimal digits with a point
// inserted scale positions from the right (padding with leading zeros if
// needed), prefixed with '-' if negative. Zero renders as "0" when
// scale==0, or "0.000...0" (scale zeros) otherwise.
func (n Number) ToString() string {
	neg := n.n.value.Sign() < 0
	digits := new(big.Int).Abs(&n.n.value).String()
	scale := n.n.scale
	if scale == 0 {
		if neg {
			return "-" + digits
		}
		return digits
	}
	d := len(digits)
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	if uint32(d) > scale {
		sb.WriteString(digits[:d-int(scale)])
		sb.WriteByte('.')
		sb.WriteString(digits[d-int(scale):])
	} else {
		sb.WriteByte('0')
		sb.WriteByte('.')
		sb.WriteString(strings.Repeat("0", int(scale)-d))
		sb.WriteString(digits)
	}
	return sb.String()
}

func (n Number) String() string {
	return n.ToString()
}

// Format implements fmt.Formatter so %s, %v, %d, and %f all print n's
// decimal text; other verbs produce the conventional error text.
func (n Number) Format(s fmt.State, ch rune) {
	switch ch {
	case 'd', 'f', 'v', 's':
		io.WriteString(s, n.ToString())
	default:
		fmt.Fprintf(s, "%%!%c(bcnum.Number=%s)", ch, n.ToString())
	}
}

// Scan implements fmt.Scanner so fmt.Sscan et al. recognize Number.
func (n *Number) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'd', 'f', 'v', 's':
	default:
		return fmt.Errorf("bcnum.Number.Scan: invalid verb %q", ch)
	}
	s.SkipSpace()
	tok, err := s.Token(false, func(r rune) bool {
		return r == '+' || r == '-' || r == '.' || (r >= '0' && r <= '9')
	})
	if err != nil {
		return err
	}
	text := string(tok)
	scale := uint32(0)
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		scale = uint32(len(text) - dot - 1)
	}
	old := *n
	*n = FromString(text, scale)
	Release(&old)
	return nil
}

// FromInt builds a scale-0 Number from a machine integer.
func FromInt(v int64) Number {
	out := New(0)
	out.n.value.SetInt64(v)
	return out
}

// ToInt truncates n to its integer part and converts it to a machine
// integer. On overflow, or when the truncated value is the most-negative
// representable int64 (which cannot be safely negated by later callers
// such as Raise), it returns 0; callers distinguish a genuine zero from
// this coercion only by inspecting the input (spec §4.10, design note §9).
func (n Number) ToInt() int64 {
	intPart, _ := truncateToInt(n)
	if !intPart.IsInt64() {
		return 0
	}
	v := intPart.Int64()
	if v == math.MinInt64 {
		return 0
	}
	return v
}

// gobVersion guards the wire format of GobEncode/GobDecode.
const gobVersion byte = 1

const scaleBytes = 4

// GobEncode implements gob.GobEncoder.
func (n Number) GobEncode() ([]byte, error) {
	buf, err := n.n.value.GobEncode()
	if err != nil {
		return nil, err
	}
	var sb [scaleBytes]byte
	s := n.n.scale
	for i := scaleBytes - 1; i >= 0; i-- {
		sb[i] = byte(s)
		s >>= 8
	}
	buf = append(buf, sb[:]...)
	buf = append(buf, gobVersion)
	return buf, nil
}

// GobDecode implements gob.GobDecoder.
func (n *Number) GobDecode(buf []byte) error {
	if len(buf) < scaleBytes+1 {
		return fmt.Errorf("bcnum.Number.GobDecode: short buffer")
	}
	if buf[len(buf)-1] != gobVersion {
		return fmt.Errorf("bcnum.Number.GobDecode: unsupported encoding version %d", buf[len(buf)-1])
	}
	l := len(buf) - scaleBytes - 1
	out := New(0)
	if err := out.n.value.GobDecode(buf[:l]); err != nil {
		return err
	}
	var scale uint32
	for i := 0; i < scaleBytes; i++ {
		scale <<= 8
		scale |= uint32(buf[l+i])
	}
	out.n.scale = scale
	old := *n
	*n = out
	Release(&old)
	return nil
}
