package bcnum

import "github.com/pkg/errors"

// Sentinel error kinds, matching spec §7. Callers recover the kind with
// errors.Is against these values even after Divide/Divmod/Modulo/RaiseMod
// wrap them with operation context via github.com/pkg/errors.
//
// ErrNegativeRadicand is the one kind never returned as an error value: per
// spec §7 it is "surfaced as 0", i.e. Sqrt's bool return, not a Go error —
// see Sqrt's doc comment. It is still named here so the sentinel set matches
// the full kind list spec §7 defines.
var (
	ErrDivideByZero     = errors.New("bcnum: divide by zero")
	ErrNegativeExponent = errors.New("bcnum: negative exponent")
	ErrNegativeRadicand = errors.New("bcnum: negative radicand")
	ErrExponentTooLarge = errors.New("bcnum: exponent too large")
)

func wrapErr(cause error, op string) error {
	return errors.Wrapf(cause, "bcnum: %s", op)
}
