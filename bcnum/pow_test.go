package bcnum

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRaiseScenarioS5Integer(t *testing.T) {
	base := FromString("2", 0)
	expo := FromString("10", 0)
	out, err := Raise(base, expo, 0, nil)
	require.NoError(t, err)
	require.Equal(t, "1024", out.ToString())
	Release(&base)
	Release(&expo)
	Release(&out)
}

func TestRaiseScenarioS5Negative(t *testing.T) {
	base := FromString("2", 0)
	expo := FromString("-2", 0)
	out, err := Raise(base, expo, 6, nil)
	require.NoError(t, err)
	require.Equal(t, "0.250000", out.ToString())
	Release(&base)
	Release(&expo)
	Release(&out)
}

func TestRaiseZeroExponentIsOne(t *testing.T) {
	base := FromString("123.456", 3)
	expo := FromInt(0)
	out, err := Raise(base, expo, 0, nil)
	require.NoError(t, err)
	require.Equal(t, "1", out.ToString())
	Release(&base)
	Release(&expo)
	Release(&out)
}

func TestRaiseFractionalExponentTruncatedWithWarning(t *testing.T) {
	var warned []string
	diag := recordingDiagnostics{warn: &warned}

	base := FromString("2", 0)
	expo := FromString("3.7", 1)
	out, err := Raise(base, expo, 0, diag)
	require.NoError(t, err)
	require.Equal(t, "8", out.ToString())
	require.NotEmpty(t, warned)
	Release(&base)
	Release(&expo)
	Release(&out)
}

func TestRaiseExponentTooLargeFails(t *testing.T) {
	base := FromString("2", 0)
	expo := FromString("99999999999999999999", 0)
	_, err := Raise(base, expo, 0, nil)
	require.True(t, errors.Is(err, ErrExponentTooLarge))
	Release(&base)
	Release(&expo)
}

func TestRaiseModScenarioS7(t *testing.T) {
	base := FromString("4", 0)
	expo := FromString("13", 0)
	m := FromString("497", 0)
	out, err := RaiseMod(base, expo, m, 0, nil)
	require.NoError(t, err)
	require.Equal(t, "445", out.ToString())
	Release(&base)
	Release(&expo)
	Release(&m)
	Release(&out)
}

func TestRaiseModNegativeExponentFails(t *testing.T) {
	base := FromString("4", 0)
	expo := FromString("-1", 0)
	m := FromString("497", 0)
	_, err := RaiseMod(base, expo, m, 0, nil)
	require.True(t, errors.Is(err, ErrNegativeExponent))
	Release(&base)
	Release(&expo)
	Release(&m)
}

func TestRaiseModZeroModulusFails(t *testing.T) {
	base := FromString("4", 0)
	expo := FromString("13", 0)
	m := FromInt(0)
	_, err := RaiseMod(base, expo, m, 0, nil)
	require.True(t, errors.Is(err, ErrDivideByZero))
	Release(&base)
	Release(&expo)
	Release(&m)
}

// TestRaiseFallsBackToConfiguredDiagnostics checks that passing nil as
// Raise's diag parameter routes warnings to the sink InitNumbers installed
// via Config.Diagnostics/WithDiagnostics, not silently to DefaultDiagnostics.
func TestRaiseFallsBackToConfiguredDiagnostics(t *testing.T) {
	var warned []string
	InitNumbers(NewConfig(WithDiagnostics(recordingDiagnostics{warn: &warned})))
	defer InitNumbers(DefaultConfig()) // restore for subsequent tests

	base := FromString("2", 0)
	expo := FromString("3.7", 1)
	out, err := Raise(base, expo, 0, nil)
	require.NoError(t, err)
	require.Equal(t, "8", out.ToString())
	require.NotEmpty(t, warned, "nil diag should fall back to the configured global sink")
	Release(&base)
	Release(&expo)
	Release(&out)
}

// recordingDiagnostics captures Warn calls for assertions; Error calls are
// recorded the same way but no test here triggers one.
type recordingDiagnostics struct {
	warn *[]string
}

func (r recordingDiagnostics) Warn(op, msg string) {
	*r.warn = append(*r.warn, op+": "+msg)
}

func (r recordingDiagnostics) Error(op, msg string) {
	*r.warn = append(*r.warn, op+" [error]: "+msg)
}
