package bcnum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSqrtScenarioS4(t *testing.T) {
	slot := FromString("2", 0)
	ok := Sqrt(&slot, 20)
	require.True(t, ok)
	require.Equal(t, "1.41421356237309504880", slot.ToString())
	Release(&slot)
}

func TestSqrtZero(t *testing.T) {
	slot := FromInt(0)
	ok := Sqrt(&slot, 10)
	require.True(t, ok)
	require.True(t, slot.IsZero())
	Release(&slot)
}

func TestSqrtOne(t *testing.T) {
	slot := FromInt(1)
	ok := Sqrt(&slot, 10)
	require.True(t, ok)
	require.Equal(t, "1", slot.ToString())
	Release(&slot)
}

func TestSqrtPerfectSquare(t *testing.T) {
	slot := FromString("144", 0)
	ok := Sqrt(&slot, 0)
	require.True(t, ok)
	require.Equal(t, "12", slot.ToString())
	Release(&slot)
}

func TestSqrtNegativeFails(t *testing.T) {
	slot := FromString("-4", 0)
	ok := Sqrt(&slot, 5)
	require.False(t, ok)
	require.Equal(t, "-4", slot.ToString(), "slot is left untouched on failure")
	Release(&slot)
}

// TestSqrtSquaredApproximatesOriginal checks spec §8 property 10: for
// non-negative x, the root r computed at rscale digits satisfies
// r^2 <= x < (r + 10^-rscale)^2.
func TestSqrtSquaredApproximatesOriginal(t *testing.T) {
	cases := []string{"2", "10", "0.5", "1000000"}
	const scale = 10
	for _, c := range cases {
		x := FromString(c, 4)
		root := x.Clone()
		ok := Sqrt(&root, scale)
		require.True(t, ok)

		squared := Mul(root, root, 2*scale)
		ulp := FromString("0.0000000001", scale) // 10^-scale
		next := Add(root, ulp, 0)
		nextSquared := Mul(next, next, 2*scale)
		require.True(t, Compare(squared, x, true) <= 0, "sqrt(%s)^2 exceeds %s", c, c)
		require.True(t, Compare(x, nextSquared, true) < 0, "sqrt(%s) is more than one ULP below the true root", c)

		Release(&x)
		Release(&root)
		Release(&squared)
		Release(&ulp)
		Release(&next)
		Release(&nextSquared)
	}
}
