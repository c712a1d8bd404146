package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPV_ZeroRateIsPlainSum(t *testing.T) {
	flows := []float64{-100, 30, 30, 30, 30}
	assert.InDelta(t, 20, NPV(0, flows), 1e-12)
}

func TestNPV_Discounting(t *testing.T) {
	// -100 now, +110 in a year, at 10%: exactly break-even.
	assert.InDelta(t, 0, NPV(0.10, []float64{-100, 110}), 1e-9)
}

func TestIRR_KnownRoot(t *testing.T) {
	// 60/(1+x) + 60/(1+x)^2 = 100 has the closed-form root x ≈ 0.130662.
	rate, err := IRR([]float64{-100, 60, 60})
	require.NoError(t, err)
	assert.InDelta(t, 0.130662, rate, 1e-4)
}

func TestIRR_ZeroRoot(t *testing.T) {
	rate, err := IRR([]float64{-100, 50, 50})
	require.NoError(t, err)
	assert.InDelta(t, 0, rate, 1e-6)
}

func TestIRR_NoSignChange(t *testing.T) {
	_, err := IRR([]float64{100, 50})
	require.ErrorIs(t, err, ErrNoRoot)

	_, err = IRR([]float64{-100, -50})
	require.ErrorIs(t, err, ErrNoRoot)

	_, err = IRR(nil)
	require.ErrorIs(t, err, ErrNoRoot)
}

func TestIRR_Deterministic(t *testing.T) {
	flows := []float64{-200000, 40000, 54875, 24750, 24627, 24504}
	a, errA := IRR(flows)
	b, errB := IRR(flows)
	require.NoError(t, errA)
	require.NoError(t, errB)
	require.Equal(t, a, b)
}
