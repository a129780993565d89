package tv1d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tvseg/tv1d"
)

func TestDenoise_EmptyInput(t *testing.T) {
	y := tv1d.Denoise(nil, 1.0)
	require.Len(t, y, 0)
}

func TestDenoise_ZeroLambdaIsIdentity(t *testing.T) {
	x := []float64{3, -1, 4, 1, 5, 9, 2, 6}
	y := tv1d.Denoise(x, 0)
	require.Equal(t, x, y)
}

func TestDenoise_PreservesExactStep(t *testing.T) {
	x := []float64{0, 0, 0, 10, 10, 10}
	y := tv1d.Denoise(x, 1)
	require.InDeltaSlice(t, x, y, 1e-9)
}

func TestDenoise_LargeLambdaYieldsConstantMean(t *testing.T) {
	x := []float64{1, 2, 1, 2, 1, 2, 1, 2}
	y := tv1d.Denoise(x, 1000)
	for _, v := range y {
		require.InDelta(t, 1.5, v, 1e-6)
	}
}

func TestDenoise_LengthMatchesInput(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 100} {
		x := make([]float64, n)
		for i := range x {
			x[i] = math.Sin(float64(i))
		}
		y := tv1d.Denoise(x, 0.3)
		require.Len(t, y, n)
	}
}

func TestDenoise_SingleSample(t *testing.T) {
	y := tv1d.Denoise([]float64{42}, 5)
	require.Equal(t, []float64{42}, y)
}
