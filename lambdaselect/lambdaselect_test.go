package lambdaselect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tvseg/lambdaselect"
	"github.com/katalvlaran/tvseg/tv1d"
)

func TestLambdaMax_ShortInput(t *testing.T) {
	require.Equal(t, 0.0, lambdaselect.LambdaMax(nil))
	require.Equal(t, 0.0, lambdaselect.LambdaMax([]float64{1}))
}

func TestLambdaMax_ConstantInputIsZero(t *testing.T) {
	x := []float64{5, 5, 5, 5, 5}
	require.Equal(t, 0.0, lambdaselect.LambdaMax(x))
}

func TestLambdaMax_KnownSequence(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	got := lambdaselect.LambdaMax(x)
	require.InDelta(t, 1.4, got, 0.05)
}

func TestLambdaMax_NonNegative(t *testing.T) {
	x := []float64{3, -7, 2, 9, -1, 4}
	require.GreaterOrEqual(t, lambdaselect.LambdaMax(x), 0.0)
}

func TestLambdaMax_MakesDenoiseConstant(t *testing.T) {
	x := []float64{1, 9, 2, 8, 3, 7, 4, 6, 5}
	lmax := lambdaselect.LambdaMax(x)
	y := tv1d.Denoise(x, lmax*1.5)
	for i := 1; i < len(y); i++ {
		require.InDelta(t, y[0], y[i], 1e-6)
	}
}

func TestLambdaOpt_ZeroOnDegenerateInput(t *testing.T) {
	require.Equal(t, 0.0, lambdaselect.LambdaOpt(nil, 1.0, lambdaselect.DefaultOptions()))
	require.Equal(t, 0.0, lambdaselect.LambdaOpt([]float64{1, 2, 3}, 0, lambdaselect.DefaultOptions()))
}

func TestLambdaOpt_WithinLambdaMaxRange(t *testing.T) {
	x := []float64{1, 9, 2, 8, 3, 7, 4, 6, 5, 1, 9, 2, 8}
	lmax := lambdaselect.LambdaMax(x)
	got := lambdaselect.LambdaOpt(x, lmax, lambdaselect.DefaultOptions())
	require.GreaterOrEqual(t, got, 0.0)
	require.LessOrEqual(t, got, lmax)
}

func TestLambdaOpt_Bisection(t *testing.T) {
	x := []float64{1, 9, 2, 8, 3, 7, 4, 6, 5, 1, 9, 2, 8}
	lmax := lambdaselect.LambdaMax(x)
	opts := lambdaselect.Options{Method: lambdaselect.Bisection, MaxIterations: 10}
	got := lambdaselect.LambdaOpt(x, lmax, opts)
	require.GreaterOrEqual(t, got, 0.0)
	require.LessOrEqual(t, got, lmax)
}
