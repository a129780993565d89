package lambdaselect

import "math"

// LambdaMax returns the smallest lambda beyond which tv1d.Denoise(x, lambda)
// is constant. It is computed exactly by solving A*z = b, where A is the
// (N-1)x(N-1) tridiagonal (-1, 2, -1) matrix and b is the first difference
// of x, via the Rose recurrence. Inputs of length < 2 return 0.
func LambdaMax(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}

	b := firstDifference(x)
	_, zMax := roseAlgorithm(b)

	return zMax
}

// firstDifference returns Av[i] = x[i+1] - x[i] for i in [0, len(x)-1).
func firstDifference(x []float64) []float64 {
	av := make([]float64, len(x)-1)
	for i := range av {
		av[i] = x[i+1] - x[i]
	}

	return av
}

// roseAlgorithm solves A*z = b for the tridiagonal (-1, 2, -1) matrix A and
// returns z along with max_i |z_i|.
func roseAlgorithm(b []float64) (z []float64, zMax float64) {
	nn := len(b)
	z = make([]float64, nn)

	var s float64
	for i := 0; i < nn; i++ {
		s += b[i] * float64(i+1)
	}
	s /= float64(nn + 1)

	z[nn-1] = b[nn-1] - s
	for i := nn - 2; i >= 0; i-- {
		z[i] = b[i] + z[i+1]
	}

	zMax = math.Abs(z[0])
	for i := 1; i < nn; i++ {
		z[i] += z[i-1]
		if a := math.Abs(z[i]); a > zMax {
			zMax = a
		}
	}

	return z, zMax
}
