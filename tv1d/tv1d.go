package tv1d

// Denoise returns the exact minimiser of
//
//	(1/2) * Σ_i (y_i - x_i)^2 + lambda * Σ_i |y_{i+1} - y_i|
//
// for the given input x and regularisation weight lambda >= 0, computed by
// Condat's single-pass algorithm. An empty input returns an empty slice.
// A lambda of 0 reproduces x exactly.
func Denoise(x []float64, lambda float64) []float64 {
	width := len(x)
	y := make([]float64, width)
	if width == 0 {
		return y
	}

	k, k0 := 0, 0 // k: current sample location, k0: start of current segment
	umin, umax := lambda, -lambda
	vmin, vmax := x[0]-lambda, x[0]+lambda
	kplus, kminus := 0, 0 // last positions where umax=-lambda, umin=lambda
	twolambda := 2.0 * lambda
	minlambda := -lambda

	for {
		for k == width-1 {
			switch {
			case umin < 0.0:
				for k0 <= kminus {
					y[k0] = vmin
					k0++
				}
				kminus = k0
				k = k0
				vmin = x[k0]
				umin = lambda
				umax = vmin + umin - vmax
			case umax > 0.0:
				for k0 <= kplus {
					y[k0] = vmax
					k0++
				}
				kplus = k0
				k = k0
				vmax = x[k0]
				umax = minlambda
				umin = vmax + umax - vmin
			default:
				vmin += umin / float64(k-k0+1)
				for k0 <= k {
					y[k0] = vmin
					k0++
				}
				return y
			}
		}

		umin += x[k+1] - vmin
		umax += x[k+1] - vmax

		switch {
		case umin < minlambda: // negative jump necessary
			for k0 <= kminus {
				y[k0] = vmin
				k0++
			}
			kplus, kminus, k = k0, k0, k0
			vmin = x[k0]
			vmax = vmin + twolambda
			umin, umax = lambda, minlambda
		case umax > lambda: // positive jump necessary
			for k0 <= kplus {
				y[k0] = vmax
				k0++
			}
			kplus, kminus, k = k0, k0, k0
			vmax = x[k0]
			vmin = vmax - twolambda
			umin, umax = lambda, minlambda
		default: // no jump, continue
			k++
			if umin >= lambda {
				vmin += (umin - lambda) / float64(k-k0+1)
				kminus = k
				umin = lambda
			}
			if umax <= minlambda {
				vmax += (umax + lambda) / float64(k-k0+1)
				kplus = k
				umax = minlambda
			}
		}
	}
}
