package transform

import "github.com/mjibson/go-dsp/fft"

// DSTI computes the type-I discrete sine transform
//
//	X[k] = 2 * sum_{n=0}^{N-1} x[n] * sin(pi*(n+1)*(k+1)/(N+1))
//
// via a real FFT of the odd extension of length 2(N+1). DST-I is its own
// inverse up to a factor 2(N+1), so the same routine serves both
// directions; the radial transform constants absorb the normalization.
func DSTI(x []float64) []float64 {
	n := len(x)
	ext := make([]float64, 2*(n+1))
	for i, v := range x {
		ext[i+1] = v
		ext[2*(n+1)-(i+1)] = -v
	}

	spec := fft.FFTReal(ext)

	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = -imag(spec[k+1])
	}
	return out
}
