// Package analysis extracts summary quantities from recorded
// trajectories.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// EstimatePeriod returns the dominant oscillation period of a uniformly
// sampled signal, in the same unit as dt. The signal is detrended by
// removing its mean before the FFT and the strongest bin above DC wins.
// Resolution is one FFT bin, so short captures give coarse estimates.
// Returns 0 for fewer than four samples, a non-positive dt, or a flat
// spectrum.
func EstimatePeriod(samples []float64, dt float64) float64 {
	n := len(samples)
	if n < 4 || dt <= 0 {
		return 0
	}

	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(n)

	data := make([]float64, n)
	for i, v := range samples {
		data[i] = v - mean
	}

	spectrum := fft.FFTReal(data)
	best, bestMag := 0, 0.0
	for k := 1; k <= n/2; k++ {
		mag := cmplx.Abs(spectrum[k])
		if mag > bestMag {
			best, bestMag = k, mag
		}
	}
	if best == 0 || bestMag == 0 {
		return 0
	}
	return float64(n) * dt / float64(best)
}
