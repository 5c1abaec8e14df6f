package ma

import (
	"fmt"
	"math"

	"github.com/quantward/tasignal/pkg/series"
)

// mamaWarmUp is the bar count before the adaptive pair stabilizes; outputs
// before it are undefined.
const mamaWarmUp = 32

const rad2Deg = 180 / math.Pi

// MAMA computes the MESA adaptive moving average and its following average
// (FAMA). A Hilbert-transform discriminator measures the dominant cycle's
// phase rate; the smoothing constant tracks it between slowLimit and
// fastLimit, so the average hugs price in trends and flattens in cycles.
func MAMA(s series.Series, fastLimit, slowLimit float64) (series.Series, series.Series, error) {
	if fastLimit <= 0 || slowLimit <= 0 || slowLimit > fastLimit {
		return nil, nil, fmt.Errorf("invalid MAMA limits: fast %v, slow %v", fastLimit, slowLimit)
	}
	if len(s) < mamaWarmUp+1 {
		return nil, nil, fmt.Errorf("%w: MAMA needs %d samples, have %d", series.ErrInsufficientData, mamaWarmUp+1, len(s))
	}

	n := len(s)
	smooth := make([]float64, n)
	detrender := make([]float64, n)
	i1 := make([]float64, n)
	q1 := make([]float64, n)
	i2 := make([]float64, n)
	q2 := make([]float64, n)
	re := make([]float64, n)
	im := make([]float64, n)
	periods := make([]float64, n)
	phases := make([]float64, n)
	mama := make(series.Series, n)
	fama := make(series.Series, n)

	// Weighted 4-bar price smoother feeding the discriminator.
	for i := 0; i < 3 && i < n; i++ {
		smooth[i] = s[i]
	}
	for i := 3; i < n; i++ {
		smooth[i] = (4*s[i] + 3*s[i-1] + 2*s[i-2] + s[i-3]) / 10
	}

	hilbert := func(src []float64, i int, adj float64) float64 {
		return (0.0962*src[i] + 0.5769*src[i-2] - 0.5769*src[i-4] - 0.0962*src[i-6]) * adj
	}

	mama[5] = s[5]
	fama[5] = s[5]

	for i := 6; i < n; i++ {
		adj := 0.075*periods[i-1] + 0.54

		detrender[i] = hilbert(smooth, i, adj)

		// In-phase and quadrature components, with I1/Q1 advanced 90 degrees.
		q1[i] = hilbert(detrender, i, adj)
		i1[i] = detrender[i-3]
		jI := hilbert(i1, i, adj)
		jQ := hilbert(q1, i, adj)

		i2[i] = i1[i] - jQ
		q2[i] = q1[i] + jI
		i2[i] = 0.2*i2[i] + 0.8*i2[i-1]
		q2[i] = 0.2*q2[i] + 0.8*q2[i-1]

		re[i] = i2[i]*i2[i-1] + q2[i]*q2[i-1]
		im[i] = i2[i]*q2[i-1] - q2[i]*i2[i-1]
		re[i] = 0.2*re[i] + 0.8*re[i-1]
		im[i] = 0.2*im[i] + 0.8*im[i-1]

		period := periods[i-1]
		if im[i] != 0 && re[i] != 0 {
			period = 360 / (math.Atan(im[i]/re[i]) * rad2Deg)
		}
		if period > 1.5*periods[i-1] {
			period = 1.5 * periods[i-1]
		}
		if period < 0.67*periods[i-1] {
			period = 0.67 * periods[i-1]
		}
		if period < 6 {
			period = 6
		}
		if period > 50 {
			period = 50
		}
		periods[i] = 0.2*period + 0.8*periods[i-1]

		phase := phases[i-1]
		if i1[i] != 0 {
			phase = math.Atan(q1[i]/i1[i]) * rad2Deg
		}
		phases[i] = phase

		deltaPhase := phases[i-1] - phase
		if deltaPhase < 1 {
			deltaPhase = 1
		}

		alpha := fastLimit / deltaPhase
		if alpha < slowLimit {
			alpha = slowLimit
		}
		if alpha > fastLimit {
			alpha = fastLimit
		}

		mama[i] = alpha*s[i] + (1-alpha)*mama[i-1]
		fama[i] = 0.5*alpha*mama[i] + (1-0.5*alpha)*fama[i-1]
	}

	u := series.Undefined()
	for i := 0; i < mamaWarmUp && i < n; i++ {
		mama[i] = u
		fama[i] = u
	}
	return mama, fama, nil
}
