package indicator

import (
	"math"

	"github.com/quantward/tasignal/pkg/series"
)

// stochRSIFromRSI rescales an RSI series against its own trailing
// period-window range, producing values in [0,1] rounded to two decimals.
// from is the first index holding a real RSI value; earlier samples are
// lookback fill and never enter a window. A flat window (max == min)
// yields 0 rather than NaN.
func stochRSIFromRSI(rsi series.Series, period, from int) series.Series {
	out := make(series.Series, len(rsi))
	for i := range out {
		out[i] = series.Undefined()
	}
	for i := from + period - 1; i < len(rsi); i++ {
		lo, hi := rsi[i], rsi[i]
		for j := i - period + 1; j < i; j++ {
			if rsi[j] < lo {
				lo = rsi[j]
			}
			if rsi[j] > hi {
				hi = rsi[j]
			}
		}
		var v float64
		if hi > lo {
			v = (rsi[i] - lo) / (hi - lo)
		}
		out[i] = math.Round(v*100) / 100
	}
	return out
}
