package ma

import (
	"fmt"
	"math"

	"github.com/quantward/tasignal/pkg/series"
)

// Default parameters for the kinds that take more than a period.
const (
	DefaultFastLimit    = 0.5  // MAMA fast limit
	DefaultSlowLimit    = 0.05 // MAMA slow limit
	DefaultVolumeFactor = 0.7  // T3 volume factor
)

// Compute runs the moving average selected by kind over s. Output is
// aligned with the input: one value per sample, warm-up bars undefined
// (NaN). MAMA uses its default limits and adapts its own effective period;
// T3 uses the default volume factor.
func Compute(s series.Series, kind Kind, period int) (series.Series, error) {
	switch kind {
	case KindSMA:
		return SMA(s, period)
	case KindEMA:
		return EMA(s, period)
	case KindWMA:
		return WMA(s, period)
	case KindDEMA:
		return DEMA(s, period)
	case KindTEMA:
		return TEMA(s, period)
	case KindTRIMA:
		return TRIMA(s, period)
	case KindKAMA:
		return KAMA(s, period)
	case KindMAMA:
		mama, _, err := MAMA(s, DefaultFastLimit, DefaultSlowLimit)
		return mama, err
	case KindT3:
		return T3(s, period, DefaultVolumeFactor)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// SMA is the arithmetic mean of the trailing period samples.
func SMA(s series.Series, period int) (series.Series, error) {
	if err := check("SMA", s, period, period); err != nil {
		return nil, err
	}
	out := undefined(len(s))
	var sum float64
	for i, v := range s {
		sum += v
		if i >= period {
			sum -= s[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out, nil
}

// EMA applies exponential smoothing with alpha = 2/(period+1), seeded with
// the SMA of the first period samples.
func EMA(s series.Series, period int) (series.Series, error) {
	if err := check("EMA", s, period, period); err != nil {
		return nil, err
	}
	out := undefined(len(s))
	emaInto(out, s, 0, period)
	return out, nil
}

// WMA weights the window 1..period oldest to newest, normalized by
// period*(period+1)/2.
func WMA(s series.Series, period int) (series.Series, error) {
	if err := check("WMA", s, period, period); err != nil {
		return nil, err
	}
	out := undefined(len(s))
	denom := float64(period) * float64(period+1) / 2
	for i := period - 1; i < len(s); i++ {
		var sum float64
		for j := 0; j < period; j++ {
			sum += s[i-period+1+j] * float64(j+1)
		}
		out[i] = sum / denom
	}
	return out, nil
}

// DEMA is 2*EMA - EMA(EMA). First defined after 2*period-1 samples.
func DEMA(s series.Series, period int) (series.Series, error) {
	min := 2*period - 1
	if err := check("DEMA", s, period, min); err != nil {
		return nil, err
	}
	e1 := undefined(len(s))
	emaInto(e1, s, 0, period)
	e2 := undefined(len(s))
	emaInto(e2, e1, period-1, period)

	out := undefined(len(s))
	for i := min - 1; i < len(s); i++ {
		out[i] = 2*e1[i] - e2[i]
	}
	return out, nil
}

// TEMA is 3*EMA1 - 3*EMA(EMA1) + EMA(EMA(EMA1)). First defined after
// 3*period-2 samples.
func TEMA(s series.Series, period int) (series.Series, error) {
	min := 3*period - 2
	if err := check("TEMA", s, period, min); err != nil {
		return nil, err
	}
	e1 := undefined(len(s))
	emaInto(e1, s, 0, period)
	e2 := undefined(len(s))
	emaInto(e2, e1, period-1, period)
	e3 := undefined(len(s))
	emaInto(e3, e2, 2*(period-1), period)

	out := undefined(len(s))
	for i := min - 1; i < len(s); i++ {
		out[i] = 3*e1[i] - 3*e2[i] + e3[i]
	}
	return out, nil
}

// TRIMA smooths twice with the standard half-length split: odd periods use
// (period+1)/2 for both windows, even periods use period/2+1 then period/2,
// concentrating weight at the window's center.
func TRIMA(s series.Series, period int) (series.Series, error) {
	var w1, w2 int
	if period%2 == 1 {
		w1 = (period + 1) / 2
		w2 = w1
	} else {
		w1 = period/2 + 1
		w2 = period / 2
	}
	min := w1 + w2 - 1
	if err := check("TRIMA", s, period, min); err != nil {
		return nil, err
	}
	first := undefined(len(s))
	smaInto(first, s, 0, w1)
	out := undefined(len(s))
	smaInto(out, first, w1-1, w2)
	return out, nil
}

// KAMA adapts its smoothing constant to the efficiency ratio: net price
// movement over the window divided by the path length. A zero path length
// pins the ratio to 0 (slowest smoothing) rather than dividing by zero.
func KAMA(s series.Series, period int) (series.Series, error) {
	if err := check("KAMA", s, period, period+1); err != nil {
		return nil, err
	}
	const (
		fastSC = 2.0 / (2.0 + 1.0)
		slowSC = 2.0 / (30.0 + 1.0)
	)
	out := undefined(len(s))
	prev := s[period-1]
	for i := period; i < len(s); i++ {
		change := math.Abs(s[i] - s[i-period])
		var volatility float64
		for j := i - period + 1; j <= i; j++ {
			volatility += math.Abs(s[j] - s[j-1])
		}
		var er float64
		if volatility != 0 {
			er = change / volatility
		}
		sc := er*(fastSC-slowSC) + slowSC
		sc *= sc
		prev += sc * (s[i] - prev)
		out[i] = prev
	}
	return out, nil
}

// T3 is the sextuple-smoothed EMA: c1*e6 + c2*e5 + c3*e4 + c4*e3 over six
// chained EMAs, with polynomial coefficients in the volume factor v.
func T3(s series.Series, period int, vfactor float64) (series.Series, error) {
	min := 6*(period-1) + 1
	if err := check("T3", s, period, min); err != nil {
		return nil, err
	}
	n := len(s)
	prev := s
	from := 0
	chain := make([]series.Series, 7)
	chain[0] = s
	for k := 1; k <= 6; k++ {
		next := undefined(n)
		emaInto(next, prev, from, period)
		from += period - 1
		chain[k] = next
		prev = next
	}

	v := vfactor
	c1 := -v * v * v
	c2 := 3*v*v + 3*v*v*v
	c3 := -6*v*v - 3*v - 3*v*v*v
	c4 := 1 + 3*v + v*v*v + 3*v*v

	out := undefined(n)
	e3, e4, e5, e6 := chain[3], chain[4], chain[5], chain[6]
	for i := min - 1; i < n; i++ {
		out[i] = c1*e6[i] + c2*e5[i] + c3*e4[i] + c4*e3[i]
	}
	return out, nil
}

// check validates the period and the minimum sample count a kind requires.
func check(name string, s series.Series, period, min int) error {
	if period < 1 {
		return fmt.Errorf("%s period must be at least 1, got %d", name, period)
	}
	if len(s) == 0 {
		return fmt.Errorf("%w: %s input", series.ErrEmptySeries, name)
	}
	if len(s) < min {
		return fmt.Errorf("%w: %s needs %d samples, have %d", series.ErrInsufficientData, name, min, len(s))
	}
	return nil
}

// undefined allocates an output series with every sample marked undefined.
func undefined(n int) series.Series {
	out := make(series.Series, n)
	u := series.Undefined()
	for i := range out {
		out[i] = u
	}
	return out
}

// emaInto runs an EMA over s[from:] and writes aligned results into out.
// The first defined index is from+period-1; the caller guarantees
// len(s)-from >= period.
func emaInto(out, s series.Series, from, period int) {
	alpha := 2.0 / float64(period+1)
	var seed float64
	for i := from; i < from+period; i++ {
		seed += s[i]
	}
	prev := seed / float64(period)
	out[from+period-1] = prev
	for i := from + period; i < len(s); i++ {
		prev = alpha*s[i] + (1-alpha)*prev
		out[i] = prev
	}
}

// smaInto runs an SMA over s[from:] and writes aligned results into out.
func smaInto(out, s series.Series, from, period int) {
	var sum float64
	for i := from; i < len(s); i++ {
		sum += s[i]
		if i-from >= period {
			sum -= s[i-period]
		}
		if i-from >= period-1 {
			out[i] = sum / float64(period)
		}
	}
}
