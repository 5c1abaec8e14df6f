package indicator

import (
	"fmt"

	"github.com/quantward/tasignal/pkg/series"
)

// AwesomeResult holds the two most recent awesome-oscillator readings, in
// chronological order.
type AwesomeResult struct {
	Previous float64
	Current  float64
}

// AwesomeOscillator computes the awesome oscillator over a derived mid
// series mid[i] = (high[i]-low[i])/2. Current is the short SMA minus the
// long SMA of mid at the latest bar; Previous is the same difference with
// the latest bar excluded. The dataset is never modified.
func AwesomeOscillator(d *series.Dataset, short, long int) (AwesomeResult, error) {
	if short < 1 || long < 1 {
		return AwesomeResult{}, fmt.Errorf("AwesomeOscillator periods must be at least 1, got short=%d long=%d", short, long)
	}
	if short >= long {
		return AwesomeResult{}, fmt.Errorf("AwesomeOscillator short period %d must be shorter than long period %d", short, long)
	}
	// One extra bar so the previous reading still has a full long window.
	if err := d.CheckLen(long + 1); err != nil {
		return AwesomeResult{}, fmt.Errorf("AwesomeOscillator: %w", err)
	}

	mid := make(series.Series, d.Len())
	for i := range mid {
		mid[i] = (d.High[i] - d.Low[i]) / 2
	}

	return AwesomeResult{
		Previous: tailMean(mid[:len(mid)-1], short) - tailMean(mid[:len(mid)-1], long),
		Current:  tailMean(mid, short) - tailMean(mid, long),
	}, nil
}

// tailMean averages the trailing period samples. Callers guarantee
// len(s) >= period.
func tailMean(s series.Series, period int) float64 {
	var sum float64
	for _, v := range s[len(s)-period:] {
		sum += v
	}
	return sum / float64(period)
}
