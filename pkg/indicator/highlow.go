package indicator

import (
	"fmt"

	"github.com/quantward/tasignal/pkg/ma"
	"github.com/quantward/tasignal/pkg/series"
)

// HighLowIndex measures how often new extremes form inside a forward-looking
// window. For each bar i the window covers [i, i+period), truncated at the
// tail. The running max and min seed from the window's first bar; from the
// second bar on, a high above the running max counts a new high and raises
// the max, a low at or below the running min counts a new low and lowers the
// min. The raw value is 100*nh/(nh+nl), 0 when nothing counted, and the
// returned series is that raw series smoothed with SMA(maPeriod).
func HighLowIndex(d *series.Dataset, period, maPeriod int) (series.Series, error) {
	if period < 1 || maPeriod < 1 {
		return nil, fmt.Errorf("HighLowIndex periods must be at least 1, got period=%d maPeriod=%d", period, maPeriod)
	}
	if err := d.CheckLen(maPeriod); err != nil {
		return nil, fmt.Errorf("HighLowIndex: %w", err)
	}

	n := d.Len()
	raw := make(series.Series, n)
	for i := 0; i < n; i++ {
		end := i + period
		if end > n {
			end = n
		}
		max := d.High[i]
		min := d.Low[i]
		var nh, nl int
		for j := i + 1; j < end; j++ {
			if d.High[j] > max {
				nh++
				max = d.High[j]
			}
			if d.Low[j] <= min {
				nl++
				min = d.Low[j]
			}
		}
		if nh+nl > 0 {
			raw[i] = 100 * float64(nh) / float64(nh+nl)
		}
	}

	smoothed, err := ma.SMA(raw, maPeriod)
	if err != nil {
		return nil, fmt.Errorf("HighLowIndex: %w", err)
	}
	return smoothed, nil
}
