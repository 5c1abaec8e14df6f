package indicator

import (
	"fmt"

	"github.com/quantward/tasignal/pkg/series"
)

// OBV computes on-balance volume: a running total that adds the bar's volume
// when the close rises, subtracts it when the close falls, and carries the
// total unchanged on a flat close. obv[0] seeds with the first bar's volume.
func OBV(d *series.Dataset) (series.Series, error) {
	if err := d.CheckLen(1); err != nil {
		return nil, fmt.Errorf("OBV: %w", err)
	}

	out := make(series.Series, d.Len())
	out[0] = d.Volume[0]
	for i := 1; i < d.Len(); i++ {
		switch {
		case d.Close[i] > d.Close[i-1]:
			out[i] = out[i-1] + d.Volume[i]
		case d.Close[i] < d.Close[i-1]:
			out[i] = out[i-1] - d.Volume[i]
		default:
			out[i] = out[i-1]
		}
	}
	return out, nil
}
