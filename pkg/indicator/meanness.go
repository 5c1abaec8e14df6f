package indicator

import (
	"fmt"

	"github.com/quantward/tasignal/pkg/series"
)

// MMI computes the market meanness index over every close in the dataset:
// the percentage of bars that both sit on the far side of the overall mean
// and extend beyond the previous close. Readings near 100 mark mean-reverting
// (noisy) price action, low readings mark trending action.
func MMI(d *series.Dataset) (float64, error) {
	if err := d.CheckLen(2); err != nil {
		return 0, fmt.Errorf("MMI: %w", err)
	}

	var sum float64
	for _, c := range d.Close {
		sum += c
	}
	avg := sum / float64(d.Len())

	var nh, nl int
	var current float64
	for _, c := range d.Close {
		if c > avg && c > current {
			nl++
		} else if c < avg && c < current {
			nh++
		}
		current = c
	}
	return 100 * float64(nh+nl) / float64(d.Len()-1), nil
}
