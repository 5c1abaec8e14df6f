package indicator

import (
	"fmt"

	"github.com/quantward/tasignal/pkg/ma"
	"github.com/quantward/tasignal/pkg/series"
)

// ElderRayResult carries every input of the elder-ray decision: the MACD
// distance (raw minus signal), the EMA anchor, bull and bear power, and the
// latest high and low they were measured against.
type ElderRayResult struct {
	MACD float64
	EMA  float64
	Bull float64
	Bear float64
	High float64
	Low  float64
}

// elderRayParts computes the native portion of elder ray: the EMA anchor at
// the latest close and the bull and bear distances of the latest bar.
func elderRayParts(d *series.Dataset, emaPeriod int) (ema, bull, bear float64, err error) {
	line, err := ma.EMA(d.Close, emaPeriod)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("ElderRay: %w", err)
	}
	ema = line.Last()
	bull = d.High.Last() - ema
	bear = d.Low.Last() - ema
	return ema, bull, bear, nil
}
