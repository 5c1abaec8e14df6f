package signal

import (
	"fmt"

	"github.com/quantward/tasignal/pkg/series"
)

// Threshold classifies a single reading against a band.
func Threshold(v float64, b Band, dir Direction) Signal {
	switch {
	case v >= b.High:
		if dir == Confirming {
			return Buy
		}
		return Sell
	case v <= b.Low:
		if dir == Confirming {
			return Sell
		}
		return Buy
	default:
		return Hold
	}
}

// BandCross fires only when the reading crosses a band bound between the
// previous and current samples: up through High sells, down through Low
// buys. A level crossing, not a level reading.
func BandCross(cur, prev float64, b Band) Signal {
	switch {
	case prev < b.High && cur > b.High:
		return Sell
	case prev > b.Low && cur < b.Low:
		return Buy
	default:
		return Hold
	}
}

// Crossover compares two parallel lines and fires on the bar where the
// first crosses the second: up-cross buys, down-cross sells.
func Crossover(curA, curB, prevA, prevB float64) Signal {
	switch {
	case curA > curB && prevA <= prevB:
		return Buy
	case curA < curB && prevA >= prevB:
		return Sell
	default:
		return Hold
	}
}

// ZeroCross fires on a sign transition, the MACD histogram rule.
func ZeroCross(cur, prev float64) Signal {
	switch {
	case cur > 0 && prev <= 0:
		return Buy
	case cur < 0 && prev >= 0:
		return Sell
	default:
		return Hold
	}
}

// WideZeroCross is ZeroCross with the Awesome Oscillator's conviction
// codes.
func WideZeroCross(cur, prev float64) Signal {
	switch ZeroCross(cur, prev) {
	case Buy:
		return StrongBuy
	case Sell:
		return StrongSell
	default:
		return Hold
	}
}

// DualBand requires both parallel lines (%K and %D) to independently clear
// the same band.
func DualBand(k, d float64, b Band) Signal {
	switch {
	case k >= b.High && d >= b.High:
		return Sell
	case k <= b.Low && d <= b.Low:
		return Buy
	default:
		return Hold
	}
}

// ATRBreakout buys when the close jumps more than one ATR above the prior
// close, and sells on the mirror move.
func ATRBreakout(close, prevClose, atr float64) Signal {
	switch {
	case close > prevClose+atr:
		return Buy
	case close < prevClose-atr:
		return Sell
	default:
		return Hold
	}
}

// BollingerTouch fires when the close moves from inside the bands to at or
// beyond one: the lower band buys, the upper sells. Landing exactly on a
// band counts as a touch.
func BollingerTouch(close, upper, lower, prevClose, prevUpper, prevLower float64) Signal {
	switch {
	case close <= lower && prevClose > prevLower:
		return Buy
	case close >= upper && prevClose < prevUpper:
		return Sell
	default:
		return Hold
	}
}

// TripleCross fires on the bar where a full short>mid>long (or
// short<mid<long) alignment forms.
func TripleCross(curS, curM, curL, prevS, prevM, prevL float64) Signal {
	upNow := curS > curM && curM > curL
	upPrev := prevS > prevM && prevM > prevL
	downNow := curS < curM && curM < curL
	downPrev := prevS < prevM && prevM < prevL
	switch {
	case upNow && !upPrev:
		return Buy
	case downNow && !downPrev:
		return Sell
	default:
		return Hold
	}
}

// Monotonic3 requires three consecutive samples agreeing in direction, the
// OBV confirmation rule.
func Monotonic3(values series.Series) (Signal, error) {
	if len(values) < 3 {
		return Hold, fmt.Errorf("%w: need 3 samples, have %d", series.ErrInsufficientData, len(values))
	}
	a := values[len(values)-3]
	b := values[len(values)-2]
	c := values[len(values)-1]
	switch {
	case c > b && b > a:
		return Buy, nil
	case c < b && b < a:
		return Sell, nil
	default:
		return Hold, nil
	}
}

// SARFlip requires three consecutive SAR points strictly under the bars'
// lows to buy, or strictly over the highs to sell.
func SARFlip(sar, high, low series.Series) (Signal, error) {
	if len(sar) < 3 || len(high) < 3 || len(low) < 3 {
		return Hold, fmt.Errorf("%w: sar flip needs 3 samples of sar, high, and low", series.ErrInsufficientData)
	}
	below, above := true, true
	for i := 1; i <= 3; i++ {
		s := sar[len(sar)-i]
		if s >= low[len(low)-i] {
			below = false
		}
		if s <= high[len(high)-i] {
			above = false
		}
	}
	switch {
	case below:
		return Buy, nil
	case above:
		return Sell, nil
	default:
		return Hold, nil
	}
}

// Regime gates trend-following by the Market Meanness Index: below the
// threshold the market is directional enough to trade.
func Regime(mmi, threshold float64) Signal {
	if mmi < threshold {
		return Buy
	}
	return Hold
}

// TrendMode reads the Hilbert trend-vs-cycle flag: 1 (trend) leans long,
// anything else holds.
func TrendMode(cur float64) Signal {
	if cur == 1 {
		return Buy
	}
	return Hold
}

// RunLength counts consecutive trailing samples equal to the latest value.
// A distinct evaluator output mode: a count, not a signal code.
func RunLength(values series.Series) int {
	if len(values) == 0 {
		return 0
	}
	last := values[len(values)-1]
	count := 0
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] != last {
			break
		}
		count++
	}
	return count
}

// ElderRay combines bull/bear power with the MACD gap: bears weakening in
// an uptrend buy, bulls weakening in a downtrend sell.
func ElderRay(macd, bull, bear float64) Signal {
	switch {
	case macd > 0 && bear < 0:
		return Buy
	case macd < 0 && bull > 0:
		return Sell
	default:
		return Hold
	}
}
