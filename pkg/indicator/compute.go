package indicator

import (
	"fmt"
	"time"

	"github.com/quantward/tasignal/pkg/series"
)

// Native set.

// OBV returns the on-balance volume series.
func (e *Engine) OBV(d *series.Dataset) (series.Series, error) {
	start := time.Now()
	out, err := OBV(d)
	e.observed("obv", nil, d.Len(), last(out), err, start)
	return out, err
}

// HighLowIndex returns the smoothed high-low index series.
func (e *Engine) HighLowIndex(d *series.Dataset, period, maPeriod int) (series.Series, error) {
	start := time.Now()
	out, err := HighLowIndex(d, period, maPeriod)
	e.observed("hli", map[string]interface{}{"period": period, "ma_period": maPeriod}, d.Len(), last(out), err, start)
	return out, err
}

// MMI returns the market meanness index over the whole dataset.
func (e *Engine) MMI(d *series.Dataset) (float64, error) {
	start := time.Now()
	out, err := MMI(d)
	e.observed("mmi", nil, d.Len(), out, err, start)
	return out, err
}

// StochRSI returns the stochastic RSI series: the provider's RSI rescaled
// against its trailing period-window range into [0,1], two-decimal rounded.
// Output is undefined until a full window of real RSI values exists.
func (e *Engine) StochRSI(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.stochRSI(d, period)
	e.observed("stochrsi", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

func (e *Engine) stochRSI(d *series.Dataset, period int) (series.Series, error) {
	if period < 1 {
		return nil, fmt.Errorf("StochRSI period must be at least 1, got %d", period)
	}
	if err := d.CheckLen(2 * period); err != nil {
		return nil, fmt.Errorf("StochRSI: %w", err)
	}
	rsi, err := e.provider.RSI(d, period)
	if err != nil {
		return nil, fmt.Errorf("StochRSI: %w", err)
	}
	return stochRSIFromRSI(rsi, period, period), nil
}

// AwesomeOscillator returns the two latest awesome-oscillator readings.
func (e *Engine) AwesomeOscillator(d *series.Dataset, short, long int) (AwesomeResult, error) {
	start := time.Now()
	res, err := AwesomeOscillator(d, short, long)
	e.observed("awesome", map[string]interface{}{"short": short, "long": long}, d.Len(), res.Current, err, start)
	return res, err
}

// ElderRay returns the elder-ray decomposition of the latest bar.
func (e *Engine) ElderRay(d *series.Dataset, mp MACDParams, emaPeriod int) (ElderRayResult, error) {
	start := time.Now()
	params := map[string]interface{}{"fast": mp.Fast, "slow": mp.Slow, "signal": mp.Signal, "ema_period": emaPeriod}
	res, err := e.elderRay(d, mp, emaPeriod)
	e.observed("elder_ray", params, d.Len(), res, err, start)
	return res, err
}

func (e *Engine) elderRay(d *series.Dataset, mp MACDParams, emaPeriod int) (ElderRayResult, error) {
	macdLine, sigLine, _, err := e.provider.MACD(d, mp)
	if err != nil {
		return ElderRayResult{}, fmt.Errorf("ElderRay: %w", err)
	}
	ema, bull, bear, err := elderRayParts(d, emaPeriod)
	if err != nil {
		return ElderRayResult{}, err
	}
	return ElderRayResult{
		MACD: macdLine.Last() - sigLine.Last(),
		EMA:  ema,
		Bull: bull,
		Bear: bear,
		High: d.High.Last(),
		Low:  d.Low.Last(),
	}, nil
}

// Provider pass-throughs.

// ATR returns the average true range.
func (e *Engine) ATR(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.ATR(d, period)
	e.observed("atr", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

// ADX returns the average directional index.
func (e *Engine) ADX(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.ADX(d, period)
	e.observed("adx", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

// PlusDI returns the positive directional indicator.
func (e *Engine) PlusDI(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.PlusDI(d, period)
	e.observed("plus_di", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

// MinusDI returns the negative directional indicator.
func (e *Engine) MinusDI(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.MinusDI(d, period)
	e.observed("minus_di", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

// BollingerBands returns the upper, middle and lower bands.
func (e *Engine) BollingerBands(d *series.Dataset, bp BollingerParams) (upper, middle, lower series.Series, err error) {
	start := time.Now()
	params := map[string]interface{}{"period": bp.Period, "dev_up": bp.DevUp, "dev_down": bp.DevDown, "kind": bp.Kind.String()}
	upper, middle, lower, err = e.provider.BollingerBands(d, bp)
	e.observed("bollinger", params, d.Len(), last(middle), err, start)
	return upper, middle, lower, err
}

// MACD returns the raw, signal and histogram lines.
func (e *Engine) MACD(d *series.Dataset, mp MACDParams) (macd, sig, hist series.Series, err error) {
	start := time.Now()
	params := map[string]interface{}{"fast": mp.Fast, "slow": mp.Slow, "signal": mp.Signal}
	macd, sig, hist, err = e.provider.MACD(d, mp)
	e.observed("macd", params, d.Len(), last(hist), err, start)
	return macd, sig, hist, err
}

// MACDExt returns the raw, signal and histogram lines with configurable
// moving-average kinds per leg.
func (e *Engine) MACDExt(d *series.Dataset, mp MACDExtParams) (macd, sig, hist series.Series, err error) {
	start := time.Now()
	params := map[string]interface{}{
		"fast": mp.Fast, "fast_kind": mp.FastKind.String(),
		"slow": mp.Slow, "slow_kind": mp.SlowKind.String(),
		"signal": mp.Signal, "signal_kind": mp.SignalKind.String(),
	}
	macd, sig, hist, err = e.provider.MACDExt(d, mp)
	e.observed("macd_ext", params, d.Len(), last(hist), err, start)
	return macd, sig, hist, err
}

// RSI returns the relative strength index.
func (e *Engine) RSI(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.RSI(d, period)
	e.observed("rsi", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

// Stochastic returns the slow stochastic %K and %D lines.
func (e *Engine) Stochastic(d *series.Dataset, sp StochParams) (k, dLine series.Series, err error) {
	start := time.Now()
	params := map[string]interface{}{"fast_k": sp.FastK, "slow_k": sp.SlowK, "slow_d": sp.SlowD}
	k, dLine, err = e.provider.Stochastic(d, sp)
	e.observed("stochastic", params, d.Len(), last(k), err, start)
	return k, dLine, err
}

// FastStochastic returns the fast stochastic %K and %D lines.
func (e *Engine) FastStochastic(d *series.Dataset, sp FastStochParams) (k, dLine series.Series, err error) {
	start := time.Now()
	params := map[string]interface{}{"fast_k": sp.FastK, "fast_d": sp.FastD}
	k, dLine, err = e.provider.FastStochastic(d, sp)
	e.observed("fast_stochastic", params, d.Len(), last(k), err, start)
	return k, dLine, err
}

// SAR returns the parabolic stop-and-reverse series.
func (e *Engine) SAR(d *series.Dataset, sp SARParams) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.SAR(d, sp)
	e.observed("sar", map[string]interface{}{"accel": sp.Accel, "max": sp.Max}, d.Len(), last(out), err, start)
	return out, err
}

// SARExt returns the extended parabolic stop-and-reverse series.
func (e *Engine) SARExt(d *series.Dataset, sp SARExtParams) (series.Series, error) {
	start := time.Now()
	params := map[string]interface{}{
		"start": sp.Start, "offset_on_reverse": sp.OffsetOnReverse,
		"accel_init_long": sp.AccelInitLong, "accel_long": sp.AccelLong, "accel_max_long": sp.AccelMaxLong,
		"accel_init_short": sp.AccelInitShort, "accel_short": sp.AccelShort, "accel_max_short": sp.AccelMaxShort,
	}
	out, err := e.provider.SARExt(d, sp)
	e.observed("fsar", params, d.Len(), last(out), err, start)
	return out, err
}

// CCI returns the commodity channel index.
func (e *Engine) CCI(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.CCI(d, period)
	e.observed("cci", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

// CMO returns the Chande momentum oscillator.
func (e *Engine) CMO(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.CMO(d, period)
	e.observed("cmo", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

// AroonOsc returns the aroon oscillator.
func (e *Engine) AroonOsc(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.AroonOsc(d, period)
	e.observed("aroonosc", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

// ROC returns the rate of change.
func (e *Engine) ROC(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.ROC(d, period)
	e.observed("roc", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

// WilliamsR returns Williams %R.
func (e *Engine) WilliamsR(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.WilliamsR(d, period)
	e.observed("willr", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

// UltOsc returns the ultimate oscillator.
func (e *Engine) UltOsc(d *series.Dataset, up UltOscParams) (series.Series, error) {
	start := time.Now()
	params := map[string]interface{}{"p1": up.P1, "p2": up.P2, "p3": up.P3}
	out, err := e.provider.UltOsc(d, up)
	e.observed("ultosc", params, d.Len(), last(out), err, start)
	return out, err
}

// MFI returns the money flow index.
func (e *Engine) MFI(d *series.Dataset, period int) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.MFI(d, period)
	e.observed("mfi", map[string]interface{}{"period": period}, d.Len(), last(out), err, start)
	return out, err
}

// HTSine returns the Hilbert sine and lead-sine lines.
func (e *Engine) HTSine(d *series.Dataset) (sine, lead series.Series, err error) {
	start := time.Now()
	sine, lead, err = e.provider.HTSine(d)
	e.observed("ht_sine", nil, d.Len(), last(sine), err, start)
	return sine, lead, err
}

// HTTrendline returns the Hilbert instantaneous trendline.
func (e *Engine) HTTrendline(d *series.Dataset) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.HTTrendline(d)
	e.observed("ht_trendline", nil, d.Len(), last(out), err, start)
	return out, err
}

// HTTrendMode returns the Hilbert trend-versus-cycle mode series (0 or 1).
func (e *Engine) HTTrendMode(d *series.Dataset) (series.Series, error) {
	start := time.Now()
	out, err := e.provider.HTTrendMode(d)
	e.observed("ht_trendmode", nil, d.Len(), last(out), err, start)
	return out, err
}
