package indicator

import (
	"fmt"
	"time"

	"github.com/quantward/tasignal/pkg/ma"
	"github.com/quantward/tasignal/pkg/series"
	"github.com/quantward/tasignal/pkg/signal"
)

// The signal surface reduces each indicator to a discrete decision from its
// trailing samples. Bands left as the zero value fall back to the
// per-indicator defaults in pkg/signal. Crossover-style rules validate one
// bar past the provider minimum so the previous sample is a real value, not
// lookback fill.

// RSISignal fires on the RSI leaving the band: up through High sells, down
// through Low buys.
func (e *Engine) RSISignal(d *series.Dataset, period int, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.RSIBand)
	defer func() {
		e.observed("rsi", map[string]interface{}{"period": period, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	if period < 1 {
		return signal.Hold, fmt.Errorf("RSI period must be at least 1, got %d", period)
	}
	if err := d.CheckLen(period + 2); err != nil {
		return signal.Hold, fmt.Errorf("RSI: %w", err)
	}
	rsi, err := e.provider.RSI(d, period)
	if err != nil {
		return signal.Hold, err
	}
	return signal.BandCross(rsi.Last(), rsi.Prev(), b), nil
}

// StochasticSignal sells when %K and %D both clear the upper bound, buys
// when both clear the lower.
func (e *Engine) StochasticSignal(d *series.Dataset, sp StochParams, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.StochBand)
	defer func() {
		e.observed("stochastic", map[string]interface{}{"fast_k": sp.FastK, "slow_k": sp.SlowK, "slow_d": sp.SlowD, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	k, dLine, err := e.provider.Stochastic(d, sp)
	if err != nil {
		return signal.Hold, err
	}
	return signal.DualBand(k.Last(), dLine.Last(), b), nil
}

// FastStochasticSignal is StochasticSignal on the unsmoothed oscillator.
func (e *Engine) FastStochasticSignal(d *series.Dataset, sp FastStochParams, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.StochBand)
	defer func() {
		e.observed("fast_stochastic", map[string]interface{}{"fast_k": sp.FastK, "fast_d": sp.FastD, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	k, dLine, err := e.provider.FastStochastic(d, sp)
	if err != nil {
		return signal.Hold, err
	}
	return signal.DualBand(k.Last(), dLine.Last(), b), nil
}

// CCISignal reads the latest CCI against the band, contrarian.
func (e *Engine) CCISignal(d *series.Dataset, period int, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.CCIBand)
	defer func() {
		e.observed("cci", map[string]interface{}{"period": period, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	cci, err := e.provider.CCI(d, period)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Threshold(cci.Last(), b, signal.Contrarian), nil
}

// CMOSignal reads the latest CMO against the band, contrarian.
func (e *Engine) CMOSignal(d *series.Dataset, period int, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.CMOBand)
	defer func() {
		e.observed("cmo", map[string]interface{}{"period": period, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	cmo, err := e.provider.CMO(d, period)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Threshold(cmo.Last(), b, signal.Contrarian), nil
}

// MFISignal reads the latest MFI against the band, contrarian.
func (e *Engine) MFISignal(d *series.Dataset, period int, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.MFIBand)
	defer func() {
		e.observed("mfi", map[string]interface{}{"period": period, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	mfi, err := e.provider.MFI(d, period)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Threshold(mfi.Last(), b, signal.Contrarian), nil
}

// WilliamsRSignal reads the latest %R against the band, contrarian.
func (e *Engine) WilliamsRSignal(d *series.Dataset, period int, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.WillRBand)
	defer func() {
		e.observed("willr", map[string]interface{}{"period": period, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	wr, err := e.provider.WilliamsR(d, period)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Threshold(wr.Last(), b, signal.Contrarian), nil
}

// UltOscSignal reads the latest ultimate oscillator against the band,
// contrarian.
func (e *Engine) UltOscSignal(d *series.Dataset, up UltOscParams, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.UltOscBand)
	defer func() {
		e.observed("ultosc", map[string]interface{}{"p1": up.P1, "p2": up.P2, "p3": up.P3, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	uo, err := e.provider.UltOsc(d, up)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Threshold(uo.Last(), b, signal.Contrarian), nil
}

// ROCSignal reads the latest rate of change against the band, contrarian.
func (e *Engine) ROCSignal(d *series.Dataset, period int, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.ROCBand)
	defer func() {
		e.observed("roc", map[string]interface{}{"period": period, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	roc, err := e.provider.ROC(d, period)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Threshold(roc.Last(), b, signal.Contrarian), nil
}

// ADXSignal fades an overextended trend: ADX at or above the upper bound
// sells. ADX carries no direction, so the buy side stays disabled under the
// default band.
func (e *Engine) ADXSignal(d *series.Dataset, period int, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.ADXBand)
	defer func() {
		e.observed("adx", map[string]interface{}{"period": period, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	adx, err := e.provider.ADX(d, period)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Threshold(adx.Last(), b, signal.Contrarian), nil
}

// AroonOscSignal reads the latest aroon oscillator as a trend confirmation:
// at or above High buys, at or below Low sells.
func (e *Engine) AroonOscSignal(d *series.Dataset, period int, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.AroonBand)
	defer func() {
		e.observed("aroonosc", map[string]interface{}{"period": period, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	ao, err := e.provider.AroonOsc(d, period)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Threshold(ao.Last(), b, signal.Confirming), nil
}

// StochRSISignal reads the latest stochastic RSI against the band,
// contrarian on the [0,1] scale.
func (e *Engine) StochRSISignal(d *series.Dataset, period int, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.StochRSIBand)
	defer func() {
		e.observed("stochrsi", map[string]interface{}{"period": period, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	srsi, err := e.stochRSI(d, period)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Threshold(srsi.Last(), b, signal.Contrarian), nil
}

// HighLowIndexSignal reads the latest smoothed high-low index as a breadth
// confirmation: at or above High buys, at or below Low sells.
func (e *Engine) HighLowIndexSignal(d *series.Dataset, period, maPeriod int, b signal.Band) (sig signal.Signal, err error) {
	start := time.Now()
	b = b.Or(signal.HLIBand)
	defer func() {
		e.observed("hli", map[string]interface{}{"period": period, "ma_period": maPeriod, "low": b.Low, "high": b.High}, d.Len(), sig, err, start)
	}()

	hli, err := HighLowIndex(d, period, maPeriod)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Threshold(hli.Last(), b, signal.Confirming), nil
}

// MACDSignal fires on the histogram changing sign.
func (e *Engine) MACDSignal(d *series.Dataset, mp MACDParams) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("macd", map[string]interface{}{"fast": mp.Fast, "slow": mp.Slow, "signal": mp.Signal}, d.Len(), sig, err, start)
	}()

	if err := checkMACDPeriods("MACD", mp.Fast, mp.Slow, mp.Signal); err != nil {
		return signal.Hold, err
	}
	if err := d.CheckLen(mp.Slow + mp.Signal); err != nil {
		return signal.Hold, fmt.Errorf("MACD: %w", err)
	}
	_, _, hist, err := e.provider.MACD(d, mp)
	if err != nil {
		return signal.Hold, err
	}
	return signal.ZeroCross(hist.Last(), hist.Prev()), nil
}

// MACDExtSignal is MACDSignal with configurable moving-average kinds.
func (e *Engine) MACDExtSignal(d *series.Dataset, mp MACDExtParams) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("macd_ext", map[string]interface{}{"fast": mp.Fast, "slow": mp.Slow, "signal": mp.Signal}, d.Len(), sig, err, start)
	}()

	if err := checkMACDPeriods("MACDExt", mp.Fast, mp.Slow, mp.Signal); err != nil {
		return signal.Hold, err
	}
	if err := d.CheckLen(mp.Slow + mp.Signal); err != nil {
		return signal.Hold, fmt.Errorf("MACDExt: %w", err)
	}
	_, _, hist, err := e.provider.MACDExt(d, mp)
	if err != nil {
		return signal.Hold, err
	}
	return signal.ZeroCross(hist.Last(), hist.Prev()), nil
}

// ATRBreakoutSignal buys when the close jumps more than one ATR above the
// prior close, sells on the mirror move.
func (e *Engine) ATRBreakoutSignal(d *series.Dataset, period int) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("atr_breakout", map[string]interface{}{"period": period}, d.Len(), sig, err, start)
	}()

	atr, err := e.provider.ATR(d, period)
	if err != nil {
		return signal.Hold, err
	}
	return signal.ATRBreakout(d.Close.Last(), d.Close.Prev(), atr.Last()), nil
}

// BollingerSignal fires when the close moves from inside the bands to at or
// beyond one: lower buys, upper sells.
func (e *Engine) BollingerSignal(d *series.Dataset, bp BollingerParams) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("bollinger", map[string]interface{}{"period": bp.Period, "dev_up": bp.DevUp, "dev_down": bp.DevDown, "kind": bp.Kind.String()}, d.Len(), sig, err, start)
	}()

	if err := d.CheckLen(bp.Period + 1); err != nil {
		return signal.Hold, fmt.Errorf("BollingerBands: %w", err)
	}
	upper, _, lower, err := e.provider.BollingerBands(d, bp)
	if err != nil {
		return signal.Hold, err
	}
	return signal.BollingerTouch(
		d.Close.Last(), upper.Last(), lower.Last(),
		d.Close.Prev(), upper.Prev(), lower.Prev(),
	), nil
}

// EMACrossSignal fires on the short EMA crossing the long EMA of the close.
func (e *Engine) EMACrossSignal(d *series.Dataset, short, long int) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("ema_cross", map[string]interface{}{"short": short, "long": long}, d.Len(), sig, err, start)
	}()

	if short < 1 || long < 1 {
		return signal.Hold, fmt.Errorf("EMA cross periods must be at least 1, got short=%d long=%d", short, long)
	}
	if short >= long {
		return signal.Hold, fmt.Errorf("EMA cross short period %d must be shorter than long period %d", short, long)
	}
	if err := d.CheckLen(long + 1); err != nil {
		return signal.Hold, fmt.Errorf("EMA cross: %w", err)
	}
	s, err := ma.EMA(d.Close, short)
	if err != nil {
		return signal.Hold, fmt.Errorf("EMA cross: %w", err)
	}
	l, err := ma.EMA(d.Close, long)
	if err != nil {
		return signal.Hold, fmt.Errorf("EMA cross: %w", err)
	}
	return signal.Crossover(s.Last(), l.Last(), s.Prev(), l.Prev()), nil
}

// TripleEMASignal fires on the bar where a full short/mid/long EMA
// alignment forms.
func (e *Engine) TripleEMASignal(d *series.Dataset, short, mid, long int) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("triple_ema", map[string]interface{}{"short": short, "mid": mid, "long": long}, d.Len(), sig, err, start)
	}()

	if short < 1 || mid < 1 || long < 1 {
		return signal.Hold, fmt.Errorf("triple EMA periods must be at least 1, got %d/%d/%d", short, mid, long)
	}
	if short >= mid || mid >= long {
		return signal.Hold, fmt.Errorf("triple EMA periods must be strictly increasing, got %d/%d/%d", short, mid, long)
	}
	if err := d.CheckLen(long + 1); err != nil {
		return signal.Hold, fmt.Errorf("triple EMA: %w", err)
	}
	s, err := ma.EMA(d.Close, short)
	if err != nil {
		return signal.Hold, fmt.Errorf("triple EMA: %w", err)
	}
	m, err := ma.EMA(d.Close, mid)
	if err != nil {
		return signal.Hold, fmt.Errorf("triple EMA: %w", err)
	}
	l, err := ma.EMA(d.Close, long)
	if err != nil {
		return signal.Hold, fmt.Errorf("triple EMA: %w", err)
	}
	return signal.TripleCross(
		s.Last(), m.Last(), l.Last(),
		s.Prev(), m.Prev(), l.Prev(),
	), nil
}

// AwesomeSignal fires on the awesome oscillator crossing zero, with the
// wide conviction codes.
func (e *Engine) AwesomeSignal(d *series.Dataset, short, long int) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("awesome", map[string]interface{}{"short": short, "long": long}, d.Len(), sig, err, start)
	}()

	res, err := AwesomeOscillator(d, short, long)
	if err != nil {
		return signal.Hold, err
	}
	return signal.WideZeroCross(res.Current, res.Previous), nil
}

// SARSignal requires three consecutive SAR points strictly under the lows
// to buy, or strictly over the highs to sell.
func (e *Engine) SARSignal(d *series.Dataset, sp SARParams) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("sar", map[string]interface{}{"accel": sp.Accel, "max": sp.Max}, d.Len(), sig, err, start)
	}()

	// Index 0 of the SAR output is lookback fill, so three real points
	// need four bars.
	if err := d.CheckLen(4); err != nil {
		return signal.Hold, fmt.Errorf("SAR: %w", err)
	}
	sar, err := e.provider.SAR(d, sp)
	if err != nil {
		return signal.Hold, err
	}
	return signal.SARFlip(sar, d.High, d.Low)
}

// SARExtSignal is SARSignal on the extended SAR.
func (e *Engine) SARExtSignal(d *series.Dataset, sp SARExtParams) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("fsar", nil, d.Len(), sig, err, start)
	}()

	if err := d.CheckLen(4); err != nil {
		return signal.Hold, fmt.Errorf("SARExt: %w", err)
	}
	sar, err := e.provider.SARExt(d, sp)
	if err != nil {
		return signal.Hold, err
	}
	return signal.SARFlip(sar, d.High, d.Low)
}

// OBVSignal confirms a move with three strictly monotonic OBV samples.
func (e *Engine) OBVSignal(d *series.Dataset) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("obv", nil, d.Len(), sig, err, start)
	}()

	obv, err := OBV(d)
	if err != nil {
		return signal.Hold, err
	}
	sig, err = signal.Monotonic3(obv)
	if err != nil {
		return signal.Hold, fmt.Errorf("OBV: %w", err)
	}
	return sig, nil
}

// HTSineSignal fires on the sine crossing the lead sine.
func (e *Engine) HTSineSignal(d *series.Dataset) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("ht_sine", nil, d.Len(), sig, err, start)
	}()

	if err := d.CheckLen(htLookback + 2); err != nil {
		return signal.Hold, fmt.Errorf("HTSine: %w", err)
	}
	sine, lead, err := e.provider.HTSine(d)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Crossover(sine.Last(), lead.Last(), sine.Prev(), lead.Prev()), nil
}

// HTTrendlineSignal fires on the close crossing the instantaneous
// trendline.
func (e *Engine) HTTrendlineSignal(d *series.Dataset) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("ht_trendline", nil, d.Len(), sig, err, start)
	}()

	if err := d.CheckLen(htLookback + 2); err != nil {
		return signal.Hold, fmt.Errorf("HTTrendline: %w", err)
	}
	tl, err := e.provider.HTTrendline(d)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Crossover(d.Close.Last(), tl.Last(), d.Close.Prev(), tl.Prev()), nil
}

// HTTrendModeSignal leans long while the Hilbert mode flag reads trend.
func (e *Engine) HTTrendModeSignal(d *series.Dataset) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("ht_trendmode", nil, d.Len(), sig, err, start)
	}()

	mode, err := e.provider.HTTrendMode(d)
	if err != nil {
		return signal.Hold, err
	}
	return signal.TrendMode(mode.Last()), nil
}

// TrendModeRun counts how many consecutive trailing bars share the current
// Hilbert trend-vs-cycle mode.
func (e *Engine) TrendModeRun(d *series.Dataset) (run int, err error) {
	start := time.Now()
	defer func() {
		e.observed("ht_trendmode", map[string]interface{}{"output": "run"}, d.Len(), run, err, start)
	}()

	mode, err := e.provider.HTTrendMode(d)
	if err != nil {
		return 0, err
	}
	return signal.RunLength(mode), nil
}

// MMISignal gates trend-following by the market meanness index: below the
// threshold buys, at or above holds. A non-positive threshold means the
// default cutoff of 75.
func (e *Engine) MMISignal(d *series.Dataset, threshold float64) (sig signal.Signal, err error) {
	start := time.Now()
	if threshold <= 0 {
		threshold = signal.MMIThreshold
	}
	defer func() {
		e.observed("mmi", map[string]interface{}{"threshold": threshold}, d.Len(), sig, err, start)
	}()

	mmi, err := MMI(d)
	if err != nil {
		return signal.Hold, err
	}
	return signal.Regime(mmi, threshold), nil
}

// ElderRaySignal buys when bears weaken inside an uptrend, sells when bulls
// weaken inside a downtrend.
func (e *Engine) ElderRaySignal(d *series.Dataset, mp MACDParams, emaPeriod int) (sig signal.Signal, err error) {
	start := time.Now()
	defer func() {
		e.observed("elder_ray", map[string]interface{}{"fast": mp.Fast, "slow": mp.Slow, "signal": mp.Signal, "ema_period": emaPeriod}, d.Len(), sig, err, start)
	}()

	res, err := e.elderRay(d, mp, emaPeriod)
	if err != nil {
		return signal.Hold, err
	}
	return signal.ElderRay(res.MACD, res.Bull, res.Bear), nil
}
