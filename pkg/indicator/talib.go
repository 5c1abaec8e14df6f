package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/quantward/tasignal/pkg/ma"
	"github.com/quantward/tasignal/pkg/series"
)

// Hilbert-transform indicators need this many bars before the first output.
const htLookback = 63

// TalibProvider computes delegated indicators with go-talib. Outputs keep
// go-talib's alignment: one value per input bar, zero-filled over the
// indicator's lookback. It is stateless and safe for concurrent use.
type TalibProvider struct{}

// NewTalibProvider returns the stock go-talib backed provider.
func NewTalibProvider() *TalibProvider {
	return &TalibProvider{}
}

// maType maps a moving-average kind onto go-talib's enum.
func maType(kind ma.Kind) (talib.MaType, error) {
	switch kind {
	case ma.KindSMA:
		return talib.SMA, nil
	case ma.KindEMA:
		return talib.EMA, nil
	case ma.KindWMA:
		return talib.WMA, nil
	case ma.KindDEMA:
		return talib.DEMA, nil
	case ma.KindTEMA:
		return talib.TEMA, nil
	case ma.KindTRIMA:
		return talib.TRIMA, nil
	case ma.KindKAMA:
		return talib.KAMA, nil
	case ma.KindMAMA:
		return talib.MAMA, nil
	case ma.KindT3:
		return talib.T3MA, nil
	default:
		return 0, fmt.Errorf("%w: %d", ma.ErrUnknownKind, int(kind))
	}
}

// check validates the dataset shape, the period, and the minimum bar count
// an indicator needs before its first defined output.
func check(name string, d *series.Dataset, period, min int) error {
	if period < 1 {
		return fmt.Errorf("%s period must be at least 1, got %d", name, period)
	}
	if err := d.CheckLen(min); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (p *TalibProvider) ATR(d *series.Dataset, period int) (series.Series, error) {
	if err := check("ATR", d, period, period+1); err != nil {
		return nil, err
	}
	return talib.Atr(d.High, d.Low, d.Close, period), nil
}

// ADX smooths twice, so it needs two full periods before the first output.
func (p *TalibProvider) ADX(d *series.Dataset, period int) (series.Series, error) {
	if err := check("ADX", d, period, 2*period); err != nil {
		return nil, err
	}
	return talib.Adx(d.High, d.Low, d.Close, period), nil
}

func (p *TalibProvider) PlusDI(d *series.Dataset, period int) (series.Series, error) {
	if err := check("PlusDI", d, period, period+1); err != nil {
		return nil, err
	}
	return talib.PlusDI(d.High, d.Low, d.Close, period), nil
}

func (p *TalibProvider) MinusDI(d *series.Dataset, period int) (series.Series, error) {
	if err := check("MinusDI", d, period, period+1); err != nil {
		return nil, err
	}
	return talib.MinusDI(d.High, d.Low, d.Close, period), nil
}

func (p *TalibProvider) BollingerBands(d *series.Dataset, bp BollingerParams) (series.Series, series.Series, series.Series, error) {
	if bp.DevUp <= 0 || bp.DevDown <= 0 {
		return nil, nil, nil, fmt.Errorf("BollingerBands deviations must be positive, got up=%v down=%v", bp.DevUp, bp.DevDown)
	}
	if err := check("BollingerBands", d, bp.Period, bp.Period); err != nil {
		return nil, nil, nil, err
	}
	mt, err := maType(bp.Kind)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("BollingerBands: %w", err)
	}
	upper, middle, lower := talib.BBands(d.Close, bp.Period, bp.DevUp, bp.DevDown, mt)
	return upper, middle, lower, nil
}

func (p *TalibProvider) MACD(d *series.Dataset, mp MACDParams) (series.Series, series.Series, series.Series, error) {
	if err := checkMACDPeriods("MACD", mp.Fast, mp.Slow, mp.Signal); err != nil {
		return nil, nil, nil, err
	}
	if err := d.CheckLen(mp.Slow + mp.Signal - 1); err != nil {
		return nil, nil, nil, fmt.Errorf("MACD: %w", err)
	}
	macd, sig, hist := talib.Macd(d.Close, mp.Fast, mp.Slow, mp.Signal)
	return macd, sig, hist, nil
}

func (p *TalibProvider) MACDExt(d *series.Dataset, mp MACDExtParams) (series.Series, series.Series, series.Series, error) {
	if err := checkMACDPeriods("MACDExt", mp.Fast, mp.Slow, mp.Signal); err != nil {
		return nil, nil, nil, err
	}
	if err := d.CheckLen(mp.Slow + mp.Signal - 1); err != nil {
		return nil, nil, nil, fmt.Errorf("MACDExt: %w", err)
	}
	fastType, err := maType(mp.FastKind)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("MACDExt fast leg: %w", err)
	}
	slowType, err := maType(mp.SlowKind)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("MACDExt slow leg: %w", err)
	}
	sigType, err := maType(mp.SignalKind)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("MACDExt signal leg: %w", err)
	}
	macd, sig, hist := talib.MacdExt(d.Close, mp.Fast, fastType, mp.Slow, slowType, mp.Signal, sigType)
	return macd, sig, hist, nil
}

func checkMACDPeriods(name string, fast, slow, signal int) error {
	if fast < 1 || slow < 1 || signal < 1 {
		return fmt.Errorf("%s periods must be at least 1, got fast=%d slow=%d signal=%d", name, fast, slow, signal)
	}
	if fast >= slow {
		return fmt.Errorf("%s fast period %d must be shorter than slow period %d", name, fast, slow)
	}
	return nil
}

func (p *TalibProvider) RSI(d *series.Dataset, period int) (series.Series, error) {
	if err := check("RSI", d, period, period+1); err != nil {
		return nil, err
	}
	return talib.Rsi(d.Close, period), nil
}

func (p *TalibProvider) Stochastic(d *series.Dataset, sp StochParams) (series.Series, series.Series, error) {
	if sp.FastK < 1 || sp.SlowK < 1 || sp.SlowD < 1 {
		return nil, nil, fmt.Errorf("Stochastic periods must be at least 1, got fastK=%d slowK=%d slowD=%d", sp.FastK, sp.SlowK, sp.SlowD)
	}
	if err := d.CheckLen(sp.FastK + sp.SlowK + sp.SlowD - 2); err != nil {
		return nil, nil, fmt.Errorf("Stochastic: %w", err)
	}
	kType, err := maType(sp.SlowKKind)
	if err != nil {
		return nil, nil, fmt.Errorf("Stochastic %%K smoothing: %w", err)
	}
	dType, err := maType(sp.SlowDKind)
	if err != nil {
		return nil, nil, fmt.Errorf("Stochastic %%D smoothing: %w", err)
	}
	k, dLine := talib.Stoch(d.High, d.Low, d.Close, sp.FastK, sp.SlowK, kType, sp.SlowD, dType)
	return k, dLine, nil
}

func (p *TalibProvider) FastStochastic(d *series.Dataset, sp FastStochParams) (series.Series, series.Series, error) {
	if sp.FastK < 1 || sp.FastD < 1 {
		return nil, nil, fmt.Errorf("FastStochastic periods must be at least 1, got fastK=%d fastD=%d", sp.FastK, sp.FastD)
	}
	if err := d.CheckLen(sp.FastK + sp.FastD - 1); err != nil {
		return nil, nil, fmt.Errorf("FastStochastic: %w", err)
	}
	dType, err := maType(sp.FastDKind)
	if err != nil {
		return nil, nil, fmt.Errorf("FastStochastic %%D smoothing: %w", err)
	}
	k, dLine := talib.StochF(d.High, d.Low, d.Close, sp.FastK, sp.FastD, dType)
	return k, dLine, nil
}

func (p *TalibProvider) SAR(d *series.Dataset, sp SARParams) (series.Series, error) {
	if sp.Accel <= 0 || sp.Max < sp.Accel {
		return nil, fmt.Errorf("SAR needs 0 < accel <= max, got accel=%v max=%v", sp.Accel, sp.Max)
	}
	if err := d.CheckLen(2); err != nil {
		return nil, fmt.Errorf("SAR: %w", err)
	}
	return talib.Sar(d.High, d.Low, sp.Accel, sp.Max), nil
}

func (p *TalibProvider) SARExt(d *series.Dataset, sp SARExtParams) (series.Series, error) {
	if sp.AccelInitLong < 0 || sp.AccelLong < 0 || sp.AccelMaxLong < 0 ||
		sp.AccelInitShort < 0 || sp.AccelShort < 0 || sp.AccelMaxShort < 0 {
		return nil, fmt.Errorf("SARExt accelerations must be non-negative: %+v", sp)
	}
	if err := d.CheckLen(2); err != nil {
		return nil, fmt.Errorf("SARExt: %w", err)
	}
	out := talib.SarExt(d.High, d.Low,
		sp.Start, sp.OffsetOnReverse,
		sp.AccelInitLong, sp.AccelLong, sp.AccelMaxLong,
		sp.AccelInitShort, sp.AccelShort, sp.AccelMaxShort)
	return out, nil
}

func (p *TalibProvider) CCI(d *series.Dataset, period int) (series.Series, error) {
	if err := check("CCI", d, period, period); err != nil {
		return nil, err
	}
	return talib.Cci(d.High, d.Low, d.Close, period), nil
}

func (p *TalibProvider) CMO(d *series.Dataset, period int) (series.Series, error) {
	if err := check("CMO", d, period, period+1); err != nil {
		return nil, err
	}
	return talib.Cmo(d.Close, period), nil
}

func (p *TalibProvider) AroonOsc(d *series.Dataset, period int) (series.Series, error) {
	if err := check("AroonOsc", d, period, period+1); err != nil {
		return nil, err
	}
	return talib.AroonOsc(d.High, d.Low, period), nil
}

func (p *TalibProvider) ROC(d *series.Dataset, period int) (series.Series, error) {
	if err := check("ROC", d, period, period+1); err != nil {
		return nil, err
	}
	return talib.Roc(d.Close, period), nil
}

func (p *TalibProvider) WilliamsR(d *series.Dataset, period int) (series.Series, error) {
	if err := check("WilliamsR", d, period, period); err != nil {
		return nil, err
	}
	return talib.WillR(d.High, d.Low, d.Close, period), nil
}

func (p *TalibProvider) UltOsc(d *series.Dataset, up UltOscParams) (series.Series, error) {
	if up.P1 < 1 || up.P2 < 1 || up.P3 < 1 {
		return nil, fmt.Errorf("UltOsc periods must be at least 1, got %d/%d/%d", up.P1, up.P2, up.P3)
	}
	longest := up.P1
	if up.P2 > longest {
		longest = up.P2
	}
	if up.P3 > longest {
		longest = up.P3
	}
	if err := d.CheckLen(longest + 1); err != nil {
		return nil, fmt.Errorf("UltOsc: %w", err)
	}
	return talib.UltOsc(d.High, d.Low, d.Close, up.P1, up.P2, up.P3), nil
}

func (p *TalibProvider) MFI(d *series.Dataset, period int) (series.Series, error) {
	if err := check("MFI", d, period, period+1); err != nil {
		return nil, err
	}
	return talib.Mfi(d.High, d.Low, d.Close, d.Volume, period), nil
}

func (p *TalibProvider) HTSine(d *series.Dataset) (series.Series, series.Series, error) {
	if err := d.CheckLen(htLookback + 1); err != nil {
		return nil, nil, fmt.Errorf("HTSine: %w", err)
	}
	sine, lead := talib.HtSine(d.Close)
	return sine, lead, nil
}

func (p *TalibProvider) HTTrendline(d *series.Dataset) (series.Series, error) {
	if err := d.CheckLen(htLookback + 1); err != nil {
		return nil, fmt.Errorf("HTTrendline: %w", err)
	}
	return talib.HtTrendline(d.Close), nil
}

func (p *TalibProvider) HTTrendMode(d *series.Dataset) (series.Series, error) {
	if err := d.CheckLen(htLookback + 1); err != nil {
		return nil, fmt.Errorf("HTTrendMode: %w", err)
	}
	return talib.HtTrendMode(d.Close), nil
}
