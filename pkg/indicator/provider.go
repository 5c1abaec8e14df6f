package indicator

import (
	"github.com/quantward/tasignal/pkg/ma"
	"github.com/quantward/tasignal/pkg/series"
)

// MACDParams parameterizes the standard MACD computed on close prices.
type MACDParams struct {
	Fast   int
	Slow   int
	Signal int
}

// DefaultMACDParams returns the conventional 12/26/9 setup.
func DefaultMACDParams() MACDParams {
	return MACDParams{Fast: 12, Slow: 26, Signal: 9}
}

// MACDExtParams extends MACDParams with a moving-average kind per leg.
type MACDExtParams struct {
	Fast       int
	FastKind   ma.Kind
	Slow       int
	SlowKind   ma.Kind
	Signal     int
	SignalKind ma.Kind
}

// DefaultMACDExtParams returns 12/26/9 with simple averages on every leg.
func DefaultMACDExtParams() MACDExtParams {
	return MACDExtParams{
		Fast: 12, FastKind: ma.KindSMA,
		Slow: 26, SlowKind: ma.KindSMA,
		Signal: 9, SignalKind: ma.KindSMA,
	}
}

// StochParams parameterizes the slow stochastic oscillator.
type StochParams struct {
	FastK     int
	SlowK     int
	SlowKKind ma.Kind
	SlowD     int
	SlowDKind ma.Kind
}

// DefaultStochParams returns the 5/3/3 slow stochastic with SMA smoothing.
func DefaultStochParams() StochParams {
	return StochParams{FastK: 5, SlowK: 3, SlowKKind: ma.KindSMA, SlowD: 3, SlowDKind: ma.KindSMA}
}

// FastStochParams parameterizes the fast stochastic oscillator.
type FastStochParams struct {
	FastK     int
	FastD     int
	FastDKind ma.Kind
}

// DefaultFastStochParams returns the 5/3 fast stochastic with SMA smoothing.
func DefaultFastStochParams() FastStochParams {
	return FastStochParams{FastK: 5, FastD: 3, FastDKind: ma.KindSMA}
}

// BollingerParams parameterizes Bollinger bands on close prices.
type BollingerParams struct {
	Period  int
	DevUp   float64
	DevDown float64
	Kind    ma.Kind
}

// DefaultBollingerParams returns 20-period bands at two standard deviations.
func DefaultBollingerParams() BollingerParams {
	return BollingerParams{Period: 20, DevUp: 2, DevDown: 2, Kind: ma.KindSMA}
}

// SARParams parameterizes the parabolic SAR.
type SARParams struct {
	Accel float64
	Max   float64
}

// DefaultSARParams returns Wilder's 0.02/0.2 acceleration setup.
func DefaultSARParams() SARParams {
	return SARParams{Accel: 0.02, Max: 0.2}
}

// SARExtParams parameterizes the extended parabolic SAR with independent
// long and short acceleration schedules.
type SARExtParams struct {
	Start           float64
	OffsetOnReverse float64
	AccelInitLong   float64
	AccelLong       float64
	AccelMaxLong    float64
	AccelInitShort  float64
	AccelShort      float64
	AccelMaxShort   float64
}

// DefaultSARExtParams mirrors DefaultSARParams on both sides.
func DefaultSARExtParams() SARExtParams {
	return SARExtParams{
		AccelInitLong: 0.02, AccelLong: 0.02, AccelMaxLong: 0.2,
		AccelInitShort: 0.02, AccelShort: 0.02, AccelMaxShort: 0.2,
	}
}

// UltOscParams holds the three averaging windows of the ultimate oscillator.
type UltOscParams struct {
	P1 int
	P2 int
	P3 int
}

// DefaultUltOscParams returns Williams' 7/14/28 windows.
func DefaultUltOscParams() UltOscParams {
	return UltOscParams{P1: 7, P2: 14, P3: 28}
}

// Provider supplies the indicator series the engine does not compute natively.
// Implementations validate input length against each indicator's own warm-up
// requirement and return series aligned index-for-index with the dataset.
//
// The stock implementation is TalibProvider. Callers that need different
// numerics (a remote service, a columnar store, recorded fixtures) implement
// this interface and hand it to New via WithProvider.
type Provider interface {
	ATR(d *series.Dataset, period int) (series.Series, error)
	ADX(d *series.Dataset, period int) (series.Series, error)
	PlusDI(d *series.Dataset, period int) (series.Series, error)
	MinusDI(d *series.Dataset, period int) (series.Series, error)
	BollingerBands(d *series.Dataset, p BollingerParams) (upper, middle, lower series.Series, err error)
	MACD(d *series.Dataset, p MACDParams) (macd, signal, hist series.Series, err error)
	MACDExt(d *series.Dataset, p MACDExtParams) (macd, signal, hist series.Series, err error)
	RSI(d *series.Dataset, period int) (series.Series, error)
	Stochastic(d *series.Dataset, p StochParams) (k, dLine series.Series, err error)
	FastStochastic(d *series.Dataset, p FastStochParams) (k, dLine series.Series, err error)
	SAR(d *series.Dataset, p SARParams) (series.Series, error)
	SARExt(d *series.Dataset, p SARExtParams) (series.Series, error)
	CCI(d *series.Dataset, period int) (series.Series, error)
	CMO(d *series.Dataset, period int) (series.Series, error)
	AroonOsc(d *series.Dataset, period int) (series.Series, error)
	ROC(d *series.Dataset, period int) (series.Series, error)
	WilliamsR(d *series.Dataset, period int) (series.Series, error)
	UltOsc(d *series.Dataset, p UltOscParams) (series.Series, error)
	MFI(d *series.Dataset, period int) (series.Series, error)
	HTSine(d *series.Dataset) (sine, lead series.Series, err error)
	HTTrendline(d *series.Dataset) (series.Series, error)
	HTTrendMode(d *series.Dataset) (series.Series, error)
}
