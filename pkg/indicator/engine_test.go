package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantward/tasignal/pkg/ma"
	"github.com/quantward/tasignal/pkg/observe"
	"github.com/quantward/tasignal/pkg/series"
	"github.com/quantward/tasignal/pkg/signal"
)

// barsFromCloses builds a dataset whose highs and lows bracket each close
// by one point.
func barsFromCloses(t *testing.T, closes ...float64) *series.Dataset {
	t.Helper()
	n := len(closes)
	open := make([]float64, n)
	high := make([]float64, n)
	low := make([]float64, n)
	vol := make([]float64, n)
	for i, c := range closes {
		open[i] = c
		high[i] = c + 1
		low[i] = c - 1
		vol[i] = 100
	}
	d, err := series.NewDataset(open, high, low, closes, vol)
	require.NoError(t, err)
	return d
}

// barsHL builds a dataset from explicit highs and lows, with opens and
// closes at the midpoint.
func barsHL(t *testing.T, highs, lows []float64) *series.Dataset {
	t.Helper()
	require.Equal(t, len(highs), len(lows))
	n := len(highs)
	open := make([]float64, n)
	close := make([]float64, n)
	vol := make([]float64, n)
	for i := range highs {
		mid := (highs[i] + lows[i]) / 2
		open[i] = mid
		close[i] = mid
		vol[i] = 100
	}
	d, err := series.NewDataset(open, highs, lows, close, vol)
	require.NoError(t, err)
	return d
}

// barsWithVolume builds a dataset with explicit per-bar volume.
func barsWithVolume(t *testing.T, closes, volumes []float64) *series.Dataset {
	t.Helper()
	require.Equal(t, len(closes), len(volumes))
	n := len(closes)
	open := make([]float64, n)
	high := make([]float64, n)
	low := make([]float64, n)
	for i, c := range closes {
		open[i] = c
		high[i] = c + 1
		low[i] = c - 1
	}
	d, err := series.NewDataset(open, high, low, closes, volumes)
	require.NoError(t, err)
	return d
}

// waveCloses generates a deterministic oscillating price path.
func waveCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)/5) + float64(i%7)
	}
	return closes
}

// stubProvider returns canned series, standing in for go-talib where a test
// needs full control over the delegated values. line backs every
// single-series indicator.
type stubProvider struct {
	line                 series.Series
	upper, middle, lower series.Series
	macd, macdSig, hist  series.Series
	k, dLine             series.Series
	sine, lead           series.Series
	err                  error
}

func (s *stubProvider) ATR(d *series.Dataset, period int) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) ADX(d *series.Dataset, period int) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) PlusDI(d *series.Dataset, period int) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) MinusDI(d *series.Dataset, period int) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) BollingerBands(d *series.Dataset, p BollingerParams) (series.Series, series.Series, series.Series, error) {
	return s.upper, s.middle, s.lower, s.err
}

func (s *stubProvider) MACD(d *series.Dataset, p MACDParams) (series.Series, series.Series, series.Series, error) {
	return s.macd, s.macdSig, s.hist, s.err
}

func (s *stubProvider) MACDExt(d *series.Dataset, p MACDExtParams) (series.Series, series.Series, series.Series, error) {
	return s.macd, s.macdSig, s.hist, s.err
}

func (s *stubProvider) RSI(d *series.Dataset, period int) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) Stochastic(d *series.Dataset, p StochParams) (series.Series, series.Series, error) {
	return s.k, s.dLine, s.err
}

func (s *stubProvider) FastStochastic(d *series.Dataset, p FastStochParams) (series.Series, series.Series, error) {
	return s.k, s.dLine, s.err
}

func (s *stubProvider) SAR(d *series.Dataset, p SARParams) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) SARExt(d *series.Dataset, p SARExtParams) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) CCI(d *series.Dataset, period int) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) CMO(d *series.Dataset, period int) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) AroonOsc(d *series.Dataset, period int) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) ROC(d *series.Dataset, period int) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) WilliamsR(d *series.Dataset, period int) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) UltOsc(d *series.Dataset, p UltOscParams) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) MFI(d *series.Dataset, period int) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) HTSine(d *series.Dataset) (series.Series, series.Series, error) {
	return s.sine, s.lead, s.err
}

func (s *stubProvider) HTTrendline(d *series.Dataset) (series.Series, error) {
	return s.line, s.err
}

func (s *stubProvider) HTTrendMode(d *series.Dataset) (series.Series, error) {
	return s.line, s.err
}

// recorder captures every observation record.
type recorder struct {
	records []observe.Record
}

func (r *recorder) Observe(rec observe.Record) {
	r.records = append(r.records, rec)
}

func (r *recorder) last(t *testing.T) observe.Record {
	t.Helper()
	require.NotEmpty(t, r.records)
	return r.records[len(r.records)-1]
}

func TestNewDefaults(t *testing.T) {
	eng := New()
	if _, ok := eng.Provider().(*TalibProvider); !ok {
		t.Fatalf("default provider = %T, want *TalibProvider", eng.Provider())
	}
}

func TestWithProviderNilIgnored(t *testing.T) {
	eng := New(WithProvider(nil), WithObserver(nil))
	require.NotNil(t, eng.Provider())
}

// Strictly rising closes pin RSI at 100, so a band-cross evaluation never
// fires at any prefix length.
func TestRSISignalRisingClosesHoldsThroughout(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	eng := New()
	for n := 16; n <= 20; n++ {
		d := barsFromCloses(t, closes[:n]...)
		sig, err := eng.RSISignal(d, 14, signal.Band{})
		require.NoError(t, err)
		assert.Equal(t, signal.Hold, sig, "n=%d", n)
	}
}

// A close landing exactly on the lower band, having been inside on the
// prior bar, is a buy.
func TestBollingerSignalLowerTouchBuys(t *testing.T) {
	closes := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 8}
	d := barsFromCloses(t, closes...)

	n := len(closes)
	flat := func(v float64) series.Series {
		s := make(series.Series, n)
		for i := range s {
			s[i] = v
		}
		return s
	}
	stub := &stubProvider{upper: flat(12), middle: flat(10), lower: flat(8)}

	eng := New(WithProvider(stub))
	sig, err := eng.BollingerSignal(d, BollingerParams{Period: 10, DevUp: 2, DevDown: 2, Kind: ma.KindSMA})
	require.NoError(t, err)
	assert.Equal(t, signal.Buy, sig)
}

func TestBollingerSignalInsideHolds(t *testing.T) {
	closes := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 9}
	d := barsFromCloses(t, closes...)

	n := len(closes)
	flat := func(v float64) series.Series {
		s := make(series.Series, n)
		for i := range s {
			s[i] = v
		}
		return s
	}
	stub := &stubProvider{upper: flat(12), middle: flat(10), lower: flat(8)}

	eng := New(WithProvider(stub))
	sig, err := eng.BollingerSignal(d, BollingerParams{Period: 10, DevUp: 2, DevDown: 2, Kind: ma.KindSMA})
	require.NoError(t, err)
	assert.Equal(t, signal.Hold, sig)
}

func TestMovingAverageFallback(t *testing.T) {
	s := series.Series{1, 2, 3, 4, 5}

	t.Run("rejected without opt-in", func(t *testing.T) {
		eng := New()
		_, err := eng.MovingAverage(s, ma.Kind(99), 3)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ma.ErrUnknownKind))
	})

	t.Run("substitutes SMA with opt-in", func(t *testing.T) {
		rec := &recorder{}
		eng := New(WithSMAFallback(), WithObserver(rec))
		out, err := eng.MovingAverage(s, ma.Kind(99), 3)
		require.NoError(t, err)

		want, err := ma.SMA(s, 3)
		require.NoError(t, err)
		require.Len(t, out, len(want))
		for i := range want {
			if !series.IsDefined(want[i]) {
				assert.False(t, series.IsDefined(out[i]), "out[%d]", i)
				continue
			}
			assert.Equal(t, want[i], out[i], "out[%d]", i)
		}

		last := rec.last(t)
		assert.Equal(t, "ma", last.Indicator)
		assert.Equal(t, "sma", last.Params["fallback"])
		assert.NoError(t, last.Err)
	})

	t.Run("known kind untouched", func(t *testing.T) {
		rec := &recorder{}
		eng := New(WithSMAFallback(), WithObserver(rec))
		_, err := eng.MovingAverage(s, ma.KindEMA, 3)
		require.NoError(t, err)
		_, present := rec.last(t).Params["fallback"]
		assert.False(t, present)
	})
}

func TestObserverReceivesRecords(t *testing.T) {
	d := barsFromCloses(t, 10, 11, 12, 13, 14)
	stub := &stubProvider{line: series.Series{0, 1, 1, 1, 1}}
	rec := &recorder{}
	eng := New(WithProvider(stub), WithObserver(rec))

	_, err := eng.ATR(d, 2)
	require.NoError(t, err)
	last := rec.last(t)
	assert.Equal(t, "atr", last.Indicator)
	assert.Equal(t, 5, last.Bars)
	assert.Equal(t, 2, last.Params["period"])
	assert.NoError(t, last.Err)
	assert.Equal(t, 1.0, last.Result)

	sig, err := eng.ATRBreakoutSignal(d, 2)
	require.NoError(t, err)
	last = rec.last(t)
	assert.Equal(t, "atr_breakout", last.Indicator)
	assert.Equal(t, sig, last.Result)
}

func TestObserverRecordsFailures(t *testing.T) {
	d := barsFromCloses(t, 10, 11)
	rec := &recorder{}
	eng := New(WithObserver(rec))

	_, err := eng.RSI(d, 14)
	require.Error(t, err)
	last := rec.last(t)
	assert.Equal(t, "rsi", last.Indicator)
	assert.Error(t, last.Err)
	assert.True(t, errors.Is(last.Err, series.ErrInsufficientData))
}

// Every signal path stays inside its documented code set on arbitrary data.
func TestSignalCodesConfined(t *testing.T) {
	d := barsFromCloses(t, waveCloses(80)...)
	eng := New()

	narrow := map[string]func() (signal.Signal, error){
		"rsi":        func() (signal.Signal, error) { return eng.RSISignal(d, 14, signal.Band{}) },
		"stochastic": func() (signal.Signal, error) { return eng.StochasticSignal(d, DefaultStochParams(), signal.Band{}) },
		"fast stochastic": func() (signal.Signal, error) {
			return eng.FastStochasticSignal(d, DefaultFastStochParams(), signal.Band{})
		},
		"cci":          func() (signal.Signal, error) { return eng.CCISignal(d, 20, signal.Band{}) },
		"cmo":          func() (signal.Signal, error) { return eng.CMOSignal(d, 14, signal.Band{}) },
		"mfi":          func() (signal.Signal, error) { return eng.MFISignal(d, 14, signal.Band{}) },
		"willr":        func() (signal.Signal, error) { return eng.WilliamsRSignal(d, 14, signal.Band{}) },
		"ultosc":       func() (signal.Signal, error) { return eng.UltOscSignal(d, DefaultUltOscParams(), signal.Band{}) },
		"roc":          func() (signal.Signal, error) { return eng.ROCSignal(d, 10, signal.Band{}) },
		"adx":          func() (signal.Signal, error) { return eng.ADXSignal(d, 14, signal.Band{}) },
		"aroonosc":     func() (signal.Signal, error) { return eng.AroonOscSignal(d, 25, signal.Band{}) },
		"stochrsi":     func() (signal.Signal, error) { return eng.StochRSISignal(d, 14, signal.Band{}) },
		"hli":          func() (signal.Signal, error) { return eng.HighLowIndexSignal(d, 10, 10, signal.Band{}) },
		"macd":         func() (signal.Signal, error) { return eng.MACDSignal(d, DefaultMACDParams()) },
		"atr breakout": func() (signal.Signal, error) { return eng.ATRBreakoutSignal(d, 14) },
		"bollinger":    func() (signal.Signal, error) { return eng.BollingerSignal(d, DefaultBollingerParams()) },
		"ema cross":    func() (signal.Signal, error) { return eng.EMACrossSignal(d, 12, 26) },
		"triple ema":   func() (signal.Signal, error) { return eng.TripleEMASignal(d, 4, 9, 18) },
		"sar":          func() (signal.Signal, error) { return eng.SARSignal(d, DefaultSARParams()) },
		"fsar":         func() (signal.Signal, error) { return eng.SARExtSignal(d, DefaultSARExtParams()) },
		"obv":          func() (signal.Signal, error) { return eng.OBVSignal(d) },
		"ht sine":      func() (signal.Signal, error) { return eng.HTSineSignal(d) },
		"ht trendline": func() (signal.Signal, error) { return eng.HTTrendlineSignal(d) },
		"ht trendmode": func() (signal.Signal, error) { return eng.HTTrendModeSignal(d) },
		"mmi":          func() (signal.Signal, error) { return eng.MMISignal(d, 0) },
		"elder ray":    func() (signal.Signal, error) { return eng.ElderRaySignal(d, DefaultMACDParams(), 13) },
	}
	for name, fn := range narrow {
		sig, err := fn()
		require.NoError(t, err, name)
		assert.Contains(t, []signal.Signal{signal.Sell, signal.Hold, signal.Buy}, sig, name)
	}

	sig, err := eng.AwesomeSignal(d, 5, 34)
	require.NoError(t, err)
	assert.Contains(t, []signal.Signal{signal.StrongSell, signal.Hold, signal.StrongBuy}, sig)

	run, err := eng.TrendModeRun(d)
	require.NoError(t, err)
	assert.Greater(t, run, 0)
}
