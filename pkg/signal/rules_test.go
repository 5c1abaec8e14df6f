package signal

import (
	"errors"
	"testing"

	"github.com/quantward/tasignal/pkg/series"
)

func TestThreshold(t *testing.T) {
	b := Band{Low: 20, High: 80}

	cases := []struct {
		v    float64
		dir  Direction
		want Signal
	}{
		{85, Contrarian, Sell},
		{80, Contrarian, Sell}, // boundary counts
		{15, Contrarian, Buy},
		{20, Contrarian, Buy},
		{50, Contrarian, Hold},
		{85, Confirming, Buy},
		{15, Confirming, Sell},
		{50, Confirming, Hold},
	}
	for _, tc := range cases {
		if got := Threshold(tc.v, b, tc.dir); got != tc.want {
			t.Errorf("Threshold(%v, dir=%v) = %v, want %v", tc.v, tc.dir, got, tc.want)
		}
	}
}

func TestBandCross(t *testing.T) {
	b := Band{Low: 40, High: 70}

	cases := []struct {
		cur, prev float64
		want      Signal
	}{
		{71, 69, Sell}, // crossed up through the high bound
		{72, 71, Hold}, // already above, no crossing
		{39, 41, Buy},  // crossed down through the low bound
		{38, 39, Hold}, // already below
		{50, 50, Hold},
		{70, 69, Hold}, // touching the bound is not a crossing
	}
	for _, tc := range cases {
		if got := BandCross(tc.cur, tc.prev, b); got != tc.want {
			t.Errorf("BandCross(%v, %v) = %v, want %v", tc.cur, tc.prev, got, tc.want)
		}
	}
}

func TestCrossover(t *testing.T) {
	cases := []struct {
		curA, curB, prevA, prevB float64
		want                     Signal
	}{
		{11, 10, 9, 10, Buy},
		{9, 10, 11, 10, Sell},
		{11, 10, 11, 10, Hold}, // no transition
		{10, 10, 9, 10, Hold},  // equal now, not a cross
		{11, 10, 10, 10, Buy},  // rising off equality counts
	}
	for _, tc := range cases {
		if got := Crossover(tc.curA, tc.curB, tc.prevA, tc.prevB); got != tc.want {
			t.Errorf("Crossover(%v,%v,%v,%v) = %v, want %v", tc.curA, tc.curB, tc.prevA, tc.prevB, got, tc.want)
		}
	}
}

// Swapping the short/long labels must flip buy and sell, never reproduce
// the same fired signal.
func TestCrossover_Antisymmetric(t *testing.T) {
	cases := [][4]float64{
		{11, 10, 9, 10},
		{9, 10, 11, 10},
		{11, 10, 10, 10},
		{9.5, 10, 10.5, 10},
	}
	for _, c := range cases {
		direct := Crossover(c[0], c[1], c[2], c[3])
		swapped := Crossover(c[1], c[0], c[3], c[2])
		if direct == Hold {
			t.Errorf("case %v expected a fired signal", c)
			continue
		}
		if swapped != -direct {
			t.Errorf("case %v: direct %v, swapped %v; want mirror", c, direct, swapped)
		}
	}
}

func TestZeroCross(t *testing.T) {
	cases := []struct {
		cur, prev float64
		want      Signal
	}{
		{0.5, -0.5, Buy},
		{0.5, 0, Buy},
		{-0.5, 0.2, Sell},
		{-0.5, 0, Sell},
		{0.5, 0.2, Hold},
		{0, -1, Hold}, // zero is not a completed cross
	}
	for _, tc := range cases {
		if got := ZeroCross(tc.cur, tc.prev); got != tc.want {
			t.Errorf("ZeroCross(%v, %v) = %v, want %v", tc.cur, tc.prev, got, tc.want)
		}
	}

	if got := WideZeroCross(0.5, -0.5); got != StrongBuy {
		t.Errorf("WideZeroCross up = %v, want StrongBuy", got)
	}
	if got := WideZeroCross(-0.5, 0.5); got != StrongSell {
		t.Errorf("WideZeroCross down = %v, want StrongSell", got)
	}
	if got := WideZeroCross(0.5, 0.2); got != Hold {
		t.Errorf("WideZeroCross flat = %v, want Hold", got)
	}
}

func TestDualBand(t *testing.T) {
	b := Band{Low: 10, High: 90}

	if got := DualBand(95, 92, b); got != Sell {
		t.Errorf("both above high: %v, want Sell", got)
	}
	if got := DualBand(95, 85, b); got != Hold {
		t.Errorf("only one above high: %v, want Hold", got)
	}
	if got := DualBand(5, 8, b); got != Buy {
		t.Errorf("both below low: %v, want Buy", got)
	}
	if got := DualBand(50, 50, b); got != Hold {
		t.Errorf("neutral: %v, want Hold", got)
	}
}

func TestATRBreakout(t *testing.T) {
	if got := ATRBreakout(105, 100, 4); got != Buy {
		t.Errorf("up breakout: %v, want Buy", got)
	}
	if got := ATRBreakout(95, 100, 4); got != Sell {
		t.Errorf("down breakout: %v, want Sell", got)
	}
	if got := ATRBreakout(103, 100, 4); got != Hold {
		t.Errorf("inside range: %v, want Hold", got)
	}
	if got := ATRBreakout(104, 100, 4); got != Hold {
		t.Errorf("exactly one ATR is not a breakout: %v, want Hold", got)
	}
}

func TestBollingerTouch(t *testing.T) {
	// Close lands exactly on the lower band, previous bar inside.
	if got := BollingerTouch(95, 105, 95, 100, 105.5, 94.5); got != Buy {
		t.Errorf("lower touch: %v, want Buy", got)
	}
	if got := BollingerTouch(106, 105, 95, 100, 105.5, 94.5); got != Sell {
		t.Errorf("upper breach: %v, want Sell", got)
	}
	if got := BollingerTouch(100, 105, 95, 100, 105.5, 94.5); got != Hold {
		t.Errorf("inside: %v, want Hold", got)
	}
	// Previous bar already at the band: no transition.
	if got := BollingerTouch(94, 105, 95, 94.5, 105.5, 94.5); got != Hold {
		t.Errorf("no transition: %v, want Hold", got)
	}
}

func TestTripleCross(t *testing.T) {
	if got := TripleCross(12, 11, 10, 10.5, 11, 10); got != Buy {
		t.Errorf("bull alignment forming: %v, want Buy", got)
	}
	if got := TripleCross(12, 11, 10, 13, 12, 11); got != Hold {
		t.Errorf("already aligned: %v, want Hold", got)
	}
	if got := TripleCross(10, 11, 12, 11.5, 11, 12); got != Sell {
		t.Errorf("bear alignment forming: %v, want Sell", got)
	}
}

func TestMonotonic3(t *testing.T) {
	got, err := Monotonic3(series.Series{1, 2, 3})
	if err != nil || got != Buy {
		t.Errorf("rising: %v/%v, want Buy", got, err)
	}
	got, err = Monotonic3(series.Series{3, 2, 1})
	if err != nil || got != Sell {
		t.Errorf("falling: %v/%v, want Sell", got, err)
	}
	got, err = Monotonic3(series.Series{1, 3, 2})
	if err != nil || got != Hold {
		t.Errorf("mixed: %v/%v, want Hold", got, err)
	}
	got, err = Monotonic3(series.Series{1, 1, 2})
	if err != nil || got != Hold {
		t.Errorf("flat segment: %v/%v, want Hold", got, err)
	}

	_, err = Monotonic3(series.Series{1, 2})
	if !errors.Is(err, series.ErrInsufficientData) {
		t.Errorf("short input: got %v, want ErrInsufficientData", err)
	}
}

func TestSARFlip(t *testing.T) {
	high := series.Series{105, 106, 107}
	low := series.Series{100, 101, 102}

	got, err := SARFlip(series.Series{99, 99.5, 100.5}, high, low)
	if err != nil || got != Buy {
		t.Errorf("sar under lows: %v/%v, want Buy", got, err)
	}
	got, err = SARFlip(series.Series{108, 108, 109}, high, low)
	if err != nil || got != Sell {
		t.Errorf("sar over highs: %v/%v, want Sell", got, err)
	}
	got, err = SARFlip(series.Series{99, 108, 100}, high, low)
	if err != nil || got != Hold {
		t.Errorf("mixed sar: %v/%v, want Hold", got, err)
	}

	_, err = SARFlip(series.Series{1, 2}, high, low)
	if !errors.Is(err, series.ErrInsufficientData) {
		t.Errorf("short input: got %v, want ErrInsufficientData", err)
	}
}

func TestRegime(t *testing.T) {
	if got := Regime(60, 75); got != Buy {
		t.Errorf("trending regime: %v, want Buy", got)
	}
	if got := Regime(80, 75); got != Hold {
		t.Errorf("mean regime: %v, want Hold", got)
	}
	if got := Regime(75, 75); got != Hold {
		t.Errorf("at cutoff: %v, want Hold", got)
	}
}

func TestTrendModeAndRunLength(t *testing.T) {
	if got := TrendMode(1); got != Buy {
		t.Errorf("trend flag: %v, want Buy", got)
	}
	if got := TrendMode(0); got != Hold {
		t.Errorf("cycle flag: %v, want Hold", got)
	}

	if got := RunLength(series.Series{1, 1, 0, 1, 1, 1}); got != 3 {
		t.Errorf("RunLength = %d, want 3", got)
	}
	if got := RunLength(series.Series{0, 1}); got != 1 {
		t.Errorf("RunLength = %d, want 1", got)
	}
	if got := RunLength(nil); got != 0 {
		t.Errorf("RunLength(nil) = %d, want 0", got)
	}
	if got := RunLength(series.Series{2, 2}); got != 2 {
		t.Errorf("RunLength = %d, want 2", got)
	}
}

func TestElderRay(t *testing.T) {
	if got := ElderRay(0.5, 2, -0.5); got != Buy {
		t.Errorf("uptrend pullback: %v, want Buy", got)
	}
	if got := ElderRay(-0.5, 0.5, -2); got != Sell {
		t.Errorf("downtrend rally: %v, want Sell", got)
	}
	if got := ElderRay(0.5, 2, 0.5); got != Hold {
		t.Errorf("no pullback: %v, want Hold", got)
	}
	if got := ElderRay(0, 2, -0.5); got != Hold {
		t.Errorf("flat macd: %v, want Hold", got)
	}
}

func TestSignal_String(t *testing.T) {
	cases := map[Signal]string{
		Buy:        "buy",
		Sell:       "sell",
		Hold:       "hold",
		StrongBuy:  "strong_buy",
		StrongSell: "strong_sell",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
