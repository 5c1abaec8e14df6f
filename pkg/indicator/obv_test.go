package indicator

import (
	"errors"
	"testing"

	"github.com/quantward/tasignal/pkg/series"
	"github.com/quantward/tasignal/pkg/signal"
)

func TestOBVFlatClosesCarriesSeed(t *testing.T) {
	d := barsWithVolume(t,
		[]float64{10, 10, 10, 10, 10},
		[]float64{100, 100, 100, 100, 100},
	)
	out, err := OBV(d)
	if err != nil {
		t.Fatalf("OBV: %v", err)
	}
	for i, v := range out {
		if v != 100 {
			t.Errorf("obv[%d] = %v, want 100", i, v)
		}
	}
}

func TestOBVRunningSum(t *testing.T) {
	d := barsWithVolume(t,
		[]float64{10, 11, 9, 9, 12},
		[]float64{100, 200, 50, 75, 25},
	)
	out, err := OBV(d)
	if err != nil {
		t.Fatalf("OBV: %v", err)
	}
	want := series.Series{100, 300, 250, 250, 275}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("obv[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

// Each step moves by exactly the bar's volume, in the close's direction.
func TestOBVStepProperty(t *testing.T) {
	closes := waveCloses(50)
	vols := make([]float64, len(closes))
	for i := range vols {
		vols[i] = float64(10 + i%5)
	}
	d := barsWithVolume(t, closes, vols)

	out, err := OBV(d)
	if err != nil {
		t.Fatalf("OBV: %v", err)
	}
	for i := 1; i < len(out); i++ {
		step := out[i] - out[i-1]
		switch {
		case closes[i] > closes[i-1]:
			if step != vols[i] {
				t.Errorf("step[%d] = %v, want +%v", i, step, vols[i])
			}
		case closes[i] < closes[i-1]:
			if step != -vols[i] {
				t.Errorf("step[%d] = %v, want -%v", i, step, vols[i])
			}
		default:
			if step != 0 {
				t.Errorf("step[%d] = %v, want 0", i, step)
			}
		}
	}
}

func TestOBVNilDataset(t *testing.T) {
	_, err := OBV(nil)
	if !errors.Is(err, series.ErrNilDataset) {
		t.Fatalf("err = %v, want ErrNilDataset", err)
	}
}

func TestOBVSignalMonotonic(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		vols   []float64
		want   signal.Signal
	}{
		{
			name:   "three rising steps buy",
			closes: []float64{10, 11, 12, 13},
			vols:   []float64{100, 100, 100, 100},
			want:   signal.Buy,
		},
		{
			name:   "three falling steps sell",
			closes: []float64{13, 12, 11, 10},
			vols:   []float64{100, 100, 100, 100},
			want:   signal.Sell,
		},
		{
			name:   "mixed holds",
			closes: []float64{10, 11, 10, 11},
			vols:   []float64{100, 100, 100, 100},
			want:   signal.Hold,
		},
		{
			name:   "flat tail holds",
			closes: []float64{10, 11, 11, 11},
			vols:   []float64{100, 100, 100, 100},
			want:   signal.Hold,
		},
	}

	eng := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := barsWithVolume(t, tt.closes, tt.vols)
			got, err := eng.OBVSignal(d)
			if err != nil {
				t.Fatalf("OBVSignal: %v", err)
			}
			if got != tt.want {
				t.Errorf("OBVSignal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOBVSignalTooShort(t *testing.T) {
	d := barsWithVolume(t, []float64{10, 11}, []float64{100, 100})
	_, err := New().OBVSignal(d)
	if !errors.Is(err, series.ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
}
