package indicator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantward/tasignal/pkg/series"
	"github.com/quantward/tasignal/pkg/signal"
)

func TestAwesomeOscillatorHandComputed(t *testing.T) {
	// Half-ranges per bar: 2, 3, 6, 1.
	d := barsHL(t,
		[]float64{10, 12, 18, 8},
		[]float64{6, 6, 6, 6},
	)

	res, err := AwesomeOscillator(d, 2, 3)
	require.NoError(t, err)
	// Previous over {2,3,6}: (3+6)/2 - (2+3+6)/3.
	assert.InDelta(t, 4.5-11.0/3.0, res.Previous, 1e-12)
	// Current over {2,3,6,1}: (6+1)/2 - (3+6+1)/3.
	assert.InDelta(t, 3.5-10.0/3.0, res.Current, 1e-12)
}

func TestAwesomeOscillatorDoesNotMutateDataset(t *testing.T) {
	d := barsHL(t,
		[]float64{10, 12, 18, 8},
		[]float64{6, 6, 6, 6},
	)
	high := d.High.Copy()
	low := d.Low.Copy()
	open := d.Open.Copy()
	closes := d.Close.Copy()
	vol := d.Volume.Copy()

	_, err := AwesomeOscillator(d, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, high, d.High)
	assert.Equal(t, low, d.Low)
	assert.Equal(t, open, d.Open)
	assert.Equal(t, closes, d.Close)
	assert.Equal(t, vol, d.Volume)
}

func TestAwesomeOscillatorErrors(t *testing.T) {
	d := barsHL(t, []float64{10, 12, 18, 8}, []float64{6, 6, 6, 6})

	_, err := AwesomeOscillator(d, 3, 3)
	require.Error(t, err)

	_, err = AwesomeOscillator(d, 0, 3)
	require.Error(t, err)

	// long+1 bars needed so the previous reading has a full window.
	_, err = AwesomeOscillator(d, 2, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, series.ErrInsufficientData))
}

// Half-ranges {5,5,5,1,1,9} put the oscillator below zero one bar ago and
// above zero now: an up-cross with the wide code.
func TestAwesomeSignalZeroCross(t *testing.T) {
	d := barsHL(t,
		[]float64{10, 10, 10, 2, 2, 18},
		[]float64{0, 0, 0, 0, 0, 0},
	)

	sig, err := New().AwesomeSignal(d, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, signal.StrongBuy, sig)
}

func TestAwesomeSignalNoCrossHolds(t *testing.T) {
	// Constant half-ranges keep both readings at zero.
	d := barsFromCloses(t, 10, 11, 12, 13, 14, 15)
	sig, err := New().AwesomeSignal(d, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, signal.Hold, sig)
}
