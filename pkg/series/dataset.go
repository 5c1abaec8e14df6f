package series

import "fmt"

// Dataset holds one symbol's historical bars as parallel, index-aligned
// series: index i across all five fields describes the same bar. Bars are
// chronologically ascending; ordering is the caller's contract to uphold,
// nothing here inspects timestamps.
type Dataset struct {
	Open   Series
	High   Series
	Low    Series
	Close  Series
	Volume Series
}

// NewDataset builds a Dataset from raw slices and validates its shape.
func NewDataset(open, high, low, close, volume []float64) (*Dataset, error) {
	d := &Dataset{
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: volume,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Len returns the number of bars.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Close)
}

// Validate checks that every field is non-empty and all fields are parallel.
func (d *Dataset) Validate() error {
	if d == nil {
		return ErrNilDataset
	}

	fields := []struct {
		name string
		s    Series
	}{
		{"open", d.Open},
		{"high", d.High},
		{"low", d.Low},
		{"close", d.Close},
		{"volume", d.Volume},
	}

	n := len(d.Open)
	for _, f := range fields {
		if len(f.s) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptySeries, f.name)
		}
		if len(f.s) != n {
			return fmt.Errorf("%w: %s has %d bars, open has %d", ErrLengthMismatch, f.name, len(f.s), n)
		}
	}
	return nil
}

// CheckLen validates the dataset shape and requires at least min bars.
func (d *Dataset) CheckLen(min int) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.Len() < min {
		return fmt.Errorf("%w: have %d bars, need %d", ErrInsufficientData, d.Len(), min)
	}
	return nil
}
