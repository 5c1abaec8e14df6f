package series

import "errors"

var (
	ErrNilDataset       = errors.New("nil dataset")
	ErrEmptySeries      = errors.New("series is empty")
	ErrLengthMismatch   = errors.New("dataset fields have mismatched lengths")
	ErrInsufficientData = errors.New("insufficient data")
)
