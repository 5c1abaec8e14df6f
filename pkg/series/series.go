package series

import "math"

// Series is an ordered sequence of float64 samples, oldest first.
// Index 0 is the earliest sample. A Series is a read-only input to every
// computation in this module; nothing mutates caller-supplied data.
type Series []float64

// Undefined returns the marker value for warm-up samples that have no
// computed value.
func Undefined() float64 {
	return math.NaN()
}

// IsDefined reports whether v carries a computed value.
func IsDefined(v float64) bool {
	return !math.IsNaN(v)
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s)
}

// Last returns the most recent sample, or NaN when the series is empty.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return s[len(s)-1]
}

// Prev returns the sample before the most recent one, or NaN when the
// series has fewer than two samples.
func (s Series) Prev() float64 {
	if len(s) < 2 {
		return math.NaN()
	}
	return s[len(s)-2]
}

// LastN returns the trailing n samples. The result shares backing storage
// with s; callers must treat it as read-only.
func (s Series) LastN(n int) Series {
	if n <= 0 {
		return nil
	}
	if n > len(s) {
		n = len(s)
	}
	return s[len(s)-n:]
}

// Copy returns an independent copy of the series.
func (s Series) Copy() Series {
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// DefinedFrom returns the index of the first defined sample, or -1 when
// every sample is undefined.
func (s Series) DefinedFrom() int {
	for i, v := range s {
		if IsDefined(v) {
			return i
		}
	}
	return -1
}
