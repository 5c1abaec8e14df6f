package observe

import "time"

// Record describes one indicator computation or signal evaluation.
type Record struct {
	// Indicator is the canonical indicator name (e.g. "rsi", "obv").
	Indicator string
	// Params holds the call parameters: periods, bands, MA kinds.
	Params map[string]interface{}
	// Bars is the number of input bars.
	Bars int
	// Result is the computed output: a scalar, a Signal, or a series
	// summary, depending on the operation.
	Result interface{}
	// Err is set when the computation failed.
	Err error
	// Elapsed is the wall time the computation took.
	Elapsed time.Duration
}

// Observer receives computation records. Attaching one is optional and
// never required for correctness; implementations must be safe for
// concurrent use.
type Observer interface {
	Observe(rec Record)
}

// Nop discards every record. It is the default sink.
type Nop struct{}

// Observe discards the record.
func (Nop) Observe(Record) {}

// Multi fans each record out to several observers.
type Multi []Observer

// Observe forwards the record to every non-nil observer.
func (m Multi) Observe(rec Record) {
	for _, o := range m {
		if o != nil {
			o.Observe(rec)
		}
	}
}
