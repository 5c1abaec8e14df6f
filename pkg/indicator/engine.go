package indicator

import (
	"errors"
	"time"

	"github.com/quantward/tasignal/pkg/ma"
	"github.com/quantward/tasignal/pkg/observe"
	"github.com/quantward/tasignal/pkg/series"
)

// Engine ties the native indicator set, a Provider for delegated
// indicators, and an observation sink into one querying surface. Every
// method is synchronous and touches no shared mutable state, so a single
// Engine serves any number of goroutines.
//
// Each indicator comes in two shapes: a computation method returning the
// full series (or result struct), and a Signal method that reduces the
// trailing samples to a discrete buy/hold/sell decision.
type Engine struct {
	provider    Provider
	observer    observe.Observer
	smaFallback bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithProvider swaps the delegated-indicator backend. Nil is ignored.
func WithProvider(p Provider) Option {
	return func(e *Engine) {
		if p != nil {
			e.provider = p
		}
	}
}

// WithObserver installs a sink for per-computation records. Nil is ignored.
func WithObserver(o observe.Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithSMAFallback makes MovingAverage substitute a simple average of the
// same period when asked for a kind it does not recognize, instead of
// failing. The substitution is reported through the observer.
func WithSMAFallback() Option {
	return func(e *Engine) {
		e.smaFallback = true
	}
}

// New builds an Engine backed by go-talib and a no-op observer unless
// options say otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{
		provider: NewTalibProvider(),
		observer: observe.Nop{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Provider returns the delegated-indicator backend in use.
func (e *Engine) Provider() Provider {
	return e.provider
}

// observed emits one record for a finished computation.
func (e *Engine) observed(name string, params map[string]interface{}, bars int, result interface{}, err error, start time.Time) {
	e.observer.Observe(observe.Record{
		Indicator: name,
		Params:    params,
		Bars:      bars,
		Result:    result,
		Err:       err,
		Elapsed:   time.Since(start),
	})
}

// last gives the scalar view of a series for observation records.
func last(s series.Series) interface{} {
	if len(s) == 0 {
		return nil
	}
	return s.Last()
}

// MovingAverage computes the selected moving average over s. Unknown kinds
// fail with ma.ErrUnknownKind unless the engine was built with
// WithSMAFallback.
func (e *Engine) MovingAverage(s series.Series, kind ma.Kind, period int) (series.Series, error) {
	start := time.Now()
	params := map[string]interface{}{"kind": kind.String(), "period": period}

	out, err := ma.Compute(s, kind, period)
	if err != nil && e.smaFallback && errors.Is(err, ma.ErrUnknownKind) {
		params["fallback"] = "sma"
		out, err = ma.SMA(s, period)
	}
	e.observed("ma", params, len(s), last(out), err, start)
	return out, err
}
