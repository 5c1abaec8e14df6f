package signal

import (
	"fmt"
	"sync"

	"github.com/quantward/tasignal/pkg/series"
)

// Input carries the samples a rule consumes. Current/Previous are the
// indicator's trailing values; Aux holds named companion values (a %D
// line, band edges, an ATR); the series fields feed the multi-sample
// rules. Band overrides the rule's default band when set.
type Input struct {
	Current  float64
	Previous float64
	Band     Band
	Aux      map[string]float64
	Values   series.Series
	High     series.Series
	Low      series.Series
}

// aux fetches a named companion value.
func (in Input) aux(rule, key string) (float64, error) {
	v, ok := in.Aux[key]
	if !ok {
		return 0, fmt.Errorf("rule %q requires aux value %q", rule, key)
	}
	return v, nil
}

// band returns the input band, or def when the input left it unset.
func (in Input) band(def Band) Band {
	return in.Band.Or(def)
}

// Rule maps indicator samples to a discrete signal under one indicator's
// decision table. Rules are pure: deterministic, no state between calls.
type Rule interface {
	Name() string
	Evaluate(in Input) (Signal, error)
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc struct {
	name string
	fn   func(Input) (Signal, error)
}

// NewRuleFunc wraps fn as a named Rule.
func NewRuleFunc(name string, fn func(Input) (Signal, error)) *RuleFunc {
	return &RuleFunc{name: name, fn: fn}
}

// Name returns the rule name.
func (r *RuleFunc) Name() string {
	return r.name
}

// Evaluate applies the wrapped function.
func (r *RuleFunc) Evaluate(in Input) (Signal, error) {
	return r.fn(in)
}

// Registry resolves evaluation rules by indicator name. Safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
	}
}

// Register registers a rule with the registry.
func (r *Registry) Register(rule Rule) error {
	if rule == nil {
		return fmt.Errorf("rule cannot be nil")
	}

	name := rule.Name()
	if name == "" {
		return fmt.Errorf("rule name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[name]; exists {
		return fmt.Errorf("rule with name %q already registered", name)
	}

	r.rules[name] = rule
	return nil
}

// Get retrieves a rule by name.
func (r *Registry) Get(name string) (Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, exists := r.rules[name]
	if !exists {
		return nil, fmt.Errorf("rule %q not found", name)
	}

	return rule, nil
}

// List returns the names of all registered rules.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}

	return names
}

// Unregister removes a rule from the registry.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[name]; !exists {
		return fmt.Errorf("rule %q not found", name)
	}

	delete(r.rules, name)
	return nil
}

// Evaluate resolves a rule by name and applies it.
func (r *Registry) Evaluate(name string, in Input) (Signal, error) {
	rule, err := r.Get(name)
	if err != nil {
		return Hold, err
	}
	return rule.Evaluate(in)
}

// DefaultRegistry returns a registry with every built-in rule registered
// under its canonical name.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	threshold := func(name string, def Band, dir Direction) {
		r.rules[name] = NewRuleFunc(name, func(in Input) (Signal, error) {
			return Threshold(in.Current, in.band(def), dir), nil
		})
	}
	threshold("cci", CCIBand, Contrarian)
	threshold("cmo", CMOBand, Contrarian)
	threshold("mfi", MFIBand, Contrarian)
	threshold("willr", WillRBand, Contrarian)
	threshold("ultosc", UltOscBand, Contrarian)
	threshold("stochrsi", StochRSIBand, Contrarian)
	threshold("roc", ROCBand, Contrarian)
	threshold("adx", ADXBand, Contrarian)
	threshold("aroonosc", AroonBand, Confirming)
	threshold("hli", HLIBand, Confirming)

	r.rules["rsi"] = NewRuleFunc("rsi", func(in Input) (Signal, error) {
		return BandCross(in.Current, in.Previous, in.band(RSIBand)), nil
	})

	dual := func(name string) {
		r.rules[name] = NewRuleFunc(name, func(in Input) (Signal, error) {
			d, err := in.aux(name, "d")
			if err != nil {
				return Hold, err
			}
			return DualBand(in.Current, d, in.band(StochBand)), nil
		})
	}
	dual("stochastic")
	dual("fast_stochastic")

	r.rules["macd"] = NewRuleFunc("macd", func(in Input) (Signal, error) {
		return ZeroCross(in.Current, in.Previous), nil
	})
	r.rules["awesome"] = NewRuleFunc("awesome", func(in Input) (Signal, error) {
		return WideZeroCross(in.Current, in.Previous), nil
	})

	r.rules["atr_breakout"] = NewRuleFunc("atr_breakout", func(in Input) (Signal, error) {
		atr, err := in.aux("atr_breakout", "atr")
		if err != nil {
			return Hold, err
		}
		return ATRBreakout(in.Current, in.Previous, atr), nil
	})

	r.rules["bollinger"] = NewRuleFunc("bollinger", func(in Input) (Signal, error) {
		upper, err := in.aux("bollinger", "upper")
		if err != nil {
			return Hold, err
		}
		lower, err := in.aux("bollinger", "lower")
		if err != nil {
			return Hold, err
		}
		prevUpper, err := in.aux("bollinger", "prev_upper")
		if err != nil {
			return Hold, err
		}
		prevLower, err := in.aux("bollinger", "prev_lower")
		if err != nil {
			return Hold, err
		}
		return BollingerTouch(in.Current, upper, lower, in.Previous, prevUpper, prevLower), nil
	})

	r.rules["ema_cross"] = NewRuleFunc("ema_cross", func(in Input) (Signal, error) {
		long, err := in.aux("ema_cross", "long")
		if err != nil {
			return Hold, err
		}
		prevLong, err := in.aux("ema_cross", "prev_long")
		if err != nil {
			return Hold, err
		}
		return Crossover(in.Current, long, in.Previous, prevLong), nil
	})

	r.rules["triple_ema"] = NewRuleFunc("triple_ema", func(in Input) (Signal, error) {
		mid, err := in.aux("triple_ema", "mid")
		if err != nil {
			return Hold, err
		}
		long, err := in.aux("triple_ema", "long")
		if err != nil {
			return Hold, err
		}
		prevMid, err := in.aux("triple_ema", "prev_mid")
		if err != nil {
			return Hold, err
		}
		prevLong, err := in.aux("triple_ema", "prev_long")
		if err != nil {
			return Hold, err
		}
		return TripleCross(in.Current, mid, long, in.Previous, prevMid, prevLong), nil
	})

	r.rules["ht_sine"] = NewRuleFunc("ht_sine", func(in Input) (Signal, error) {
		lead, err := in.aux("ht_sine", "lead")
		if err != nil {
			return Hold, err
		}
		prevLead, err := in.aux("ht_sine", "prev_lead")
		if err != nil {
			return Hold, err
		}
		return Crossover(in.Current, lead, in.Previous, prevLead), nil
	})

	r.rules["ht_trendline"] = NewRuleFunc("ht_trendline", func(in Input) (Signal, error) {
		trend, err := in.aux("ht_trendline", "trendline")
		if err != nil {
			return Hold, err
		}
		prevTrend, err := in.aux("ht_trendline", "prev_trendline")
		if err != nil {
			return Hold, err
		}
		return Crossover(in.Current, trend, in.Previous, prevTrend), nil
	})

	r.rules["ht_trendmode"] = NewRuleFunc("ht_trendmode", func(in Input) (Signal, error) {
		return TrendMode(in.Current), nil
	})

	r.rules["mmi"] = NewRuleFunc("mmi", func(in Input) (Signal, error) {
		cutoff := MMIThreshold
		if v, ok := in.Aux["threshold"]; ok {
			cutoff = v
		}
		return Regime(in.Current, cutoff), nil
	})

	r.rules["obv"] = NewRuleFunc("obv", func(in Input) (Signal, error) {
		return Monotonic3(in.Values)
	})

	sarRule := func(name string) {
		r.rules[name] = NewRuleFunc(name, func(in Input) (Signal, error) {
			return SARFlip(in.Values, in.High, in.Low)
		})
	}
	sarRule("sar")
	sarRule("fsar")

	r.rules["elder_ray"] = NewRuleFunc("elder_ray", func(in Input) (Signal, error) {
		bull, err := in.aux("elder_ray", "bull")
		if err != nil {
			return Hold, err
		}
		bear, err := in.aux("elder_ray", "bear")
		if err != nil {
			return Hold, err
		}
		return ElderRay(in.Current, bull, bear), nil
	})

	return r
}
