package observe

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type collector struct {
	recs []Record
}

func (c *collector) Observe(rec Record) {
	c.recs = append(c.recs, rec)
}

func TestMulti(t *testing.T) {
	a := &collector{}
	b := &collector{}
	m := Multi{a, nil, b}

	m.Observe(Record{Indicator: "rsi", Bars: 20})

	if len(a.recs) != 1 || len(b.recs) != 1 {
		t.Fatalf("fan-out reached %d/%d observers, want 1/1", len(a.recs), len(b.recs))
	}
	if a.recs[0].Indicator != "rsi" {
		t.Errorf("indicator = %q, want rsi", a.recs[0].Indicator)
	}

	// Nop must accept records silently.
	Nop{}.Observe(Record{Indicator: "obv"})
}

func TestZapObserver(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	z := NewZapObserver(zap.New(core))

	z.Observe(Record{Indicator: "macd", Bars: 50, Result: 1, Elapsed: time.Millisecond})
	z.Observe(Record{Indicator: "macd", Bars: 3, Err: errors.New("insufficient data")})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("logged %d entries, want 2", len(entries))
	}
	if entries[0].Level != zap.DebugLevel {
		t.Errorf("success level = %v, want debug", entries[0].Level)
	}
	if entries[1].Level != zap.WarnLevel {
		t.Errorf("failure level = %v, want warn", entries[1].Level)
	}

	fields := entries[0].ContextMap()
	if fields["indicator"] != "macd" {
		t.Errorf("indicator field = %v, want macd", fields["indicator"])
	}
	if fields["bars"] != int64(50) {
		t.Errorf("bars field = %v, want 50", fields["bars"])
	}
}

func TestPromObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPromObserver(reg)

	p.Observe(Record{Indicator: "rsi", Elapsed: 5 * time.Millisecond})
	p.Observe(Record{Indicator: "rsi", Elapsed: time.Millisecond})
	p.Observe(Record{Indicator: "rsi", Err: errors.New("boom")})

	ok := testutil.ToFloat64(p.computations.WithLabelValues("rsi", "ok"))
	if ok != 2 {
		t.Errorf("ok count = %v, want 2", ok)
	}
	failed := testutil.ToFloat64(p.computations.WithLabelValues("rsi", "error"))
	if failed != 1 {
		t.Errorf("error count = %v, want 1", failed)
	}
}
