// Package metrics records rule table activity in Prometheus.
//
//	c := metrics.MustNew(prometheus.DefaultRegisterer)
//	discounts := rules.New(register, rules.WithName("discounts"), c.Option())
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bjaus/rules"
)

// Lookup outcomes recorded in the outcome label of rules_lookups_total.
const (
	OutcomeMatched   = "matched"
	OutcomeNoMatch   = "no_match"
	OutcomeAmbiguous = "ambiguous"
	OutcomeFallback  = "fallback"
)

// Handler statuses recorded in the status label of rules_handler_calls_total.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Options configures a Collector.
type Options struct {
	// Namespace is prepended to every metric name.
	Namespace string

	// Buckets for the handler duration histogram. Defaults to
	// prometheus.DefBuckets.
	Buckets []float64
}

// Collector holds the rule table metrics.
type Collector struct {
	lookups  *prometheus.CounterVec
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer, opts ...Options) (*Collector, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Buckets == nil {
		o.Buckets = prometheus.DefBuckets
	}

	c := &Collector{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.Namespace,
				Name:      "rules_lookups_total",
				Help:      "Total number of rule table lookup outcomes. CallAll records one matched outcome per matching entry.",
			},
			[]string{"table", "op", "outcome"},
		),
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.Namespace,
				Name:      "rules_handler_calls_total",
				Help:      "Total number of rule handler invocations by status.",
			},
			[]string{"table", "op", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: o.Namespace,
				Name:      "rules_handler_duration_seconds",
				Help:      "Duration of rule handler invocations.",
				Buckets:   o.Buckets,
			},
			[]string{"table", "op"},
		),
	}

	for _, col := range []prometheus.Collector{c.lookups, c.calls, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}
	return c, nil
}

// MustNew is like New but panics if registration fails.
func MustNew(reg prometheus.Registerer, opts ...Options) *Collector {
	c, err := New(reg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Option returns the rules.Option that feeds this collector. One Collector can
// serve many tables; the table name set with rules.WithName becomes the table
// label.
func (c *Collector) Option() rules.Option {
	return rules.WithOptions(
		rules.WithOnMatch(func(table string, op rules.Op, _ int, _ string) {
			c.lookups.WithLabelValues(table, string(op), OutcomeMatched).Inc()
		}),
		rules.WithOnNoMatch(func(table string, op rules.Op) {
			c.lookups.WithLabelValues(table, string(op), OutcomeNoMatch).Inc()
		}),
		rules.WithOnAmbiguous(func(table string, op rules.Op, _ []int, _ []string) {
			c.lookups.WithLabelValues(table, string(op), OutcomeAmbiguous).Inc()
		}),
		rules.WithOnFallback(func(table string, op rules.Op) {
			c.lookups.WithLabelValues(table, string(op), OutcomeFallback).Inc()
		}),
		rules.WithOnSuccess(func(table string, op rules.Op, _ int, _ string, d time.Duration) {
			c.observe(table, op, StatusSuccess, d)
		}),
		rules.WithOnFailure(func(table string, op rules.Op, _ int, _ string, _ error, d time.Duration) {
			c.observe(table, op, StatusFailure, d)
		}),
	)
}

func (c *Collector) observe(table string, op rules.Op, status string, d time.Duration) {
	c.calls.WithLabelValues(table, string(op), status).Inc()
	c.duration.WithLabelValues(table, string(op)).Observe(d.Seconds())
}
