// Package metrics exposes engine activity as Prometheus metrics.
// A Collector is fed through domain.Hooks, so the engine itself never
// imports Prometheus.
package metrics

import (
	"io"
	"strconv"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Collector records queries, search effort and cache usage.
type Collector struct {
	gatherer prometheus.Gatherer

	queries  *prometheus.CounterVec
	errors   *prometheus.CounterVec
	visited  *prometheus.HistogramVec
	duration *prometheus.HistogramVec
	stuck    *prometheus.CounterVec
	cache    *prometheus.CounterVec
}

// NewCollector registers the automata metrics on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	return NewCollectorWith(reg, reg)
}

// NewCollectorWith registers the automata metrics on reg. gatherer is used
// by WriteText and may be nil if it is never called.
func NewCollectorWith(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		gatherer: gatherer,
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "automata_queries_total",
			Help: "Acceptance queries answered, by mode and verdict",
		}, []string{"automaton", "mode", "accepted"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "automata_query_errors_total",
			Help: "Acceptance queries that failed (invalid word, undefined transition)",
		}, []string{"automaton", "mode"}),
		visited: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "automata_search_nodes",
			Help:    "Search nodes (state, position) visited per query",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14), // 1 to 8192
		}, []string{"automaton", "mode"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "automata_query_duration_seconds",
			Help:    "Duration of acceptance queries",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs to ~0.26s
		}, []string{"automaton", "mode"}),
		stuck: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "automata_stuck_runs_total",
			Help: "Traversal moves that found no transition",
		}, []string{"automaton", "mode"}),
		cache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "automata_cache_lookups_total",
			Help: "Verdict cache lookups, by result",
		}, []string{"namespace", "result"}),
	}
}

// Hooks returns the callbacks that feed the collector.
func (c *Collector) Hooks() domain.Hooks {
	return domain.Hooks{
		OnStep:  c.observeStep,
		OnQuery: c.observeQuery,
		OnCache: c.observeCache,
	}
}

func (c *Collector) observeStep(e *domain.StepEvent) {
	if e.Stuck {
		c.stuck.WithLabelValues(e.Automaton, string(e.Mode)).Inc()
	}
}

func (c *Collector) observeQuery(e *domain.QueryEvent) {
	mode := string(e.Mode)
	if e.Err != nil {
		c.errors.WithLabelValues(e.Automaton, mode).Inc()
		return
	}
	c.queries.WithLabelValues(e.Automaton, mode, strconv.FormatBool(e.Accepted)).Inc()
	c.visited.WithLabelValues(e.Automaton, mode).Observe(float64(e.Visited))
	c.duration.WithLabelValues(e.Automaton, mode).Observe(e.Duration.Seconds())
}

func (c *Collector) observeCache(e *domain.CacheEvent) {
	result := "miss"
	if e.Hit {
		result = "hit"
	}
	c.cache.WithLabelValues(e.Namespace, result).Inc()
}

// WriteText writes every gathered metric in the Prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
