package metrics_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/automata/internal/metrics"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollectorWith(reg, reg)
	hooks := c.Hooks()

	hooks.OnQuery(&domain.QueryEvent{Automaton: "demo", Mode: domain.ModeExhaustive, Accepted: true, Visited: 5, Duration: time.Millisecond})
	hooks.OnQuery(&domain.QueryEvent{Automaton: "demo", Mode: domain.ModeExhaustive, Accepted: false, Visited: 3})
	hooks.OnQuery(&domain.QueryEvent{Automaton: "demo", Mode: domain.ModeExhaustive, Accepted: true, Visited: 2})
	hooks.OnQuery(&domain.QueryEvent{Automaton: "demo", Mode: domain.ModeExhaustive, Err: errors.New("invalid word")})
	hooks.OnStep(&domain.StepEvent{Automaton: "demo", Mode: domain.ModeSampled, Stuck: true})
	hooks.OnStep(&domain.StepEvent{Automaton: "demo", Mode: domain.ModeSampled})
	hooks.OnCache(&domain.CacheEvent{Namespace: "demo", Hit: true})
	hooks.OnCache(&domain.CacheEvent{Namespace: "demo", Hit: false})
	hooks.OnCache(&domain.CacheEvent{Namespace: "demo", Hit: false})

	expected := `
# HELP automata_queries_total Acceptance queries answered, by mode and verdict
# TYPE automata_queries_total counter
automata_queries_total{accepted="false",automaton="demo",mode="exhaustive"} 1
automata_queries_total{accepted="true",automaton="demo",mode="exhaustive"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, bytes.NewBufferString(expected), "automata_queries_total"))

	series, err := testutil.GatherAndCount(reg, "automata_queries_total", "automata_query_errors_total", "automata_stuck_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 4, series)

	buf := new(bytes.Buffer)
	require.NoError(t, c.WriteText(buf))
	out := buf.String()
	assert.Contains(t, out, `automata_query_errors_total{automaton="demo",mode="exhaustive"} 1`)
	assert.Contains(t, out, `automata_stuck_runs_total{automaton="demo",mode="sampled"} 1`)
	assert.Contains(t, out, `automata_cache_lookups_total{namespace="demo",result="miss"} 2`)
	assert.Contains(t, out, `automata_search_nodes_count{automaton="demo",mode="exhaustive"} 3`)
}

func TestNewCollector_Isolated(t *testing.T) {
	// Two collectors must not collide on registration.
	a := metrics.NewCollector()
	b := metrics.NewCollector()
	a.Hooks().OnCache(&domain.CacheEvent{Namespace: "x", Hit: true})

	buf := new(bytes.Buffer)
	require.NoError(t, b.WriteText(buf))
	assert.NotContains(t, buf.String(), `namespace="x"`)
}
