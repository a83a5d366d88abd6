package queue

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsTracksCompletions(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := NewManager(Config{
		Name:        "metrics",
		Depth:       5,
		CommandFunc: okImmediate,
	}, WithMetrics(reg))
	assertNoError(t, err)
	defer shutdownNow(t, m)

	assertTrue(t, m.Metrics() != nil, "expected a registered Metrics collector")

	for i := 0; i < 3; i++ {
		m.Add(i, nil)
	}

	waitForLength(t, m, 0, time.Second)

	count := testutil.ToFloat64(m.Metrics().completed.WithLabelValues(StatusOK.String()))
	assertEqual(t, count, float64(3))
}

func TestMetricsNilSafeWithoutOption(t *testing.T) {
	m, err := NewManager(Config{
		Name:        "no-metrics",
		Depth:       5,
		CommandFunc: okImmediate,
	})
	assertNoError(t, err)
	defer shutdownNow(t, m)

	assertTrue(t, m.Metrics() == nil, "expected no Metrics collector without WithMetrics")

	for i := 0; i < 3; i++ {
		m.Add(i, nil)
	}
	waitForLength(t, m, 0, time.Second)
}
