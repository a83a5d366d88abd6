package queue

import "github.com/prometheus/client_golang/prometheus"

// Metrics tracks queue depth and per-status completion counts for a
// Manager. It implements prometheus.Collector so it can be registered
// directly with a prometheus.Registry.
type Metrics struct {
	length    prometheus.Gauge
	completed *prometheus.CounterVec
}

// NewMetrics builds a Metrics collector labeled with the queue's name.
func NewMetrics(name string) *Metrics {
	return &Metrics{
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "taskqueue",
			Name:        "length",
			Help:        "Number of pending plus in-flight tasks.",
			ConstLabels: prometheus.Labels{"queue": name},
		}),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "taskqueue",
			Name:        "completed_total",
			Help:        "Number of tasks that reached a terminal status.",
			ConstLabels: prometheus.Labels{"queue": name},
		}, []string{"status"}),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.length.Describe(ch)
	m.completed.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.length.Collect(ch)
	m.completed.Collect(ch)
}

func (m *Metrics) observeLength(n int) {
	if m == nil {
		return
	}
	m.length.Set(float64(n))
}

func (m *Metrics) observeCompletion(status Status) {
	if m == nil {
		return
	}
	m.completed.WithLabelValues(status.String()).Inc()
}
