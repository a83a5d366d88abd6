package queue

import (
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option customizes a Manager at construction time.
type Option func(*Manager)

// WithCallback sets the completion sink invoked once per task outcome.
func WithCallback(cb CallbackFunc) Option {
	return func(m *Manager) {
		m.callback = cb
	}
}

// WithPollInterval overrides the dispatcher's idle/ineligible sleep bound.
func WithPollInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.pollInterval = d
		}
	}
}

// WithMaxAge overrides the maximum time-in-system before a pending task is
// dropped with StatusMaxAge.
func WithMaxAge(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.maxAge = d
		}
	}
}

// WithTimeout overrides the wall-clock limit for a single command
// invocation.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithLogger sets a custom logging sink for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLogLevel replaces the Manager's logger with a tint-backed logger at
// the given verbosity, writing to w.
func WithLogLevel(level Level, w io.Writer) Option {
	return func(m *Manager) {
		m.logger = NewLogger(level, w)
	}
}

// WithMetrics registers a prometheus collector tracking this Manager's
// length and per-status completion counts against reg.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(m *Manager) {
		metrics := NewMetrics(m.name)
		if reg != nil {
			reg.MustRegister(metrics)
		}
		m.metrics = metrics
	}
}
