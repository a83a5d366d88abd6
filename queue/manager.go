// Package queue implements a bounded, in-process asynchronous task queue.
//
// A Manager accepts work submissions (a command plus opaque args and an
// optional earliest-start time), runs them one at a time on a single
// background dispatcher, enforces a per-task execution timeout and a
// per-task maximum time-in-system, and optionally reports each task's
// outcome to a completion callback. Submissions past the configured depth
// are rejected rather than blocking the caller.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rs/xid"
)

// Manager owns the pending store, the dispatcher goroutine, and the
// control surface (Add, Clear, Length, Shutdown) for one bounded task
// queue. Instances must be created with NewManager. All methods are safe
// for concurrent use.
type Manager struct {
	name         string
	depth        int
	command      CommandFunc
	callback     CallbackFunc
	pollInterval time.Duration
	maxAge       time.Duration
	timeout      time.Duration
	logger       *slog.Logger
	metrics      *Metrics
	instanceID   xid.ID

	mu      sync.Mutex
	pending pendingStore
	nextID  uint64
	running *Task
	closed  bool

	wake     chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewManager constructs a Manager from cfg, applies opts, and starts its
// background dispatcher. It returns ErrInvalidConfig if cfg is missing a
// Name, a positive Depth, or a CommandFunc.
func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if cfg.Depth <= 0 {
		return nil, fmt.Errorf("%w: depth must be positive", ErrInvalidConfig)
	}
	if cfg.CommandFunc == nil {
		return nil, fmt.Errorf("%w: command_func is required", ErrInvalidConfig)
	}

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	m := &Manager{
		name:         cfg.Name,
		depth:        cfg.Depth,
		command:      cfg.CommandFunc,
		callback:     cfg.CallbackFunc,
		pollInterval: pollInterval,
		maxAge:       maxAge,
		timeout:      timeout,
		instanceID:   xid.New(),
		wake:         make(chan struct{}, 1),
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = discardLogger()
	}

	go m.dispatch()

	return m, nil
}

// Add submits a task for execution. If the pending store is already at
// Depth, or the Manager has been shut down, the submission is rejected: Add
// returns false and, if a callback is configured, delivers it synchronously
// on the caller's goroutine with a nil result, StatusQueueFull, and args
// echoed back. runAfter, if non-nil, is the earliest wall-clock time the
// task becomes eligible for dispatch.
func (m *Manager) Add(args any, runAfter *time.Time) bool {
	m.mu.Lock()

	if m.closed || m.pending.len() >= m.depth {
		m.mu.Unlock()
		m.logger.Debug("task rejected", "queue", m.name, "instance", m.instanceID.String(), "reason", "queue_full")
		m.metrics.observeCompletion(StatusQueueFull)
		m.invokeCallback(nil, StatusQueueFull, args)
		return false
	}

	m.nextID++
	task := &Task{
		ID:        m.nextID,
		Args:      args,
		CreatedAt: time.Now(),
		RunAfter:  runAfter,
		State:     StatePending,
	}
	m.pending.append(task)
	n := m.pending.len()
	m.mu.Unlock()

	m.metrics.observeLength(n + m.inFlightCount())
	m.wakeDispatcher()

	return true
}

// Clear atomically empties the pending store, leaving any currently
// in-flight task untouched. Cleared tasks receive no callback: they never
// reached the dispatcher for an outcome.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.pending.clear()
	n := m.inFlightCountLocked()
	m.mu.Unlock()

	m.metrics.observeLength(n)
	m.logger.Info("queue cleared", "queue", m.name, "instance", m.instanceID.String())
}

// Length returns the number of pending tasks plus one if a task is
// currently in flight.
func (m *Manager) Length() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending.len() + m.inFlightCountLocked()
}

func (m *Manager) inFlightCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlightCountLocked()
}

func (m *Manager) inFlightCountLocked() int {
	if m.running != nil {
		return 1
	}
	return 0
}

// Shutdown requests the dispatcher to stop. The currently in-flight task
// (if any) is allowed to complete or time out as normal; Shutdown blocks
// until the dispatcher goroutine has exited or ctx is done, whichever
// comes first.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.stopOnce.Do(func() { close(m.stopCh) })

	select {
	case <-m.doneCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Metrics returns the Manager's registered Metrics collector, or nil if
// WithMetrics was never applied.
func (m *Manager) Metrics() *Metrics {
	return m.metrics
}

func (m *Manager) wakeDispatcher() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}
