package queue

import (
	"context"
	"errors"
	"fmt"
)

// ErrCommandPanicked wraps a recovered panic from a CommandFunc invocation.
var ErrCommandPanicked = errors.New("queue: command panicked")

type commandOutcome struct {
	result any
	err    error
}

// runSupervised runs the Manager's command against task.Args under the
// configured timeout, distinguishing a natural return (possibly an error),
// a panic, and a timeout. A falsy-but-non-error return (nil, false, 0, ...)
// is still StatusOK — only a returned error, a panic, or exceeding the
// timeout count as a non-OK outcome.
//
// On timeout, the helper goroutine running the command is abandoned: this
// function returns immediately rather than waiting for it to finish. The
// command is handed a context derived from timeout, so cooperative
// implementations can still observe cancellation and exit early; those that
// don't simply keep running until they return, orphaned.
func (m *Manager) runSupervised(task *Task) (any, Status) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	resultCh := make(chan commandOutcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resultCh <- commandOutcome{nil, fmt.Errorf("%w: %v", ErrCommandPanicked, r)}
			}
		}()

		result, err := m.command(ctx, task.Args)
		resultCh <- commandOutcome{result, err}
	}()

	select {
	case out := <-resultCh:
		if out.err != nil {
			m.logger.Warn("command failed",
				"queue", m.name, "instance", m.instanceID.String(),
				"task", task.ID, "error", out.err,
			)
			return nil, StatusException
		}
		return out.result, StatusOK

	case <-ctx.Done():
		m.logger.Warn("command timed out",
			"queue", m.name, "instance", m.instanceID.String(),
			"task", task.ID, "timeout", m.timeout,
		)
		// resultCh is buffered; the abandoned goroutine's eventual send
		// (or panic recovery) will not block, and nothing here waits on it.
		return nil, StatusTimeout
	}
}
