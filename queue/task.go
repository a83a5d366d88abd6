package queue

import "time"

// State represents where a Task sits in its lifecycle.
type State int

const (
	StatePending State = iota
	StateRunning
	StateDone
	StateDropped
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Status is the terminal classification of a Task's outcome, delivered to
// the configured CallbackFunc.
type Status int

const (
	StatusOK Status = iota
	StatusQueueFull
	StatusTimeout
	StatusException
	StatusMaxAge
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusQueueFull:
		return "queue_full"
	case StatusTimeout:
		return "timeout"
	case StatusException:
		return "exception"
	case StatusMaxAge:
		return "max_age"
	default:
		return "unknown"
	}
}

// Task is one accepted submission: a command invocation plus bookkeeping.
// Args is handed verbatim to CommandFunc and, after dispatch, echoed back to
// CallbackFunc.
type Task struct {
	ID        uint64
	Args      any
	CreatedAt time.Time
	RunAfter  *time.Time
	State     State
}

// eligible reports whether the task may be selected for dispatch at now.
func (t *Task) eligible(now time.Time) bool {
	return t.RunAfter == nil || !t.RunAfter.After(now)
}
