package queue

import "time"

// dispatch is the Manager's single background worker. It is started once
// in NewManager and runs until Shutdown closes stopCh. Each iteration:
// picks the earliest-eligible pending task (if any), drops it if it has
// aged out past MaxAge, otherwise runs it under the execution supervisor
// and delivers exactly one callback for the outcome.
func (m *Manager) dispatch() {
	defer close(m.doneCh)

	for {
		select {
		case <-m.stopCh:
			return
		default:
		}

		task := m.nextEligible()
		if task == nil {
			select {
			case <-m.stopCh:
				return
			case <-m.wake:
			case <-time.After(m.pollInterval):
			}
			continue
		}

		m.runOne(task)
	}
}

// nextEligible removes the earliest-inserted pending task whose RunAfter has
// elapsed and moves it into the in-flight slot in the same critical section,
// returning it, or nil if none is currently eligible.
func (m *Manager) nextEligible() *Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending.len() == 0 {
		return nil
	}
	task := m.pending.removeFirstEligible(time.Now())
	if task != nil {
		m.running = task
	}
	return task
}

// runOne executes a single dequeued task to completion: the MaxAge check,
// the supervised command invocation, and callback delivery. The task leaves
// the in-flight slot only after its outcome has been counted and delivered.
func (m *Manager) runOne(task *Task) {
	defer func() {
		m.mu.Lock()
		m.running = nil
		m.mu.Unlock()
		m.metrics.observeLength(m.Length())
	}()

	if time.Since(task.CreatedAt) > m.maxAge {
		task.State = StateDropped
		m.logger.Debug("task dropped: max age exceeded",
			"queue", m.name, "instance", m.instanceID.String(), "task", task.ID)
		m.metrics.observeCompletion(StatusMaxAge)
		m.invokeCallback(nil, StatusMaxAge, task.Args)
		return
	}

	task.State = StateRunning
	result, status := m.runSupervised(task)

	task.State = StateDone
	m.metrics.observeCompletion(status)
	m.invokeCallback(result, status, task.Args)
}
