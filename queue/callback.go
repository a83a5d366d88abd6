package queue

// invokeCallback delivers exactly one outcome to the configured
// CallbackFunc, if any. A panic raised inside the callback is recovered and
// logged; it must never stop the dispatcher or alter task state.
func (m *Manager) invokeCallback(result any, status Status, args any) {
	if m.callback == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("callback panicked",
				"queue", m.name,
				"instance", m.instanceID.String(),
				"status", status.String(),
				"panic", r,
			)
		}
	}()

	m.callback(result, status, args)
}
