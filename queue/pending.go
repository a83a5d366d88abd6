package queue

import "time"

// pendingStore is the ordered, insertion-order sequence of accepted but
// not-yet-started tasks. It is always accessed under Manager.mu; it has no
// locking of its own.
type pendingStore struct {
	items []*Task
}

func (p *pendingStore) len() int {
	return len(p.items)
}

func (p *pendingStore) append(t *Task) {
	p.items = append(p.items, t)
}

// removeFirstEligible removes and returns the earliest-inserted task whose
// RunAfter is absent or has already elapsed. Among tasks with RunAfter set,
// this is NOT necessarily the item at index 0 — a far-future task never
// blocks a later-inserted, already-eligible one.
func (p *pendingStore) removeFirstEligible(now time.Time) *Task {
	for i, t := range p.items {
		if t.eligible(now) {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return t
		}
	}
	return nil
}

func (p *pendingStore) clear() {
	p.items = nil
}
