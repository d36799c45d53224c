// Package schedule provides the event-loop schedulers the chat widget runs on.
package schedule

import (
	"sort"
	"sync"
	"time"
)

type task struct {
	due time.Duration
	seq uint64
	fn  func()
}

// Manual is a logical clock. Callbacks only run inside Advance or Flush, on
// the caller's goroutine, in due order with ties broken by scheduling order.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []task
}

// NewManual returns a manual scheduler at logical time zero.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.tasks = append(m.tasks, task{due: m.now + delay, seq: m.seq, fn: fn})
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
}

// Advance moves logical time forward by d and runs every callback that
// becomes due, including ones scheduled by callbacks within the window.
// It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()
	return m.runUntil(target)
}

// Flush runs callbacks until none remain and returns how many ran.
func (m *Manual) Flush() int {
	fired := 0
	for {
		m.mu.Lock()
		if len(m.tasks) == 0 {
			m.mu.Unlock()
			return fired
		}
		target := m.tasks[len(m.tasks)-1].due
		m.mu.Unlock()
		fired += m.runUntil(target)
	}
}

func (m *Manual) runUntil(target time.Duration) int {
	fired := 0
	for {
		m.mu.Lock()
		if len(m.tasks) == 0 || m.tasks[0].due > target {
			if target > m.now {
				m.now = target
			}
			m.mu.Unlock()
			return fired
		}
		next := m.tasks[0]
		m.tasks = m.tasks[1:]
		m.now = next.due
		m.mu.Unlock()

		next.fn()
		fired++
	}
}

// Now returns the elapsed logical time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of callbacks not yet run.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}
