package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultLoopBuffer = 64

// Loop is a single-goroutine event loop. Posted work and timer callbacks
// all run on the goroutine that calls Run, one at a time.
type Loop struct {
	queue   chan func()
	done    chan struct{}
	closing chan struct{}
	pending atomic.Int64

	mu       sync.Mutex
	timers   map[*time.Timer]struct{}
	stopped  bool
	doneOnce sync.Once
	closeOne sync.Once
}

// NewLoop creates a loop whose queue holds up to buffer callbacks.
func NewLoop(buffer int) *Loop {
	if buffer <= 0 {
		buffer = defaultLoopBuffer
	}
	return &Loop{
		queue:   make(chan func(), buffer),
		done:    make(chan struct{}),
		closing: make(chan struct{}),
		timers:  make(map[*time.Timer]struct{}),
	}
}

// Schedule arms a timer that posts fn to the loop after delay.
func (l *Loop) Schedule(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.pending.Add(1)

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		l.mu.Lock()
		delete(l.timers, timer)
		l.mu.Unlock()
		l.enqueue(fn)
	})
	l.timers[timer] = struct{}{}
}

// Post queues fn to run on the loop. It returns false once the loop has
// stopped.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
	}
	l.pending.Add(1)
	return l.enqueue(fn)
}

func (l *Loop) enqueue(fn func()) bool {
	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		l.pending.Add(-1)
		return false
	}
}

// Pending returns the number of posted or scheduled callbacks not yet run.
func (l *Loop) Pending() int {
	return int(l.pending.Load())
}

// Close asks Run to return once no work is pending.
func (l *Loop) Close() {
	l.closeOne.Do(func() { close(l.closing) })
}

// Run executes callbacks until ctx is done, or until Close was called and
// nothing is pending. Timers still armed when Run returns are dropped.
func (l *Loop) Run(ctx context.Context) error {
	defer l.shutdown()

	closing := l.closing
	closed := false
	for {
		if closed && l.pending.Load() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
			l.pending.Add(-1)
		case <-closing:
			closing = nil
			closed = true
		}
	}
}

func (l *Loop) shutdown() {
	l.doneOnce.Do(func() {
		l.mu.Lock()
		l.stopped = true
		for t := range l.timers {
			t.Stop()
		}
		l.timers = nil
		l.mu.Unlock()
		close(l.done)
	})
}
