// Package widget implements the chat widget: a user submits a line, it is
// appended to the display, and an echo reply follows after a fixed delay.
package widget

import "time"

// Display is the scrollable container entries are appended to.
type Display interface {
	AppendChild(Element)
	// ScrollHeight is the maximum scroll offset basis (total content height).
	ScrollHeight() int
	SetScrollTop(offset int)
}

// Input is a single-line text field.
type Input interface {
	Value() string
	SetValue(string)
}

// KeySource delivers key-down events from the input surface.
type KeySource interface {
	OnKeyDown(func(key string))
}

// Scheduler runs fn once after delay on the host's event loop.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(delay time.Duration, fn func())

func (f SchedulerFunc) Schedule(delay time.Duration, fn func()) { f(delay, fn) }
