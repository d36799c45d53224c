package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickScheduler turns widget callbacks into tea.Tick commands. Callbacks come
// back as messages, so they run inside Update like every other event.
type TickScheduler struct {
	pending []tea.Cmd
}

func (s *TickScheduler) Schedule(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	s.pending = append(s.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return scheduledMsg{fn: fn}
	}))
}

// Drain returns the commands scheduled since the last call.
func (s *TickScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
