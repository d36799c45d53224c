// Package tui hosts the chat widget in a bubbletea program: a log panel, the
// scrolling chat panel and a single-line input.
package tui

import tea "github.com/charmbracelet/bubbletea"

// Panel is a composable TUI region with its own state, update logic, and view.
// The root App model orchestrates panels without knowing their internals.
type Panel interface {
	Update(tea.Msg) (Panel, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// LogLineMsg carries a single log line from the logger writer.
type LogLineMsg struct{ Line string }

// scheduledMsg delivers a deferred widget callback back onto the update loop.
type scheduledMsg struct{ fn func() }
