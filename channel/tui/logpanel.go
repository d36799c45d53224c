package tui

import (
	"bytes"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultMaxLogLines = 1000
	logForwardBuffer   = 256
)

var (
	logDebugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	logInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	logWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	logErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// LogPanel shows the tail of the application log, coloured by level.
type LogPanel struct {
	viewport viewport.Model
	lines    []string
	maxLines int
}

func NewLogPanel() *LogPanel {
	vp := viewport.New(0, 0)
	vp.SetContent("")
	return &LogPanel{viewport: vp, maxLines: defaultMaxLogLines}
}

func (p *LogPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	line, ok := msg.(LogLineMsg)
	if !ok {
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return p, cmd
	}

	follow := p.viewport.AtBottom()
	p.lines = append(p.lines, levelStyle(line.Line).Render(strings.TrimRight(line.Line, "\n")))
	if over := len(p.lines) - p.maxLines; over > 0 {
		p.lines = p.lines[over:]
	}
	p.viewport.SetContent(strings.Join(p.lines, "\n"))
	// Keep the user's position if they scrolled up to read.
	if follow {
		p.viewport.GotoBottom()
	}
	return p, nil
}

func (p *LogPanel) View() string {
	return p.viewport.View()
}

func (p *LogPanel) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}

// levelStyle picks a style from the level=... attribute of a slog text line.
func levelStyle(line string) lipgloss.Style {
	switch {
	case strings.Contains(line, "level=ERROR"):
		return logErrorStyle
	case strings.Contains(line, "level=WARN"):
		return logWarnStyle
	case strings.Contains(line, "level=DEBUG"):
		return logDebugStyle
	default:
		return logInfoStyle
	}
}

// Sender is the part of *tea.Program the log writer needs.
type Sender interface {
	Send(tea.Msg)
}

// LogWriter forwards written lines to the log panel from its own goroutine.
// Write never blocks: it may be called before the program runs or from
// inside Update. Lines are dropped when the buffer is full.
type LogWriter struct {
	program Sender
	lines   chan string
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// NewLogWriter starts the forwarding goroutine; Close stops it.
func NewLogWriter(program Sender) *LogWriter {
	w := &LogWriter{
		program: program,
		lines:   make(chan string, logForwardBuffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.forward()
	return w
}

func (w *LogWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		select {
		case w.lines <- string(line):
		case <-w.done:
			return len(p), nil
		default:
		}
	}
	return len(p), nil
}

// Close stops forwarding and waits for the goroutine to exit. Send must
// not be blocked forever at that point, i.e. the program has exited.
func (w *LogWriter) Close() error {
	w.once.Do(func() { close(w.done) })
	<-w.stopped
	return nil
}

func (w *LogWriter) forward() {
	defer close(w.stopped)
	for {
		select {
		case <-w.done:
			return
		case line := <-w.lines:
			w.program.Send(LogLineMsg{Line: line})
		}
	}
}
