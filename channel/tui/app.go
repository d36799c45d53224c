package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/linanwx/echochat/widget"
)

const defaultLogRatio = 0.3

var separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// Options configures the root model.
type Options struct {
	Prompt    string
	EchoDelay time.Duration
	BotPrefix string
	ShowLogs  bool
	LogRatio  float64

	// Scheduler replaces the tea.Tick scheduler, e.g. with a manual clock.
	Scheduler widget.Scheduler
}

// App is the root bubbletea model. It owns the panels and the chat widget
// bound to them.
type App struct {
	logPanel   *LogPanel
	chatPanel  *ChatPanel
	inputPanel *InputPanel
	ticks      *TickScheduler
	widget     *widget.ChatWidget

	showLogs      bool
	width, height int
	logRatio      float64
}

// NewApp creates the root model and binds a chat widget to its panels.
func NewApp(opts Options) *App {
	m := &App{
		logPanel:   NewLogPanel(),
		chatPanel:  NewChatPanel(),
		inputPanel: NewInputPanel(opts.Prompt),
		ticks:      &TickScheduler{},
		showLogs:   opts.ShowLogs,
		logRatio:   opts.LogRatio,
	}
	if m.logRatio <= 0 || m.logRatio >= 1 {
		m.logRatio = defaultLogRatio
	}

	var sched widget.Scheduler = m.ticks
	if opts.Scheduler != nil {
		sched = opts.Scheduler
	}
	wopts := []widget.Option{widget.WithEchoDelay(opts.EchoDelay)}
	if opts.BotPrefix != "" {
		wopts = append(wopts, widget.WithBotPrefix(opts.BotPrefix))
	}
	m.widget = widget.New(m.chatPanel, m.inputPanel, m.inputPanel, sched, wopts...)
	return m
}

func (m *App) Init() tea.Cmd {
	return textinput.Blink
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyPgUp, tea.KeyPgDown:
			_, cmd := m.chatPanel.Update(msg)
			return m, cmd
		}
		// The widget listens on the input panel; Enter submits there.
		_, cmd := m.inputPanel.Update(msg)
		cmds = append(cmds, cmd)

	case scheduledMsg:
		msg.fn()

	case LogLineMsg:
		_, cmd := m.logPanel.Update(msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		_, cmd := m.chatPanel.Update(msg)
		cmds = append(cmds, cmd)

	default:
		// e.g. cursor blink
		_, cmd := m.inputPanel.Update(msg)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.ticks.Drain())
	return m, tea.Batch(cmds...)
}

func (m *App) View() string {
	if m.width == 0 || m.height == 0 {
		return "initializing..."
	}

	sep := separatorStyle.Render(strings.Repeat("─", m.width))
	if !m.showLogs {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.chatPanel.View(),
			sep,
			m.inputPanel.View(),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.logPanel.View(),
		sep,
		m.chatPanel.View(),
		sep,
		m.inputPanel.View(),
	)
}

// Transcript returns the entries shown in the chat panel.
func (m *App) Transcript() []widget.Entry {
	return widget.Transcript(m.chatPanel.Elements())
}

// Elements returns the chat panel's rendered elements.
func (m *App) Elements() []widget.Element {
	return m.chatPanel.Elements()
}

func (m *App) recalcLayout() {
	const inputH = 1

	if !m.showLogs {
		chatH := max(m.height-inputH-1, 1)
		m.chatPanel.SetSize(m.width, chatH)
		m.inputPanel.SetSize(m.width, inputH)
		return
	}

	const sepLines = 2
	usable := max(m.height-inputH-sepLines, 2)
	logH := max(int(float64(usable)*m.logRatio), 1)
	chatH := max(usable-logH, 1)

	m.logPanel.SetSize(m.width, logH)
	m.chatPanel.SetSize(m.width, chatH)
	m.inputPanel.SetSize(m.width, inputH)
}
