package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/linanwx/echochat/widget"
)

// InputPanel is the widget's input field and key-down source. Every key is
// reported to listeners and then handed to the textinput unchanged.
type InputPanel struct {
	input         textinput.Model
	listeners     []func(key string)
	width, height int
}

// NewInputPanel creates an input panel with the given prompt.
func NewInputPanel(prompt string) *InputPanel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Focus()
	return &InputPanel{input: ti}
}

func (p *InputPanel) Value() string     { return p.input.Value() }
func (p *InputPanel) SetValue(v string) { p.input.SetValue(v) }

func (p *InputPanel) OnKeyDown(fn func(key string)) {
	if fn != nil {
		p.listeners = append(p.listeners, fn)
	}
}

func (p *InputPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		name := keyName(key)
		for _, fn := range p.listeners {
			fn(name)
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *InputPanel) View() string {
	return p.input.View()
}

func (p *InputPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(width-len(p.input.Prompt)-1, 1)
}

// keyName maps bubbletea keys to the identifiers the widget understands.
func keyName(k tea.KeyMsg) string {
	if k.Type == tea.KeyEnter {
		return widget.KeyEnter
	}
	return k.String()
}
