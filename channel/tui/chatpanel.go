package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/linanwx/echochat/widget"
)

var (
	messageStyle = lipgloss.NewStyle()
	userStyle    = messageStyle.Foreground(lipgloss.Color("6")) // cyan
)

// ChatPanel is the widget's display: rendered elements in a scrollable
// viewport. Scroll height is the number of wrapped lines.
type ChatPanel struct {
	viewport viewport.Model
	elements []widget.Element
	width    int
}

func NewChatPanel() *ChatPanel {
	vp := viewport.New(0, 0)
	vp.SetContent("")
	return &ChatPanel{viewport: vp}
}

func (p *ChatPanel) AppendChild(el widget.Element) {
	p.elements = append(p.elements, el)
	p.refresh()
}

func (p *ChatPanel) ScrollHeight() int {
	return p.viewport.TotalLineCount()
}

func (p *ChatPanel) SetScrollTop(offset int) {
	p.viewport.SetYOffset(offset)
}

// Elements returns what has been appended, in order.
func (p *ChatPanel) Elements() []widget.Element {
	return append([]widget.Element(nil), p.elements...)
}

func (p *ChatPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *ChatPanel) View() string {
	return p.viewport.View()
}

func (p *ChatPanel) SetSize(width, height int) {
	p.width = width
	p.viewport.Width = width
	p.viewport.Height = height
	atBottom := p.viewport.AtBottom()
	p.refresh()
	if atBottom {
		p.viewport.GotoBottom()
	}
}

func (p *ChatPanel) refresh() {
	lines := make([]string, 0, len(p.elements))
	for _, el := range p.elements {
		lines = append(lines, renderElement(el, p.width))
	}
	p.viewport.SetContent(strings.Join(lines, "\n"))
}

func renderElement(el widget.Element, width int) string {
	style := messageStyle
	if el.HasClass(widget.ClassUser) {
		style = userStyle
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(el.Text)
}
