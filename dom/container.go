// Package dom is an in-memory model of the browser surfaces the chat widget
// binds to: a scrollable container of message elements and a text field
// that emits key-down events.
package dom

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/linanwx/echochat/widget"
)

// Node is a child element of a Container.
type Node struct {
	ID string
	widget.Element
}

// Container is an append-only list of elements with a scroll offset.
// Each child occupies one unit of scroll height.
type Container struct {
	ID string

	mu           sync.RWMutex
	children     []Node
	scrollTop    int
	clientHeight int
}

// NewContainer creates a container showing clientHeight children at once.
func NewContainer(id string, clientHeight int) *Container {
	if clientHeight < 0 {
		clientHeight = 0
	}
	return &Container{ID: id, clientHeight: clientHeight}
}

func (c *Container) AppendChild(el widget.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()
	node := Node{
		ID:      fmt.Sprintf("%s-%d", c.ID, len(c.children)+1),
		Element: widget.Element{Classes: append([]string(nil), el.Classes...), Text: el.Text},
	}
	c.children = append(c.children, node)
}

func (c *Container) ScrollHeight() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.children)
}

// SetScrollTop clamps offset to [0, ScrollHeight-ClientHeight].
func (c *Container) SetScrollTop(offset int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	maxTop := max(len(c.children)-c.clientHeight, 0)
	c.scrollTop = min(max(offset, 0), maxTop)
}

func (c *Container) ScrollTop() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scrollTop
}

func (c *Container) ClientHeight() int {
	return c.clientHeight
}

// AtBottom reports whether the last child is within the visible window.
func (c *Container) AtBottom() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scrollTop >= max(len(c.children)-c.clientHeight, 0)
}

// Children returns a copy of the container's children in insertion order.
func (c *Container) Children() []Node {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Node(nil), c.children...)
}

// Elements returns the rendered elements without their IDs.
func (c *Container) Elements() []widget.Element {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]widget.Element, 0, len(c.children))
	for _, n := range c.children {
		out = append(out, n.Element)
	}
	return out
}

func (c *Container) Transcript() []widget.Entry {
	return widget.Transcript(c.Elements())
}

// NewSessionID returns an identifier for a chat box, used as its element ID.
func NewSessionID() string {
	return uuid.NewString()
}
