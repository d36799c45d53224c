package dom

import "sync"

// Field is a single-line text input with key-down listeners.
type Field struct {
	ID string

	mu        sync.Mutex
	value     string
	listeners []func(key string)
}

func NewField(id string) *Field {
	return &Field{ID: id}
}

func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *Field) SetValue(v string) {
	f.mu.Lock()
	f.value = v
	f.mu.Unlock()
}

// Type replaces the field content, as a user typing into an empty field.
func (f *Field) Type(s string) {
	f.SetValue(s)
}

func (f *Field) OnKeyDown(fn func(key string)) {
	if fn == nil {
		return
	}
	f.mu.Lock()
	f.listeners = append(f.listeners, fn)
	f.mu.Unlock()
}

// KeyDown dispatches key to every listener in registration order.
func (f *Field) KeyDown(key string) {
	f.mu.Lock()
	listeners := append([]func(string){}, f.listeners...)
	f.mu.Unlock()
	for _, fn := range listeners {
		fn(key)
	}
}
