package widget

import "slices"

// Origin identifies who produced an entry.
type Origin int

const (
	OriginUser Origin = iota
	OriginBot
)

func (o Origin) String() string {
	switch o {
	case OriginUser:
		return "user"
	case OriginBot:
		return "bot"
	default:
		return "unknown"
	}
}

const (
	ClassMessage = "message"
	ClassUser    = "user"
)

// Entry is one line of chat.
type Entry struct {
	Text   string
	Origin Origin
}

// Element is the rendered form of an Entry as appended to a display.
type Element struct {
	Classes []string
	Text    string
}

// Element renders the entry. User entries carry "message" and "user";
// bot entries carry only "message".
func (e Entry) Element() Element {
	classes := []string{ClassMessage}
	if e.Origin == OriginUser {
		classes = append(classes, ClassUser)
	}
	return Element{Classes: classes, Text: e.Text}
}

// HasClass reports whether the element carries class c.
func (el Element) HasClass(c string) bool {
	return slices.Contains(el.Classes, c)
}

// Entry recovers the entry an element was rendered from.
func (el Element) Entry() Entry {
	origin := OriginBot
	if el.HasClass(ClassUser) {
		origin = OriginUser
	}
	return Entry{Text: el.Text, Origin: origin}
}

// Transcript derives the ordered entry list from a display's children.
func Transcript(elements []Element) []Entry {
	out := make([]Entry, 0, len(elements))
	for _, el := range elements {
		out = append(out, el.Entry())
	}
	return out
}
