package widget

import (
	"strings"
	"time"
	"unicode"

	"github.com/linanwx/echochat/logger"
)

const (
	DefaultEchoDelay = 500 * time.Millisecond
	DefaultBotPrefix = "Bot: "

	// KeyEnter is the key identifier that triggers a submit.
	KeyEnter = "Enter"
)

// ChatWidget mediates message submission between an input and a display.
// It holds no transcript of its own; the display owns what was rendered.
type ChatWidget struct {
	display   Display
	input     Input
	scheduler Scheduler

	echoDelay time.Duration
	botPrefix string
}

// Option configures a ChatWidget.
type Option func(*ChatWidget)

// WithEchoDelay overrides the delay before the echo reply. Non-positive
// values are ignored.
func WithEchoDelay(d time.Duration) Option {
	return func(w *ChatWidget) {
		if d > 0 {
			w.echoDelay = d
		}
	}
}

// WithBotPrefix overrides the text prepended to echo replies.
func WithBotPrefix(prefix string) Option {
	return func(w *ChatWidget) { w.botPrefix = prefix }
}

// New binds a widget to its surfaces and registers its key handler on keys.
// keys may be nil when the host calls HandleKey itself.
func New(display Display, input Input, keys KeySource, scheduler Scheduler, opts ...Option) *ChatWidget {
	w := &ChatWidget{
		display:   display,
		input:     input,
		scheduler: scheduler,
		echoDelay: DefaultEchoDelay,
		botPrefix: DefaultBotPrefix,
	}
	for _, opt := range opts {
		opt(w)
	}
	if keys != nil {
		keys.OnKeyDown(w.HandleKey)
	}
	return w
}

// HandleKey submits on Enter and ignores every other key.
func (w *ChatWidget) HandleKey(key string) {
	if key == KeyEnter {
		w.Submit()
	}
}

// Submit appends the trimmed input as a user entry, clears the input and
// schedules the echo. Whitespace-only input is ignored and left in place.
func (w *ChatWidget) Submit() {
	text := strings.TrimFunc(w.input.Value(), isTrimSpace)
	if text == "" {
		return
	}

	w.display.AppendChild(Entry{Text: text, Origin: OriginUser}.Element())
	w.input.SetValue("")
	w.scrollToBottom()

	logger.Debug("message submitted", "len", len(text), "echoIn", w.echoDelay)
	w.scheduler.Schedule(w.echoDelay, func() { w.echo(text) })
}

// echo only sees the captured text, never the live input.
func (w *ChatWidget) echo(text string) {
	w.display.AppendChild(Entry{Text: w.botPrefix + text, Origin: OriginBot}.Element())
	w.scrollToBottom()
}

func (w *ChatWidget) scrollToBottom() {
	w.display.SetScrollTop(w.display.ScrollHeight())
}

// isTrimSpace matches the characters a browser's String.prototype.trim
// removes: Unicode Zs, the ASCII blanks and line terminators, U+FEFF and
// U+2028/U+2029. Unlike unicode.IsSpace it keeps U+0085.
func isTrimSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
