// Package channel hosts the chat widget on a terminal: a bubbletea TUI when
// stdin is a terminal, a line-oriented loop otherwise.
package channel

import (
	"context"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/linanwx/echochat/widget"
)

const (
	inputID   = "chat-input"
	chatBoxID = "chat-box"
)

// Channel runs one interactive chat session.
type Channel interface {
	// Name returns the channel name ("tui" or "plain").
	Name() string

	// Run blocks until the session ends: the user quits, input is exhausted,
	// or ctx is cancelled.
	Run(ctx context.Context) error

	// Elements returns everything the session's display rendered, in order.
	Elements() []widget.Element
}

// CLIConfig configures a terminal channel.
type CLIConfig struct {
	Prompt    string
	EchoDelay time.Duration
	BotPrefix string
	ShowLogs  bool
	LogRatio  float64

	// ForcePlain selects line mode even on a terminal.
	ForcePlain bool

	// In and Out default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer
}

// NewCLIChannel creates a CLI channel.
// If stdin is a terminal, it returns a TUI-based channel; otherwise a plain one.
func NewCLIChannel(cfg CLIConfig) Channel {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if !cfg.ForcePlain && isTerminal(cfg.In) {
		return newTUIChannel(cfg)
	}
	return newPlainChannel(cfg)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (cfg CLIConfig) widgetOptions() []widget.Option {
	opts := []widget.Option{widget.WithEchoDelay(cfg.EchoDelay)}
	if cfg.BotPrefix != "" {
		opts = append(opts, widget.WithBotPrefix(cfg.BotPrefix))
	}
	return opts
}
