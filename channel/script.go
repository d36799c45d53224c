package channel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/linanwx/echochat/dom"
	"github.com/linanwx/echochat/schedule"
	"github.com/linanwx/echochat/widget"
)

// ScriptConfig describes a headless run: each text is typed and submitted
// in order, then the run waits for every echo.
type ScriptConfig struct {
	Texts     []string
	EchoDelay time.Duration
	BotPrefix string
	BoxID     string

	// Instant advances a logical clock instead of waiting in real time.
	Instant bool
}

// RunScript plays cfg.Texts through a chat widget bound to in-memory
// surfaces and returns the resulting chat box.
func RunScript(ctx context.Context, cfg ScriptConfig) (*dom.Container, error) {
	boxID := cfg.BoxID
	if boxID == "" {
		boxID = chatBoxID
	}
	box := dom.NewContainer(boxID, 0)
	field := dom.NewField(inputID)

	opts := CLIConfig{EchoDelay: cfg.EchoDelay, BotPrefix: cfg.BotPrefix}.widgetOptions()

	if cfg.Instant {
		clock := schedule.NewManual()
		widget.New(box, field, field, clock, opts...)
		for _, text := range cfg.Texts {
			field.Type(text)
			field.KeyDown(widget.KeyEnter)
		}
		clock.Flush()
		return box, nil
	}

	loop := schedule.NewLoop(len(cfg.Texts) + 1)
	widget.New(box, field, field, loop, opts...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer loop.Close()
		for _, text := range cfg.Texts {
			ok := loop.Post(func() {
				field.Type(text)
				field.KeyDown(widget.KeyEnter)
			})
			if !ok {
				return nil
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return box, err
	}
	return box, nil
}
