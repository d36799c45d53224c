package channel

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/linanwx/echochat/dom"
	"github.com/linanwx/echochat/logger"
	"github.com/linanwx/echochat/schedule"
	"github.com/linanwx/echochat/widget"
)

const (
	plainQueueSize    = 64
	plainDrainTimeout = 5 * time.Second
)

// plainChannel reads one message per input line and prints every appended
// element as a line of output.
type plainChannel struct {
	cfg          CLIConfig
	display      *printingDisplay
	drainTimeout time.Duration
}

func newPlainChannel(cfg CLIConfig) *plainChannel {
	return &plainChannel{
		cfg: cfg,
		display: &printingDisplay{
			Container: dom.NewContainer(chatBoxID, 0),
			out:       cfg.Out,
		},
		drainTimeout: plainDrainTimeout,
	}
}

func (c *plainChannel) Name() string { return "plain" }

// Run returns after end of input once all echoes are delivered, or after
// drainTimeout, whichever is first.
func (c *plainChannel) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := schedule.NewLoop(plainQueueSize)
	field := dom.NewField(inputID)
	widget.New(c.display, field, field, loop, c.cfg.widgetOptions()...)

	logger.Info("chat started", "mode", c.Name())

	readErr := make(chan error, 1)
	go func() {
		err := readLines(ctx, c.cfg.In, loop, field)
		loop.Close()
		time.AfterFunc(c.drainTimeout, cancel)
		readErr <- err
	}()

	if err := loop.Run(ctx); err != nil {
		if ctx.Err() == nil {
			return err
		}
		if n := loop.Pending(); n > 0 {
			logger.Warn("dropping pending echoes", "pending", n)
		}
		return nil
	}

	// Run only returns nil after the reader closed the loop.
	if err := <-readErr; err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func (c *plainChannel) Elements() []widget.Element {
	return c.display.Elements()
}

// readLines types each line into field and presses Enter, on the loop.
func readLines(ctx context.Context, in io.Reader, loop *schedule.Loop, field *dom.Field) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := scanner.Text()
		ok := loop.Post(func() {
			field.Type(line)
			field.KeyDown(widget.KeyEnter)
		})
		if !ok {
			return nil
		}
	}
	return scanner.Err()
}

// printingDisplay is a container that also prints each appended element.
type printingDisplay struct {
	*dom.Container
	out io.Writer
}

// userLinePrefix marks the user's own lines so they stand apart from echoes.
const userLinePrefix = "> "

func (d *printingDisplay) AppendChild(el widget.Element) {
	d.Container.AppendChild(el)
	if el.HasClass(widget.ClassUser) {
		fmt.Fprintln(d.out, userLinePrefix+el.Text)
		return
	}
	fmt.Fprintln(d.out, el.Text)
}
