package channel

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/linanwx/echochat/channel/tui"
	"github.com/linanwx/echochat/logger"
	"github.com/linanwx/echochat/widget"
)

// TUIChannel runs the chat widget inside a full-screen bubbletea program.
type TUIChannel struct {
	cfg CLIConfig
	app *tui.App
}

func newTUIChannel(cfg CLIConfig) *TUIChannel {
	return &TUIChannel{
		cfg: cfg,
		app: tui.NewApp(tui.Options{
			Prompt:    cfg.Prompt,
			EchoDelay: cfg.EchoDelay,
			BotPrefix: cfg.BotPrefix,
			ShowLogs:  cfg.ShowLogs,
			LogRatio:  cfg.LogRatio,
		}),
	}
}

func (c *TUIChannel) Name() string { return "tui" }

func (c *TUIChannel) Run(ctx context.Context) error {
	program := tea.NewProgram(c.app,
		tea.WithContext(ctx),
		tea.WithInput(c.cfg.In),
		tea.WithOutput(c.cfg.Out),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("chat started", "mode", c.Name())

	// Log lines would corrupt the alt screen; show them in the log panel.
	logs := tui.NewLogWriter(program)
	logger.Intercept(logs)
	_, err := program.Run()
	logger.Restore()
	logs.Close()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (c *TUIChannel) Elements() []widget.Element {
	return c.app.Elements()
}
