package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/linanwx/echochat/channel"
	"github.com/linanwx/echochat/config"
	"github.com/linanwx/echochat/dom"
	"github.com/linanwx/echochat/logger"
	"github.com/linanwx/echochat/widget"
)

var chatCmd = &cobra.Command{
	Use:     "chat",
	Short:   "Start an interactive chat session",
	GroupID: "chat",
	Long: `Start an interactive chat session.

On a terminal the session runs full screen; press Enter to send, Esc or
Ctrl+C to quit. When input is piped, each line is sent as one message and
the session ends once every reply has arrived.

Examples:
  echochat chat
  echochat chat --delay 2s --prefix "Echo: "
  printf 'hi\nthere\n' | echochat chat
  echochat chat --export chat.html --format html`,
	RunE: runChat,
}

type chatFlags struct {
	plain  bool
	delay  time.Duration
	prefix string
	export string
	format string
}

var chatOpts chatFlags

func init() {
	registerChatFlags(chatCmd)
	rootCmd.AddCommand(chatCmd)
}

// registerChatFlags is shared by chat and the root command, which runs a
// chat session when invoked without a subcommand.
func registerChatFlags(c *cobra.Command) {
	c.Flags().BoolVar(&chatOpts.plain, "plain", false, "Use line mode even on a terminal")
	c.Flags().DurationVar(&chatOpts.delay, "delay", 0, "Echo delay (default from config, 500ms)")
	c.Flags().StringVar(&chatOpts.prefix, "prefix", "", `Echo prefix (default from config, "Bot: ")`)
	c.Flags().StringVar(&chatOpts.export, "export", "", `Write the transcript to this file when the session ends ("-" for stdout)`)
	c.Flags().StringVar(&chatOpts.format, "format", "text", "Transcript format: text, html or json")
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	format, err := dom.ParseFormat(chatOpts.format)
	if err != nil {
		return err
	}
	applyChatOverrides(cfg, chatOpts)

	sessionID := dom.NewSessionID()
	logger.With("session", sessionID)

	ch := channel.NewCLIChannel(channel.CLIConfig{
		Prompt:     cfg.Chat.Prompt,
		EchoDelay:  cfg.EchoDelay(),
		BotPrefix:  cfg.Chat.BotPrefix,
		ShowLogs:   cfg.LogPanelEnabled(),
		LogRatio:   cfg.Chat.LogRatio,
		ForcePlain: chatOpts.plain,
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := ch.Run(ctx); err != nil {
		return fmt.Errorf("%s channel: %w", ch.Name(), err)
	}

	elements := ch.Elements()
	logger.Info("chat ended", "mode", ch.Name(), "entries", len(elements))

	if chatOpts.export == "" {
		return nil
	}
	return exportTranscript(cmd.OutOrStdout(), chatOpts.export, format, sessionID, elements)
}

func applyChatOverrides(cfg *config.Config, f chatFlags) {
	// The config keeps whole milliseconds; round up so a positive flag
	// never collapses to 0, which would mean "use the default".
	if f.delay > 0 {
		cfg.Chat.EchoDelayMs = int((f.delay + time.Millisecond - 1) / time.Millisecond)
	}
	if f.prefix != "" {
		cfg.Chat.BotPrefix = f.prefix
	}
}

func exportTranscript(stdout io.Writer, path string, format dom.Format, sessionID string, elements []widget.Element) error {
	box := dom.NewContainer(sessionID, 0)
	for _, el := range elements {
		box.AppendChild(el)
	}

	if strings.TrimSpace(path) == "-" {
		return dom.Render(stdout, format, box)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create transcript file: %w", err)
	}
	if err := dom.Render(f, format, box); err != nil {
		_ = f.Close()
		return fmt.Errorf("write transcript: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	logger.Info("transcript exported", "path", path, "format", string(format))
	return nil
}
