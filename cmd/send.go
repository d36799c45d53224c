package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/linanwx/echochat/channel"
	"github.com/linanwx/echochat/config"
	"github.com/linanwx/echochat/dom"
)

var sendCmd = &cobra.Command{
	Use:     "send",
	Short:   "Send messages without a UI and print the transcript",
	GroupID: "chat",
	Long: `Send one or more messages through the chat widget without a UI, wait
for every reply and print the resulting transcript.

Examples:
  echochat send --text hi --text "how are you"
  echochat send --text hi --instant --format json`,
	RunE: runSend,
}

var (
	sendTexts   []string
	sendFormat  string
	sendInstant bool
	sendDelay   time.Duration
	sendPrefix  string
)

func init() {
	sendCmd.Flags().StringArrayVar(&sendTexts, "text", nil, "Message text (repeatable, required)")
	sendCmd.Flags().StringVar(&sendFormat, "format", "text", "Output format: text, html or json")
	sendCmd.Flags().BoolVar(&sendInstant, "instant", false, "Skip real delays")
	sendCmd.Flags().DurationVar(&sendDelay, "delay", 0, "Echo delay (default from config)")
	sendCmd.Flags().StringVar(&sendPrefix, "prefix", "", "Echo prefix (default from config)")
	_ = sendCmd.MarkFlagRequired("text")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	format, err := dom.ParseFormat(sendFormat)
	if err != nil {
		return err
	}
	applyChatOverrides(cfg, chatFlags{delay: sendDelay, prefix: sendPrefix})

	box, err := channel.RunScript(context.Background(), channel.ScriptConfig{
		Texts:     sendTexts,
		EchoDelay: cfg.EchoDelay(),
		BotPrefix: cfg.Chat.BotPrefix,
		BoxID:     dom.NewSessionID(),
		Instant:   sendInstant,
	})
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return dom.Render(cmd.OutOrStdout(), format, box)
}
