package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/linanwx/echochat/config"
)

var onboardCmd = &cobra.Command{
	Use:     "onboard",
	Short:   "Create the echochat configuration file",
	GroupID: "setup",
	Long:    `Create the echochat configuration directory and write config.yaml from a short wizard.`,
	RunE:    runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(_ *cobra.Command, _ []string) error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil {
		fmt.Println("Config already exists at:", configPath)
		fmt.Println("To reconfigure, edit the file directly or delete it first.")
		return nil
	}

	cfg := config.DefaultConfig()
	var (
		prompt   = cfg.Chat.Prompt
		delay    = strconv.Itoa(cfg.Chat.EchoDelayMs)
		prefix   = cfg.Chat.BotPrefix
		showLogs = cfg.LogPanelEnabled()
	)

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Input prompt").
				Description("Shown in front of the text you type.").
				Value(&prompt),
			huh.NewInput().
				Title("Echo delay (milliseconds)").
				Description("How long the bot waits before answering.").
				Validate(validateDelay).
				Value(&delay),
			huh.NewInput().
				Title("Bot prefix").
				Description("Prepended to every reply.").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("prefix cannot be empty")
					}
					return nil
				}).
				Value(&prefix),
			huh.NewConfirm().
				Title("Show the log panel?").
				Description("Displays application logs above the conversation.").
				Value(&showLogs),
		),
	).Run()
	if err != nil {
		return err
	}

	if err := applyOnboardAnswers(cfg, prompt, delay, prefix, showLogs); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println("Config written to:", configPath)
	fmt.Println("Run 'echochat' to start chatting.")
	return nil
}

func validateDelay(s string) error {
	ms, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("delay must be a whole number of milliseconds")
	}
	if ms <= 0 {
		return fmt.Errorf("delay must be positive")
	}
	return nil
}

func applyOnboardAnswers(cfg *config.Config, prompt, delay, prefix string, showLogs bool) error {
	if err := validateDelay(delay); err != nil {
		return err
	}
	ms, _ := strconv.Atoi(strings.TrimSpace(delay))

	if prompt != "" {
		cfg.Chat.Prompt = prompt
	}
	cfg.Chat.EchoDelayMs = ms
	if prefix != "" {
		cfg.Chat.BotPrefix = prefix
	}
	cfg.Chat.ShowLogs = &showLogs
	return nil
}
