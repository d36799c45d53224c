// Package cmd implements the echochat command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linanwx/echochat/config"
	"github.com/linanwx/echochat/logger"
)

var configDirFlag string

var rootCmd = &cobra.Command{
	Use:   "echochat",
	Short: "A terminal chat widget that echoes what you type",
	Long: `echochat is a small terminal chat: every message you send is added to
the conversation and answered, half a second later, by a bot that repeats it.

Run without arguments to start an interactive session.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRuntime,
	RunE:              runChat,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Config directory (default ~/.echochat)")
	rootCmd.AddGroup(&cobra.Group{ID: "chat", Title: "Chat:"})
	rootCmd.AddGroup(&cobra.Group{ID: "setup", Title: "Setup:"})
	registerChatFlags(rootCmd)
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setupRuntime(_ *cobra.Command, _ []string) error {
	config.SetConfigDir(configDirFlag)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error, using defaults:", err)
		cfg = config.DefaultConfig()
	}
	dir, _ := config.ConfigDir()
	if err := logger.Init(cfg.BuildLoggerConfig(), dir); err != nil {
		fmt.Fprintln(os.Stderr, "logger init error:", err)
	}
	return nil
}
