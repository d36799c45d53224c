package config

const (
	defaultPrompt      = "you> "
	defaultEchoDelayMs = 500
	defaultBotPrefix   = "Bot: "
	defaultLogRatio    = 0.3
	defaultLogLevel    = "info"
	defaultLogFile     = "logs/echochat.log"
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	showLogs := true
	return &Config{
		Chat: ChatConfig{
			Prompt:      defaultPrompt,
			EchoDelayMs: defaultEchoDelayMs,
			BotPrefix:   defaultBotPrefix,
			ShowLogs:    &showLogs,
			LogRatio:    defaultLogRatio,
		},
		Logging: defaultLoggingConfig(),
	}
}

func defaultLoggingConfig() LoggingConfig {
	enabled := true
	return LoggingConfig{
		Enabled: &enabled,
		Level:   defaultLogLevel,
		File:    defaultLogFile,
	}
}

func (c *Config) applyDefaults() {
	if c.Chat.Prompt == "" {
		c.Chat.Prompt = defaultPrompt
	}
	if c.Chat.EchoDelayMs <= 0 {
		c.Chat.EchoDelayMs = defaultEchoDelayMs
	}
	if c.Chat.BotPrefix == "" {
		c.Chat.BotPrefix = defaultBotPrefix
	}
	if c.Chat.LogRatio <= 0 || c.Chat.LogRatio >= 1 {
		c.Chat.LogRatio = defaultLogRatio
	}
	if c.Chat.ShowLogs == nil {
		showLogs := true
		c.Chat.ShowLogs = &showLogs
	}

	def := defaultLoggingConfig()
	if c.Logging == (LoggingConfig{}) {
		c.Logging = def
		return
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Level
	}
	if c.Logging.File == "" && !c.Logging.Stdout {
		c.Logging.File = def.File
	}
	if c.Logging.Enabled == nil {
		c.Logging.Enabled = def.Enabled
	}
}
