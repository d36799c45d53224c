package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/linanwx/echochat/logger"
)

const (
	envEchoDelayMs = "ECHOCHAT_ECHO_DELAY_MS"
	envBotPrefix   = "ECHOCHAT_BOT_PREFIX"
	envLogLevel    = "ECHOCHAT_LOG_LEVEL"
)

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func applyEnv(c *Config) {
	if v := strings.TrimSpace(os.Getenv(envEchoDelayMs)); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			logger.Warn("ignoring invalid echo delay override", "env", envEchoDelayMs, "value", v)
		} else {
			c.Chat.EchoDelayMs = ms
		}
	}
	if v, ok := os.LookupEnv(envBotPrefix); ok && v != "" {
		c.Chat.BotPrefix = v
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		c.Logging.Level = v
	}
}
