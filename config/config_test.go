package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.EchoDelay() != 500*time.Millisecond {
		t.Fatalf("delay = %v", cfg.EchoDelay())
	}
	if cfg.Chat.BotPrefix != "Bot: " || cfg.Chat.Prompt != "you> " {
		t.Fatalf("unexpected chat defaults: %+v", cfg.Chat)
	}
	if !cfg.LogPanelEnabled() {
		t.Fatal("log panel should default to on")
	}
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("chat:\n  echoDelayMs: -3\n  botPrefix: \"Echo: \"\n  logRatio: 2\n  showLogs: false\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Chat.EchoDelayMs != defaultEchoDelayMs {
		t.Fatalf("negative delay not replaced: %d", cfg.Chat.EchoDelayMs)
	}
	if cfg.Chat.BotPrefix != "Echo: " {
		t.Fatalf("prefix = %q", cfg.Chat.BotPrefix)
	}
	if cfg.Chat.LogRatio != defaultLogRatio {
		t.Fatalf("log ratio = %v", cfg.Chat.LogRatio)
	}
	if cfg.LogPanelEnabled() {
		t.Fatal("showLogs: false ignored")
	}
	lc := cfg.BuildLoggerConfig()
	if !lc.Enabled || lc.Level != "debug" || lc.File != defaultLogFile {
		t.Fatalf("logger config = %+v", lc)
	}
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("chat: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveFileThenLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Chat.EchoDelayMs = 1200
	cfg.Chat.Prompt = "me> "
	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.EchoDelay() != 1200*time.Millisecond || loaded.Chat.Prompt != "me> " {
		t.Fatalf("loaded = %+v", loaded.Chat)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	SetConfigDir(dir)
	t.Cleanup(func() { SetConfigDir("") })

	t.Setenv(envEchoDelayMs, "750")
	t.Setenv(envBotPrefix, "Parrot: ")
	t.Setenv(envLogLevel, "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.EchoDelay() != 750*time.Millisecond {
		t.Fatalf("delay = %v", cfg.EchoDelay())
	}
	if cfg.Chat.BotPrefix != "Parrot: " || cfg.Logging.Level != "warn" {
		t.Fatalf("overrides not applied: %+v %+v", cfg.Chat, cfg.Logging)
	}

	t.Setenv(envEchoDelayMs, "soon")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.EchoDelay() != 500*time.Millisecond {
		t.Fatalf("invalid override applied: %v", cfg.EchoDelay())
	}
}

func TestConfigDirResolution(t *testing.T) {
	t.Setenv(envConfigDir, "/tmp/from-env")
	SetConfigDir("")
	if dir, _ := ConfigDir(); dir != "/tmp/from-env" {
		t.Fatalf("dir = %q", dir)
	}

	SetConfigDir("  /tmp/from-flag ")
	t.Cleanup(func() { SetConfigDir("") })
	path, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/tmp/from-flag", "config.yaml") {
		t.Fatalf("path = %q", path)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ECHOCHAT_BOT_PREFIX=FromFile\nECHOCHAT_TEST_ONLY=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(envBotPrefix, "FromEnv")
	t.Setenv("ECHOCHAT_TEST_ONLY", "")
	os.Unsetenv("ECHOCHAT_TEST_ONLY")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv(envBotPrefix); got != "FromEnv" {
		t.Fatalf("existing variable overridden: %q", got)
	}
	if got := os.Getenv("ECHOCHAT_TEST_ONLY"); got != "1" {
		t.Fatalf("new variable not loaded: %q", got)
	}
}
