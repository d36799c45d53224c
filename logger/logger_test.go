package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func reset(t *testing.T) {
	t.Cleanup(func() {
		mu.Lock()
		if file != nil {
			_ = file.Close()
		}
		cfg, file, intercept, attrs, base, enabled = Config{}, nil, nil, nil, nil, true
		mu.Unlock()
	})
}

func TestInterceptAndRestore(t *testing.T) {
	reset(t)

	dir := t.TempDir()
	if err := Init(Config{Enabled: true, Level: "debug", File: "logs/test.log"}, dir); err != nil {
		t.Fatalf("init: %v", err)
	}

	var panel bytes.Buffer
	Intercept(&panel)
	With("session", "abc")
	Debug("hello", "n", 1)
	Restore()

	out := panel.String()
	if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "session=abc") {
		t.Fatalf("intercepted output = %q", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "logs", "test.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Fatalf("file output = %q", data)
	}
}

func TestLevelFiltering(t *testing.T) {
	reset(t)

	if err := Init(Config{Enabled: true, Level: "warn"}, ""); err != nil {
		t.Fatalf("init: %v", err)
	}
	var buf bytes.Buffer
	Intercept(&buf)
	Info("quiet")
	Warn("loud")
	Error("louder")

	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") || !strings.Contains(out, "louder") {
		t.Fatalf("output = %q", out)
	}
}

func TestDisabledLoggerStaysQuiet(t *testing.T) {
	reset(t)

	if err := Init(Config{Enabled: false}, ""); err != nil {
		t.Fatalf("init: %v", err)
	}
	var buf bytes.Buffer
	Intercept(&buf)
	Error("nothing")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]string{"DEBUG": "DEBUG", "warning": "WARN", "error": "ERROR", "": "INFO", "bogus": "INFO"} {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
