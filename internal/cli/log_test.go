package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug output missing after SetLogLevel: %q", buf.String())
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Saved 3 classes")

	if !regexp.MustCompile(`Saved 3 classes \(\d+(\.\d+)?[mµn]?s\)`).MatchString(buf.String()) {
		t.Errorf("progress output = %q, want message with elapsed time", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}
