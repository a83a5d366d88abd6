package queue

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(LevelWarning, &buf)
	logger.Debug("should not appear")
	logger.Info("also should not appear")
	logger.Warn("should appear")

	out := buf.String()
	assertTrue(t, !strings.Contains(out, "should not appear"), "debug/info below the configured level leaked through")
	assertTrue(t, strings.Contains(out, "should appear"), "warn at the configured level was dropped")
}

func TestNewLoggerNilWriterDiscards(t *testing.T) {
	logger := NewLogger(LevelInfo, nil)
	assertTrue(t, logger != nil, "expected a non-nil logger even with a nil writer")
	logger.Info("discarded")
}

func TestLevelCriticalAboveSlogError(t *testing.T) {
	assertTrue(t, slog.Level(LevelCritical) > slog.LevelError, "LevelCritical must sit above slog.LevelError")
}

func TestDiscardLoggerIsSilent(t *testing.T) {
	logger := discardLogger()
	assertTrue(t, logger != nil, "expected a non-nil discard logger")
	logger.Error("nobody should see this", "k", "v")
}
