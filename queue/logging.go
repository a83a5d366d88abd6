package queue

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// Level is a small, ordered set of logging verbosities. Its underlying type
// is slog.Level, so a Level converts directly with slog.Level(level).
type Level slog.Level

const (
	LevelDebug    = Level(slog.LevelDebug)
	LevelInfo     = Level(slog.LevelInfo)
	LevelWarning  = Level(slog.LevelWarn)
	LevelCritical = Level(slog.LevelError + 4) // above Error, matches no built-in slog level
)

// NewLogger builds a leveled, colorized logger backed by tint, suitable for
// both the package's default logging and command-line use.
func NewLogger(level Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level: slog.Level(level),
	}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
