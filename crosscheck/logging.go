package crosscheck

import (
	"log/slog"
	"os"
)

func init() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	defaultLogger = slog.New(h)
}

var defaultLogger *slog.Logger

func SetLogHandler(handler slog.Handler) {
	defaultLogger = slog.New(handler)
}
