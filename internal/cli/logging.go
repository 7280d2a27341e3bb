package cli

import (
	"io"
	"log/slog"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

var slogLevels = map[string]slog.Level{
	types.LogLevelDebug: slog.LevelDebug,
	types.LogLevelInfo:  slog.LevelInfo,
	types.LogLevelWarn:  slog.LevelWarn,
	types.LogLevelError: slog.LevelError,
}

// newLogger builds a structured logger writing to w at the configured level
// and format. cfg must already be validated.
func newLogger(cfg types.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slogLevels[cfg.LogLevel]}

	var handler slog.Handler
	if cfg.LogFormat == types.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
