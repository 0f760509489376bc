package logging

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogger installs the default slog logger: text output for development,
// JSON when appEnv is "production".
func SetupLogger(appEnv, logLevel string, out io.Writer) {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(logLevel),
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)

	if appEnv == "production" {
		handler = slog.NewJSONHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
