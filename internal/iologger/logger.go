// Package iologger configures the default slog logger of scnet.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/scnet/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "scnet.log"

// Init sets the global slog logger according to the log config.
// With "file" destination the log goes to LogFile in logDir. If
// appendLog is false the file is truncated.
func Init(logDir string, cfg config.LogConfig, appendLog bool) error {
	writer, err := destination(logDir, cfg.Destination, appendLog)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "text", "tint":
		// tint is rendered as plain text, colors are left to gn messages
		handler = slog.NewTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func destination(logDir, dest string, appendLog bool) (io.Writer, error) {
	switch dest {
	case "stdout":
		return os.Stdout, nil
	case "file":
		path := filepath.Join(logDir, LogFile)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if appendLog {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		f, err := os.OpenFile(path, flags, 0644)
		if err != nil {
			return nil, CreateLogFileError(path, err)
		}
		return f, nil
	default:
		return os.Stderr, nil
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
