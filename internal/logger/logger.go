package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/natefinch/lumberjack"
)

// New returns a slog logger writing human-readable lines to w through a
// charm log handler. Unknown levels are an error.
func New(prefix, level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	if w == nil {
		w = os.Stderr
	}

	handler := log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	return slog.New(handler), nil
}

// Open returns a logger writing to a size-rotated file at path, or one that
// discards everything when path is empty. The returned closer must be called
// on exit.
func Open(prefix, level, path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		l, err := New(prefix, level, io.Discard)
		return l, io.NopCloser(nil), err
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
	}

	l, err := New(prefix, level, file)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	return l, file, nil
}
