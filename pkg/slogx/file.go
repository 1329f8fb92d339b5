package slogx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// NewFileLogger opens path in append-only mode (creating parent directories as
// needed) and returns a text logger writing to it. Records are only ever
// appended; the caller owns the returned closer.
func NewFileLogger(path string) (*slog.Logger, io.Closer, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("slogx: create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("slogx: open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, f, nil
}
