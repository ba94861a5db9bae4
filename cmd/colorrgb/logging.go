package main

import (
	"io"
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/colorrgb/config"
)

const (
	logFileName  = "colorrgb.slog"
	logMaxSizeMB = 8
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging writes JSON logs to a rotating file under cfg.LogDir
// Logging is discarded when no directory is configured, stdout belongs to the command
func setupLogging(cfg config.Config) (*slog.Logger, io.Closer) {
	if cfg.LogDir == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, logFileName),
		MaxSize:    logMaxSizeMB,
		MaxBackups: 1,
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(h), w
}
