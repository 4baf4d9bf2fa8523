package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/solarflux/goesxrs/internal/config"
)

// New returns a logger for cfg and a closer for its sink. The closer is a
// no-op for stdout and stderr.
func New(cfg config.LoggingConfig) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch cfg.Output {
	case "stdout", "":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	case "file":
		lj := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxAge:     cfg.File.MaxAgeDays,
			MaxBackups: cfg.File.MaxBackups,
			Compress:   cfg.File.Compress,
		}
		w, closer = lj, lj
	default:
		return nil, nil, fmt.Errorf("logging: unknown output %q", cfg.Output)
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch cfg.Format {
	case "json", "":
		h = slog.NewJSONHandler(w, opts)
	case "text":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	return slog.New(h), closer, nil
}

// Setup installs the logger for cfg as the slog default.
func Setup(cfg config.LoggingConfig) (io.Closer, error) {
	logger, closer, err := New(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closer, nil
}

// Sink owns the output of the default logger so a config reload can replace
// it.
type Sink struct {
	mu     sync.Mutex
	cfg    config.LoggingConfig
	closer io.Closer
}

// Install sets up cfg as the slog default and returns its Sink.
func Install(cfg config.LoggingConfig) (*Sink, error) {
	closer, err := Setup(cfg)
	if err != nil {
		return nil, err
	}
	return &Sink{cfg: cfg, closer: closer}, nil
}

// Apply installs cfg as the default logger when it differs from the current
// one and closes the previous sink. On error the current logger stays.
func (s *Sink) Apply(cfg config.LoggingConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg == s.cfg {
		return nil
	}
	closer, err := Setup(cfg)
	if err != nil {
		return err
	}
	old := s.closer
	s.cfg, s.closer = cfg, closer
	slog.Info("logging: reconfigured", "level", cfg.Level, "format", cfg.Format, "output", cfg.Output)
	return old.Close()
}

// Close closes the current sink.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closer.Close()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
