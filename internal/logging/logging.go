// Package logging builds the process-wide slog logger and lets the level,
// format and log file be changed without restarting the server.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sydlexius/crossref/internal/config"
)

// Rotation fallbacks applied when the config leaves a value at zero.
const (
	fallbackMaxSizeMB  = 10
	fallbackMaxFiles   = 5
	fallbackMaxAgeDays = 30
)

// handlerSlot is a slog.Handler whose delegate can be replaced while loggers
// derived from it stay valid.
type handlerSlot struct {
	inner atomic.Pointer[slog.Handler]
}

func newHandlerSlot(h slog.Handler) *handlerSlot {
	s := &handlerSlot{}
	s.inner.Store(&h)
	return s
}

func (s *handlerSlot) set(h slog.Handler) { s.inner.Store(&h) }

func (s *handlerSlot) load() slog.Handler { return *s.inner.Load() }

func (s *handlerSlot) Enabled(ctx context.Context, level slog.Level) bool {
	return s.load().Enabled(ctx, level)
}

func (s *handlerSlot) Handle(ctx context.Context, r slog.Record) error {
	return s.load().Handle(ctx, r)
}

// WithAttrs and WithGroup bind to the current delegate. Loggers created with
// With before a format change keep the old format until recreated.
func (s *handlerSlot) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newHandlerSlot(s.load().WithAttrs(attrs))
}

func (s *handlerSlot) WithGroup(name string) slog.Handler {
	return newHandlerSlot(s.load().WithGroup(name))
}

// Manager owns the logger and its optional rotating log file.
type Manager struct {
	console io.Writer
	level   *slog.LevelVar
	slot    *handlerSlot

	mu   sync.Mutex
	cfg  config.LoggingConfig
	file *lumberjack.Logger
}

// NewManager builds a logger from cfg writing to stdout (and to cfg.FilePath
// when set).
func NewManager(cfg config.LoggingConfig) (*Manager, *slog.Logger) {
	return newManager(cfg, os.Stdout)
}

func newManager(cfg config.LoggingConfig, console io.Writer) (*Manager, *slog.Logger) {
	m := &Manager{
		console: console,
		level:   &slog.LevelVar{},
		cfg:     cfg,
	}
	m.level.Set(ParseLevel(cfg.Level))
	var w io.Writer
	w, m.file = m.output(cfg)
	m.slot = newHandlerSlot(newHandler(w, m.level, cfg.Format))
	return m, slog.New(m.slot)
}

// Reconfigure applies cfg. A level change takes effect immediately; a
// different format or file target rebuilds the handler.
func (m *Manager) Reconfigure(cfg config.LoggingConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.level.Set(ParseLevel(cfg.Level))

	old := m.cfg
	m.cfg = cfg
	if cfg.Format == old.Format &&
		cfg.FilePath == old.FilePath &&
		cfg.MaxSizeMB == old.MaxSizeMB &&
		cfg.MaxFiles == old.MaxFiles &&
		cfg.MaxAgeDays == old.MaxAgeDays {
		return
	}

	if m.file != nil {
		m.file.Close() //nolint:errcheck
		m.file = nil
	}
	var w io.Writer
	w, m.file = m.output(cfg)
	m.slot.set(newHandler(w, m.level, cfg.Format))
}

// Config returns the configuration currently in effect.
func (m *Manager) Config() config.LoggingConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// Level returns the active log level.
func (m *Manager) Level() slog.Level {
	return m.level.Level()
}

// Close closes the log file, if any. It is safe to call more than once.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.file == nil {
		return nil
	}
	err := m.file.Close()
	m.file = nil
	return err
}

func (m *Manager) output(cfg config.LoggingConfig) (io.Writer, *lumberjack.Logger) {
	if cfg.FilePath == "" {
		return m.console, nil
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    orDefault(cfg.MaxSizeMB, fallbackMaxSizeMB),
		MaxBackups: orDefault(cfg.MaxFiles, fallbackMaxFiles),
		MaxAge:     orDefault(cfg.MaxAgeDays, fallbackMaxAgeDays),
	}
	return io.MultiWriter(m.console, lj), lj
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func newHandler(w io.Writer, leveler slog.Leveler, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: leveler}
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") to a
// slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
