// Package watcher reloads the catalog when its file changes on disk.
package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Mode reports how a Service detects changes.
type Mode string

// Detection modes.
const (
	ModeNotify Mode = "fsnotify"
	ModePoll   Mode = "poll"
)

// fileState is what polling compares between ticks.
type fileState struct {
	exists  bool
	size    int64
	modTime time.Time
}

func statFile(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{exists: true, size: info.Size(), modTime: info.ModTime()}
}

// Service watches a single file and calls reloadFn after it changes.
//
// The parent directory is watched rather than the file itself so that atomic
// replacement (write to a temp file, then rename) is seen. Bursts of events
// are coalesced with a debounce timer. When fsnotify is unavailable, or the
// probe shows it does not deliver events for the directory, the service
// polls the file's size and modification time instead.
type Service struct {
	path     string
	reloadFn func(ctx context.Context) error
	logger   *slog.Logger

	debounce     time.Duration
	pollInterval time.Duration
	probeTimeout time.Duration
	pollOnly     bool

	mu   sync.Mutex
	mode Mode
}

// NewService creates a watcher for path.
func NewService(path string, reloadFn func(ctx context.Context) error, logger *slog.Logger) *Service {
	return &Service{
		path:         filepath.Clean(path),
		reloadFn:     reloadFn,
		logger:       logger.With("component", "catalog-watcher"),
		debounce:     1 * time.Second,
		pollInterval: 30 * time.Second,
		probeTimeout: 2 * time.Second,
	}
}

// SetDebounce overrides the default debounce interval (for testing).
func (s *Service) SetDebounce(d time.Duration) {
	s.debounce = d
}

// SetPollInterval overrides how often the file is checked in poll mode.
func (s *Service) SetPollInterval(d time.Duration) {
	s.pollInterval = d
}

// SetPollOnly skips fsnotify entirely.
func (s *Service) SetPollOnly(pollOnly bool) {
	s.pollOnly = pollOnly
}

// Mode returns the detection mode chosen by Start, or "" before Start.
func (s *Service) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Service) setMode(m Mode) {
	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()
}

// Start blocks until ctx is canceled.
func (s *Service) Start(ctx context.Context) {
	dir := filepath.Dir(s.path)

	w := s.openNotify(dir)
	var eventCh <-chan fsnotify.Event
	var errCh <-chan error
	var pollCh <-chan time.Time
	if w != nil {
		defer w.Close() //nolint:errcheck
		eventCh = w.Events
		errCh = w.Errors
		s.setMode(ModeNotify)
	} else {
		pollTicker := time.NewTicker(s.pollInterval)
		defer pollTicker.Stop()
		pollCh = pollTicker.C
		s.setMode(ModePoll)
	}
	s.logger.Info("catalog watcher starting", "path", s.path, "mode", s.Mode())

	// Starts stopped; Reset on each relevant change discards any stale tick.
	debounceTimer := time.NewTimer(time.Hour)
	debounceTimer.Stop()
	defer debounceTimer.Stop()
	reloadPending := false
	schedule := func() {
		debounceTimer.Reset(s.debounce)
		reloadPending = true
	}

	last := statFile(s.path)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("catalog watcher stopping")
			return

		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			if s.relevant(ev) {
				s.logger.Debug("catalog file event", "op", ev.Op.String())
				schedule()
			}

		case err, ok := <-errCh:
			if !ok {
				return
			}
			s.logger.Error("fsnotify error", "error", err)

		case <-pollCh:
			cur := statFile(s.path)
			if cur != last {
				last = cur
				if cur.exists {
					schedule()
				}
			}

		case <-debounceTimer.C:
			if !reloadPending {
				continue
			}
			reloadPending = false
			if err := s.reloadFn(ctx); err != nil {
				s.logger.Error("catalog reload failed", "path", s.path, "error", err)
				continue
			}
			s.logger.Info("catalog reloaded after change", "path", s.path)
		}
	}
}

// openNotify returns a watcher on dir, or nil when change notification is
// not usable there.
func (s *Service) openNotify(dir string) *fsnotify.Watcher {
	if s.pollOnly {
		return nil
	}
	if !ProbeFSNotify(dir, s.probeTimeout) {
		s.logger.Warn("fsnotify does not deliver events here, polling instead", "dir", dir)
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		s.logger.Warn("fsnotify unavailable, polling instead", "error", err)
		return nil
	}
	if err := w.Add(dir); err != nil {
		s.logger.Warn("cannot watch catalog directory, polling instead", "dir", dir, "error", err)
		_ = w.Close()
		return nil
	}
	return w
}

// relevant reports whether ev may have produced a new version of the file.
// Removes and renames away are ignored; the replacement's Create follows.
func (s *Service) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != s.path {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write)
}
