// Package watch reloads the devcon config file when it changes on disk.
// The host's reload callback pushes the refreshed values through the console
// variable registry, so editing the file behaves like a SET command.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"devcon/internal/config"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadFunc receives the freshly loaded config after a change settles.
type ReloadFunc func(*config.Config)

// ConfigWatcher watches one config file for writes and renames (editors often
// replace the file) and invokes a callback with the reloaded config. Rapid
// save bursts are debounced.
type ConfigWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	onReload ReloadFunc
	log      *zap.Logger

	debounce time.Duration
	lastSeen time.Time

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool

	// Reloads counts successful reloads, for tests and debugging.
	Reloads int
}

// NewConfigWatcher creates a watcher for path. The callback runs on the
// watcher goroutine; it must not block for long.
func NewConfigWatcher(path string, log *zap.Logger, onReload ReloadFunc) (*ConfigWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &ConfigWatcher{
		watcher:  fw,
		path:     path,
		onReload: onReload,
		log:      log,
		debounce: 500 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the watcher runs in its own goroutine
// until Stop is called or ctx is cancelled. The parent directory is watched
// rather than the file itself so atomic-save editors keep working.
func (w *ConfigWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Unlock()
		return err
	}
	w.running = true
	w.mu.Unlock()

	go w.loop(ctx)
	w.log.Info("config watcher started", zap.String("path", w.path))
	return nil
}

// Stop terminates the watcher and waits for its goroutine to exit.
func (w *ConfigWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.watcher.Close()
}

func (w *ConfigWatcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (w *ConfigWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	now := time.Now()
	if now.Sub(w.lastSeen) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.lastSeen = now
	w.mu.Unlock()

	cfg, err := config.Load(w.path)
	if err != nil {
		w.log.Warn("config reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	if err := cfg.Validate(); err != nil {
		w.log.Warn("config reload rejected", zap.String("path", w.path), zap.Error(err))
		return
	}

	w.mu.Lock()
	w.Reloads++
	w.mu.Unlock()

	w.log.Info("config reloaded", zap.String("path", w.path))
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

// SetDebounce overrides the debounce window. Tests shorten it.
func (w *ConfigWatcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	w.debounce = d
	w.mu.Unlock()
}
