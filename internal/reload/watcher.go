// Package reload keeps a DictionaryStore in step with the table files on
// disk.
package reload

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cours-de-latin/ithkuil"
)

// Stats tracks watcher activity.
type Stats struct {
	Events     int
	Reloads    int
	Failures   int
	LastReload time.Time
	LastError  string
}

// Watcher reloads the dictionary when either table file changes. Rapid
// saves are batched into one reload after the debounce window.
type Watcher struct {
	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	store     *ithkuil.DictionaryStore
	affixPath string
	rootPath  string
	debounce  time.Duration
	pending   time.Time
	logger    *slog.Logger
	stopCh    chan struct{}
	doneCh    chan struct{}
	running   bool
	closeOnce sync.Once
	stats     Stats
}

// New creates a Watcher for the two table files. An empty path is not
// watched.
func New(store *ithkuil.DictionaryStore, affixPath, rootPath string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if affixPath == "" && rootPath == "" {
		return nil, errors.New("reload: no table files to watch")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		watcher:   fw,
		store:     store,
		affixPath: affixPath,
		rootPath:  rootPath,
		debounce:  debounce,
		logger:    logger.With(slog.String("component", "reload")),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}, nil
}

// Start watches the directories holding the table files. Editors often
// replace a file rather than write it, so the directory is watched and
// events are filtered by name. Start does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	for _, dir := range w.dirs() {
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Warn("watch failed", slog.String("dir", dir), slog.String("error", err.Error()))
			continue
		}
		w.logger.Info("watching", slog.String("dir", dir))
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher, waits for the event loop to exit and releases
// the underlying notifier. It is safe to call on a watcher never started.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	w.closeOnce.Do(func() {
		if err := w.watcher.Close(); err != nil {
			w.logger.Error("close watcher", slog.String("error", err.Error()))
		}
		w.logger.Info("stopped")
	})
}

// Stats returns a copy of the watcher counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Reload reads both tables and swaps the new snapshot in. On failure the
// current snapshot stays in place.
func (w *Watcher) Reload(ctx context.Context) error {
	start := time.Now()
	d, err := ithkuil.LoadDictionary(ctx, w.affixPath, w.rootPath)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.stats.Failures++
		w.stats.LastError = err.Error()
		w.logger.Error("reload failed, keeping previous dictionary", slog.String("error", err.Error()))
		return err
	}
	w.store.Swap(d)
	stats := d.Stats()
	w.stats.Reloads++
	w.stats.LastReload = stats.LoadedAt
	w.stats.LastError = ""
	w.logger.Info("dictionary reloaded",
		slog.Int("affixes", stats.Affixes),
		slog.Int("roots", stats.Roots),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

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
			w.logger.Error("watcher error", slog.String("error", err.Error()))
			w.mu.Lock()
			w.stats.Failures++
			w.mu.Unlock()
		case <-ticker.C:
			if w.settled() {
				_ = w.Reload(ctx)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !w.watched(event.Name) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	w.logger.Debug("table changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))

	w.mu.Lock()
	w.stats.Events++
	w.pending = time.Now()
	w.mu.Unlock()
}

// settled reports whether a change is pending and the debounce window has
// passed since the last event, clearing the pending mark.
func (w *Watcher) settled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounce {
		return false
	}
	w.pending = time.Time{}
	return true
}

func (w *Watcher) watched(name string) bool {
	name = filepath.Clean(name)
	for _, p := range []string{w.affixPath, w.rootPath} {
		if p != "" && filepath.Clean(p) == name {
			return true
		}
	}
	return false
}

func (w *Watcher) dirs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range []string{w.affixPath, w.rootPath} {
		if p == "" {
			continue
		}
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	return out
}
