// Package watch re-runs a check whenever one of the watched documents changes.
//
// The parent directory of every tracked file is watched rather than the file
// itself, so editors that save by rename and files that do not exist yet are
// both picked up. Bursts of events are debounced into a single run.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/erraggy/specparity/loader"
)

// DefaultDebounce is how long the watcher waits for more changes before re-running.
const DefaultDebounce = 250 * time.Millisecond

// CheckFunc runs one check. Its error is logged and watching continues.
type CheckFunc func(ctx context.Context) error

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce delay. Non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l loader.Logger) Option {
	return func(w *Watcher) {
		w.logger = loader.OrNop(l)
	}
}

// Watcher watches a set of document paths and runs a check after changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	targets  []target
	dirs     []string
	debounce time.Duration
	logger   loader.Logger

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op
}

// target is one document location split into the directory to watch and the
// slash-separated pattern matched against paths relative to it.
type target struct {
	dir     string
	pattern string
}

// New creates a Watcher for document locations relative to dir, resolved the
// way [loader.Locate] resolves them. A location may be a doublestar pattern,
// in which case its static base directory is watched and events are matched
// against the rest of the pattern. dir itself is never read as a pattern.
func New(dir string, locations []string, opts ...Option) (*Watcher, error) {
	if len(locations) == 0 {
		return nil, errors.New("watch: no paths to watch")
	}

	w := &Watcher{
		debounce: DefaultDebounce,
		logger:   loader.NopLogger{},
		pending:  make(map[string]fsnotify.Op),
	}
	for _, opt := range opts {
		opt(w)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("watch: resolving %s: %w", dir, err)
	}
	for _, loc := range locations {
		root := absDir
		if filepath.IsAbs(loc) {
			root = ""
		}
		// the static prefix of a pattern; the parent directory of a plain path
		base, pattern := doublestar.SplitPattern(filepath.ToSlash(loc))
		t := target{dir: filepath.Join(root, filepath.FromSlash(base)), pattern: pattern}
		w.targets = append(w.targets, t)
		if !slices.Contains(w.dirs, t.dir) {
			w.dirs = append(w.dirs, t.dir)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: creating watcher: %w", err)
	}
	w.fsw = fsw

	added := 0
	for _, d := range w.dirs {
		if err := fsw.Add(d); err != nil {
			w.logger.Warn("failed to watch directory", "dir", d, "error", err)
			continue
		}
		added++
		w.logger.Debug("watching directory", "dir", d)
	}
	if added == 0 {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch: none of %d directories could be watched", len(w.dirs))
	}
	return w, nil
}

// Dirs returns the directories being watched.
func (w *Watcher) Dirs() []string {
	return slices.Clone(w.dirs)
}

// Tracked reports whether path is one of the watched documents.
func (w *Watcher) Tracked(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, t := range w.targets {
		rel, err := filepath.Rel(t.dir, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		name := filepath.ToSlash(rel)
		if name == t.pattern {
			return true
		}
		if ok, _ := doublestar.Match(t.pattern, name); ok {
			return true
		}
	}
	return false
}

// Run calls check once, then again after every debounced burst of changes to
// a tracked file, until ctx is cancelled. Run closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, check CheckFunc) error {
	defer func() { _ = w.fsw.Close() }()

	w.invoke(ctx, check)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.Tracked(event.Name) {
				continue
			}
			w.pendingMu.Lock()
			w.pending[event.Name] |= event.Op
			w.pendingMu.Unlock()
			w.logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)

		case <-timer.C:
			changed := w.drain()
			if len(changed) == 0 {
				continue
			}
			w.logger.Info("re-running check", "changed", changed)
			w.invoke(ctx, check)
		}
	}
}

// drain returns the pending paths in sorted order and clears them.
func (w *Watcher) drain() []string {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()
	out := make([]string, 0, len(w.pending))
	for p := range w.pending {
		out = append(out, p)
	}
	clear(w.pending)
	slices.Sort(out)
	return out
}

func (w *Watcher) invoke(ctx context.Context, check CheckFunc) {
	if err := check(ctx); err != nil {
		w.logger.Warn("check failed", "error", err)
	}
}

// Close stops the watcher without running it.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
