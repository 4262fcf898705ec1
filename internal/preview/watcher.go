package preview

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Watcher polls a path for modification-time changes. Preview reloads
// are driven by it; there is no inotify dependency, polling at a human
// interval is plenty for a development preview.
type Watcher struct {
	path     string
	interval time.Duration
	onChange func(path string)

	mu         sync.Mutex
	timestamps map[string]time.Time
}

// NewWatcher watches path (a file or a directory tree) and calls
// onChange with the changed file's path.
func NewWatcher(path string, interval time.Duration, onChange func(path string)) *Watcher {
	return &Watcher{
		path:       path,
		interval:   interval,
		onChange:   onChange,
		timestamps: make(map[string]time.Time),
	}
}

// Run polls until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.scan(false)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.scan(true)
		}
	}
}

// scan walks the watched path and records modification times. When
// report is set, new or newer files are passed to the callback.
func (w *Watcher) scan(report bool) {
	var changed []string

	w.mu.Lock()
	filepath.Walk(w.path, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		modTime := info.ModTime()
		last, seen := w.timestamps[p]
		if !seen || modTime.After(last) {
			w.timestamps[p] = modTime
			changed = append(changed, p)
		}
		return nil
	})
	for p := range w.timestamps {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			delete(w.timestamps, p)
			changed = append(changed, p)
		}
	}
	w.mu.Unlock()

	if !report || w.onChange == nil {
		return
	}
	for _, p := range changed {
		w.onChange(p)
	}
}
