package preset

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DirWatcher polls the preset directory for YAML changes and triggers a
// callback. It uses only the standard library; the poll interval is
// coarse because presets change rarely.
type DirWatcher struct {
	dir       string
	interval  time.Duration
	onChange  func(string) // called with the path that changed
	stopCh    chan struct{}
	lastMTime map[string]time.Time
}

// NewDirWatcher creates a watcher over the loader's preset directory.
// The usual callback invalidates the loader cache.
func NewDirWatcher(l *Loader, interval time.Duration, onChange func(string)) *DirWatcher {
	return &DirWatcher{
		dir:       l.paths.Dir(),
		interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Start begins polling in a goroutine.
func (w *DirWatcher) Start() {
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		// prime cache
		w.scan(true)
		for {
			select {
			case <-ticker.C:
				w.scan(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *DirWatcher) Stop() {
	close(w.stopCh)
}

// scan walks the preset directory, compares mtimes against the last pass
// and invokes onChange for every changed or newly appeared YAML file.
func (w *DirWatcher) scan(prime bool) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		// directory may not exist yet; keep polling
		return
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(w.dir, e.Name())
		fi, err := e.Info()
		if err != nil {
			continue
		}
		mt := fi.ModTime()
		last, seen := w.lastMTime[path]
		w.lastMTime[path] = mt
		if !seen {
			if !prime && w.onChange != nil {
				w.onChange(path)
			}
			continue
		}
		if mt.After(last) && !prime && w.onChange != nil {
			w.onChange(path)
		}
	}
}
