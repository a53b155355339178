package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/named preset files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "presets", "default.yaml")
}

func (p Paths) PresetPath(name string) string {
	return filepath.Join(p.BaseDir, "presets", name+".yaml")
}

func (p Paths) Dir() string {
	return filepath.Join(p.BaseDir, "presets")
}

// Loader reads YAML presets and merges default → named preset.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawPreset // key: preset name or "$default"
}

// NewLoader creates a preset loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawPreset),
	}
}

// LoadMerged loads and merges default → named preset (name optional; ""
// returns the defaults alone). The result is not yet normalized or
// validated against the engine rules.
func (l *Loader) LoadMerged(name string) (RawPreset, error) {
	key := name
	if key == "" {
		key = "$default"
	}
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawPreset{}, fmt.Errorf("read default preset: %w", err)
	}
	merged := defCfg
	if name != "" {
		named, err := readYAML(l.paths.PresetPath(name))
		if err != nil {
			return RawPreset{}, fmt.Errorf("read preset %q: %w", name, err)
		}
		merged = mergeRaw(defCfg, named)
	}

	l.mu.Lock()
	l.cache[key] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears the cache. Called after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawPreset)
}

// readYAML loads one YAML file. Missing files return zero cfg, no error.
func readYAML(path string) (RawPreset, error) {
	var cfg RawPreset
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawPreset{}, nil
		}
		return RawPreset{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawPreset{}, err
	}
	return cfg, nil
}

// mergeRaw overlays 'b' on 'a': fields b sets win, everything else keeps
// a's value.
func mergeRaw(a, b RawPreset) RawPreset {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	if b.Board.Doors != nil {
		out.Board.Doors = b.Board.Doors
	}
	if b.Board.Prizes != nil {
		out.Board.Prizes = b.Board.Prizes
	}

	switch {
	case out.Sim == nil && b.Sim != nil:
		simCopy := *b.Sim
		out.Sim = &simCopy
	case out.Sim != nil && b.Sim != nil:
		simCopy := *out.Sim
		if b.Sim.Trials != nil {
			simCopy.Trials = b.Sim.Trials
		}
		if b.Sim.DelayMS != nil {
			simCopy.DelayMS = b.Sim.DelayMS
		}
		if b.Sim.TraceSize != nil {
			simCopy.TraceSize = b.Sim.TraceSize
		}
		out.Sim = &simCopy
	}

	return out
}
