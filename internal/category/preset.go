package category

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// DefaultPreset is the reserved preset backed by the built-in defaults. It
// cannot be renamed, overwritten, or deleted, and it is never persisted.
const DefaultPreset = "Default"

var (
	// ErrReservedPreset rejects mutations of the Default preset.
	ErrReservedPreset = errors.New("preset is reserved")
	// ErrUnknownPreset rejects operations on a preset that does not exist.
	ErrUnknownPreset = errors.New("unknown preset")
)

// PresetSet maps preset names to configuration snapshots.
type PresetSet map[string]Config

// NewPresetSet returns a set holding only the Default preset.
func NewPresetSet() PresetSet {
	return PresetSet{DefaultPreset: DefaultConfig()}
}

// Clone returns a deep copy of the set.
func (ps PresetSet) Clone() PresetSet {
	out := make(PresetSet, len(ps))
	for name, cfg := range ps {
		out[name] = cfg.Clone()
	}
	return out
}

// Names lists the presets, Default first and the rest sorted by name.
func (ps PresetSet) Names() []string {
	names := make([]string, 0, len(ps))
	for name := range ps {
		if name != DefaultPreset {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	if _, ok := ps[DefaultPreset]; ok {
		names = append([]string{DefaultPreset}, names...)
	}
	return names
}

// Rename moves a preset to a new name, keeping its configuration. Renaming
// Default is rejected; an empty or unchanged new name is ignored. An existing
// preset under the new name is overwritten.
func (ps PresetSet) Rename(old, new string) (bool, error) {
	if old == DefaultPreset {
		return false, fmt.Errorf("%w: %s", ErrReservedPreset, old)
	}
	cfg, ok := ps[old]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownPreset, old)
	}
	if new == "" || new == old {
		return false, nil
	}
	delete(ps, old)
	ps[new] = cfg
	return true, nil
}

// Update replaces a preset's stored configuration with a snapshot of cfg.
// Default cannot be updated; new presets are created with Add instead.
func (ps PresetSet) Update(name string, cfg Config) error {
	if name == DefaultPreset {
		return fmt.Errorf("%w: %s", ErrReservedPreset, name)
	}
	if _, ok := ps[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	ps[name] = cfg.Clone()
	return nil
}

// Remove deletes a preset. Removing Default is a silent no-op.
func (ps PresetSet) Remove(name string) (bool, error) {
	if name == DefaultPreset {
		return false, nil
	}
	if _, ok := ps[name]; !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	delete(ps, name)
	return true, nil
}

// NewPresetConfig returns the placeholder configuration a new preset starts
// with: three empty categories.
func NewPresetConfig() Config {
	return Config{
		{Name: "Category 1", Extensions: []string{}},
		{Name: "Category 2", Extensions: []string{}},
		{Name: "Category 3", Extensions: []string{}},
	}
}

// DefaultPresetName derives a preset name from its creation time.
func DefaultPresetName(t time.Time) string {
	return "Preset " + t.Format("2006-01-02 15-04-05")
}
