// Package filer is the caller-facing surface of the file organizer. A
// Session owns the working category configuration, the custom extensions,
// and the preset snapshots, applies the editing rules to them, and persists
// every change as soon as it is made. Any front end (the CLI here, or a GUI,
// or a test harness) drives the tool exclusively through a Session.
package filer

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"pigeonhole/internal/category"
	"pigeonhole/internal/logger"
	"pigeonhole/internal/model"
	"pigeonhole/internal/organizer"
	"pigeonhole/internal/store"
)

// Session holds the working state of one frontend: the active configuration,
// the custom extension pool, and the loaded presets. All state is explicit
// and owned here; mutations go through the Session methods, which persist
// through the backing store before returning.
//
// A Session is not safe for concurrent use. A second process racing on the
// same data directory loses to the last writer.
type Session struct {
	store   *store.Store
	cfg     category.Config
	customs []string
	presets category.PresetSet
}

// Open loads (or heals) the persisted state from the data directory and
// returns a ready Session. The directory is created when missing.
func Open(dir string) (*Session, error) {
	st, err := store.New(dir)
	if err != nil {
		return nil, err
	}

	cfg, customs, err := st.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger.Debug("session opened",
		slog.String("dir", st.Dir()),
		slog.Int("categories", len(cfg)),
	)

	return &Session{
		store:   st,
		cfg:     cfg,
		customs: customs,
		presets: st.LoadPresets(),
	}, nil
}

// Dir returns the data directory backing this session.
func (s *Session) Dir() string { return s.store.Dir() }

// Config returns a copy of the working configuration.
func (s *Session) Config() category.Config { return s.cfg.Clone() }

// CustomExtensions returns a copy of the user-added extension pool.
func (s *Session) CustomExtensions() []string { return slices.Clone(s.customs) }

// Presets returns a copy of the loaded preset set.
func (s *Session) Presets() category.PresetSet { return s.presets.Clone() }

// PresetNames lists the presets, Default first.
func (s *Session) PresetNames() []string { return s.presets.Names() }

// SaveConfig persists the working configuration and the custom extensions.
// The mutation methods call this themselves; it is exposed for callers that
// edit a configuration obtained some other way.
func (s *Session) SaveConfig() error {
	return s.store.SaveConfig(s.cfg, s.customs)
}

// AddCategory creates an empty category, or empties an existing one of the
// same name. Blank names are ignored with added=false.
func (s *Session) AddCategory(name string) (added bool, err error) {
	if !s.cfg.Add(name) {
		return false, nil
	}
	return true, s.SaveConfig()
}

// RemoveCategory deletes a category. Removing an absent name is a no-op.
func (s *Session) RemoveCategory(name string) (removed bool, err error) {
	if !s.cfg.Remove(name) {
		return false, nil
	}
	return true, s.SaveConfig()
}

// SetCategoryType resets a category's extensions to the defaults of the
// chosen type group ("All" or one of the built-in groups), discarding any
// manual edits to that category.
func (s *Session) SetCategoryType(name, group string) (applied bool, err error) {
	if !s.cfg.SetType(name, group, s.customs) {
		return false, nil
	}
	return true, s.SaveConfig()
}

// ToggleExtension flips an extension's membership in one category.
func (s *Session) ToggleExtension(name, ext string) (applied bool, err error) {
	if !s.cfg.Toggle(name, ext) {
		return false, nil
	}
	return true, s.SaveConfig()
}

// AddCustomExtension adds a user-defined extension to the global pool. The
// extension is normalized first; one already present in the pool or in a
// built-in group is rejected with category.ErrExtensionExists.
func (s *Session) AddCustomExtension(ext string) (added bool, err error) {
	customs, added, err := category.AddCustom(s.customs, ext)
	if err != nil || !added {
		return false, err
	}
	s.customs = customs
	return true, s.SaveConfig()
}

// AddPreset stores a new preset of placeholder categories and immediately
// activates it. An empty name gets a timestamp-derived one; an existing name
// is overwritten. Returns the name actually used.
func (s *Session) AddPreset(name string) (string, error) {
	if name == "" {
		name = category.DefaultPresetName(time.Now())
	}
	if name == category.DefaultPreset {
		return "", fmt.Errorf("%w: %s", category.ErrReservedPreset, name)
	}

	cfg := category.NewPresetConfig()
	s.presets[name] = cfg
	if err := s.store.SavePresets(s.presets); err != nil {
		return "", err
	}

	s.cfg = cfg.Clone()
	return name, s.SaveConfig()
}

// RenamePreset moves a preset to a new name. Default cannot be renamed.
func (s *Session) RenamePreset(old, new string) (renamed bool, err error) {
	renamed, err = s.presets.Rename(old, new)
	if err != nil || !renamed {
		return false, err
	}
	return true, s.store.SavePresets(s.presets)
}

// SavePreset overwrites the named preset with a snapshot of the working
// configuration. Default cannot be saved over.
func (s *Session) SavePreset(name string) error {
	if err := s.presets.Update(name, s.cfg); err != nil {
		return err
	}
	return s.store.SavePresets(s.presets)
}

// DeletePreset removes a preset and falls back to activating Default.
// Deleting Default is a silent no-op.
func (s *Session) DeletePreset(name string) (deleted bool, err error) {
	deleted, err = s.presets.Remove(name)
	if err != nil || !deleted {
		return false, err
	}
	if err := s.store.SavePresets(s.presets); err != nil {
		return true, err
	}
	return true, s.UsePreset(category.DefaultPreset)
}

// UsePreset replaces the working configuration with a copy of the named
// preset's and persists it. The preset set itself is unchanged.
func (s *Session) UsePreset(name string) error {
	cfg, ok := s.presets[name]
	if !ok {
		return fmt.Errorf("%w: %s", category.ErrUnknownPreset, name)
	}
	s.cfg = cfg.Clone()
	return s.SaveConfig()
}

// Organize sorts the files under root into category folders using the
// working configuration.
func (s *Session) Organize(root string, opts organizer.Options) (*model.Report, error) {
	return organizer.Organize(root, s.cfg, opts)
}

// PruneEmptyDirs removes the directories under root left empty by a
// recursive organize run.
func (s *Session) PruneEmptyDirs(root string) ([]string, error) {
	return organizer.PruneEmptyDirs(root)
}
