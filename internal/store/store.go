// Package store persists the category configuration and the preset
// snapshots as two JSON documents inside a data directory.
//
// Writes are whole-document and atomic from the reader's point of view: the
// document is written to a temp file and renamed into place. Loads are
// self-healing: a missing or corrupt categories document is replaced by the
// built-in defaults, and a broken presets document falls back to Default
// only. Corruption never surfaces as an error.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zeebo/xxh3"

	"pigeonhole/internal/category"
	"pigeonhole/internal/logger"
	"pigeonhole/internal/pathutil"
)

const (
	configFile  = "categories.json"
	presetsFile = "presets.json"
)

// DefaultDir returns the per-user default data directory.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
		logger.Warn("Could not get the user config directory. Using "+base, "error", err)
	}
	return filepath.Join(base, "pigeonhole")
}

// configDocument is the on-disk shape of the categories store.
type configDocument struct {
	Categories       category.Config `json:"categories"`
	CustomExtensions []string        `json:"custom_extensions"`
}

// Store reads and writes the persisted documents. Every mutation in the
// application saves immediately, so Store remembers a fingerprint of the
// last written content and skips rewriting an unchanged document.
type Store struct {
	dir        string
	configSum  uint64
	presetsSum uint64
}

// New opens a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	dir, err := pathutil.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("opening data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string { return s.dir }

// ConfigPath returns the path of the categories document.
func (s *Store) ConfigPath() string { return filepath.Join(s.dir, configFile) }

// PresetsPath returns the path of the presets document.
func (s *Store) PresetsPath() string { return filepath.Join(s.dir, presetsFile) }

// LoadConfig reads the working configuration and the custom extensions. A
// missing or malformed document is silently replaced by the built-in
// defaults, which are written back so the next load finds a healthy
// document. Only that healing write can fail.
func (s *Store) LoadConfig() (category.Config, []string, error) {
	path := s.ConfigPath()
	data, err := os.ReadFile(path)
	if err == nil {
		var doc configDocument
		if jsonErr := json.Unmarshal(data, &doc); jsonErr == nil && doc.Categories != nil {
			if doc.CustomExtensions == nil {
				doc.CustomExtensions = []string{}
			}
			s.configSum = xxh3.Hash(data)
			return doc.Categories, doc.CustomExtensions, nil
		}
		logger.Debug("categories document corrupt, restoring defaults",
			slog.String("path", path))
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Debug("categories document unreadable, restoring defaults",
			slog.String("path", path), slog.String("error", err.Error()))
	}

	cfg := category.DefaultConfig()
	customs := []string{}
	if err := s.SaveConfig(cfg, customs); err != nil {
		return nil, nil, fmt.Errorf("restoring default configuration: %w", err)
	}
	return cfg, customs, nil
}

// SaveConfig overwrites the categories document with cfg and customs.
func (s *Store) SaveConfig(cfg category.Config, customs []string) error {
	if customs == nil {
		customs = []string{}
	}
	data, err := json.MarshalIndent(configDocument{
		Categories:       cfg,
		CustomExtensions: customs,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding categories document: %w", err)
	}

	sum := xxh3.Hash(data)
	if sum == s.configSum && fileExists(s.ConfigPath()) {
		return nil
	}
	if err := writeDocument(s.ConfigPath(), data); err != nil {
		return err
	}
	s.configSum = sum
	return nil
}

// LoadPresets returns the built-in Default preset merged with any persisted
// user presets. A missing or malformed presets document, and any persisted
// "Default" key, are silently ignored.
func (s *Store) LoadPresets() category.PresetSet {
	presets := category.NewPresetSet()

	path := s.PresetsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Debug("presets document unreadable, using Default only",
				slog.String("path", path), slog.String("error", err.Error()))
		}
		return presets
	}

	var doc map[string]category.Config
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Debug("presets document corrupt, using Default only",
			slog.String("path", path))
		return presets
	}

	for name, cfg := range doc {
		if name == category.DefaultPreset {
			continue
		}
		presets[name] = cfg
	}
	s.presetsSum = xxh3.Hash(data)
	return presets
}

// SavePresets persists every preset except Default, which is implicit and
// rebuilt on every load.
func (s *Store) SavePresets(ps category.PresetSet) error {
	doc := make(map[string]category.Config, len(ps))
	for name, cfg := range ps {
		if name == category.DefaultPreset {
			continue
		}
		doc[name] = cfg
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding presets document: %w", err)
	}

	sum := xxh3.Hash(data)
	if sum == s.presetsSum && fileExists(s.PresetsPath()) {
		return nil
	}
	if err := writeDocument(s.PresetsPath(), data); err != nil {
		return err
	}
	s.presetsSum = sum
	return nil
}

// writeDocument atomically replaces path with data.
func writeDocument(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing document %s: %w", path, err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
