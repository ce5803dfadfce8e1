package cmd

import (
	"pigeonhole/internal/config"
	"pigeonhole/internal/store"
	"pigeonhole/pkg/filer"
)

// openSession opens the persisted category state in the configured data
// directory, defaulting to the per-user location.
func openSession(cfg *config.Config) (*filer.Session, error) {
	dir := cfg.Store.Dir
	if dir == "" {
		dir = store.DefaultDir()
	}
	return filer.Open(dir)
}
