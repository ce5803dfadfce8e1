package organizer

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"pigeonhole/internal/logger"
	"pigeonhole/internal/pathutil"
)

// PruneEmptyDirs removes every directory under root that is empty, visiting
// deeper paths first so parents empty out as their children disappear. The
// root itself is never removed. Returns the removed paths.
func PruneEmptyDirs(root string) ([]string, error) {
	root, err := pathutil.ValidateDirectory(root)
	if err != nil {
		return nil, err
	}

	var dirs []string
	walkErr := filepath.WalkDir(root, func(path string, dirEnt fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if dirEnt.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, walkErr)
	}

	// Longest paths first: a child is always visited before its parent.
	sort.Slice(dirs, func(i, j int) bool {
		return len(dirs[i]) > len(dirs[j])
	})

	var removed []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", dir, err)
		}
		if len(entries) > 0 {
			continue
		}
		if err := os.Remove(dir); err != nil {
			return nil, fmt.Errorf("removing empty directory %s: %w", dir, err)
		}
		logger.Debug("removed empty directory", slog.String("path", dir))
		removed = append(removed, dir)
	}
	return removed, nil
}
