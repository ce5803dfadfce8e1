// Package scanner enumerates the candidate files for an organize run.
//
// A scan is a snapshot: the file list is fully collected before any file is
// moved, so relocations performed afterwards cannot disturb the traversal.
// Only regular files are collected; directories, symlinks, and other special
// entries are skipped silently.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"pigeonhole/internal/model"
)

// Collect returns the regular files under root. With recursive set it
// descends into every subdirectory; otherwise only direct children of root
// are considered. Any enumeration error aborts the scan.
func Collect(root string, recursive bool) ([]model.File, error) {
	if recursive {
		return collectTree(root)
	}
	return collectChildren(root)
}

func collectChildren(root string) ([]model.File, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", root, err)
	}

	var files []model.File
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("reading entry %s: %w", entry.Name(), err)
		}
		files = append(files, model.File{
			Path: filepath.Join(root, entry.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

func collectTree(root string) ([]model.File, error) {
	var files []model.File
	err := filepath.WalkDir(root, func(path string, dirEnt fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !dirEnt.Type().IsRegular() {
			return nil
		}
		info, err := dirEnt.Info()
		if err != nil {
			return err
		}
		files = append(files, model.File{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}
	return files, nil
}
