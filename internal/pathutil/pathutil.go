// Package pathutil validates and resolves the filesystem paths the tool
// works with.
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrNotExist     = errors.New("path does not exist")
	ErrNotDirectory = errors.New("not a directory")
	ErrIsDirectory  = errors.New("is a directory")
	ErrNotRegular   = errors.New("not a regular file")
)

// resolve cleans path, makes it absolute, and follows symlinks.
func resolve(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("cannot make absolute: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotExist, abs)
		}
		return "", fmt.Errorf("cannot resolve symlinks: %w", err)
	}
	return resolved, nil
}

// stat wraps os.Stat with the package sentinel for missing paths.
func stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return nil, err
	}
	return info, nil
}

// ValidateDirectory resolves path and ensures it names a directory.
func ValidateDirectory(path string) (string, error) {
	resolved, err := resolve(path)
	if err != nil {
		return "", err
	}

	info, err := stat(resolved)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, resolved)
	}
	return resolved, nil
}

// ValidateRegularFile resolves path and ensures it names a regular file.
func ValidateRegularFile(path string) (string, error) {
	resolved, err := resolve(path)
	if err != nil {
		return "", err
	}

	info, err := stat(resolved)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, resolved)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegular, resolved)
	}
	return resolved, nil
}

// EnsureDir creates path and any missing parents, returning its absolute
// form. An existing non-directory is rejected.
func EnsureDir(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("cannot make absolute: %w", err)
	}

	info, err := os.Stat(abs)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", fmt.Errorf("%w: %s", ErrNotDirectory, abs)
		}
		return abs, nil
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", abs, err)
		}
		return abs, nil
	default:
		return "", err
	}
}
