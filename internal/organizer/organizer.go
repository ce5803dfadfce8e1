// Package organizer relocates files into extension-category folders under a
// root directory.
package organizer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"pigeonhole/internal/category"
	"pigeonhole/internal/logger"
	"pigeonhole/internal/model"
	"pigeonhole/internal/pathutil"
	"pigeonhole/internal/scanner"
	"pigeonhole/internal/stats"
)

// Options control a single organize run.
type Options struct {
	// Recursive takes files at any depth under the root instead of direct
	// children only.
	Recursive bool
	// DryRun records the moves a run would perform without touching the
	// filesystem.
	DryRun bool
}

// Organize classifies every regular file in scope by its extension and moves
// it into the matching category folder directly under root. Files matching
// no category land in the fallback folder. A same-name file at the
// destination is overwritten; a file already at its destination is left
// alone. The first filesystem error aborts the remaining batch, and files
// moved before it stay moved.
func Organize(root string, cfg category.Config, opts Options) (*model.Report, error) {
	start := time.Now()

	root, err := pathutil.ValidateDirectory(root)
	if err != nil {
		return nil, err
	}

	files, err := scanner.Collect(root, opts.Recursive)
	if err != nil {
		return nil, err
	}

	tally := stats.NewTally(len(files))
	report := &model.Report{
		Root:      root,
		Recursive: opts.Recursive,
		DryRun:    opts.DryRun,
		StartTime: start,
		Moves:     []model.Move{},
	}

	for _, f := range files {
		name := filepath.Base(f.Path)
		dest := cfg.Classify(category.ExtensionOf(name))
		destDir := filepath.Join(root, dest)
		destPath := filepath.Join(destDir, name)

		if destPath == f.Path {
			continue
		}

		overwrote := false
		if _, err := os.Lstat(destPath); err == nil {
			overwrote = true
		}

		if !opts.DryRun {
			if err := os.MkdirAll(destDir, 0o755); err != nil {
				return nil, fmt.Errorf("creating category folder %s: %w", destDir, err)
			}
			if err := moveFile(f.Path, destPath); err != nil {
				return nil, err
			}
		}

		logger.Debug("moved file",
			slog.String("source", f.Path),
			slog.String("destination", destPath),
			slog.String("category", dest),
			slog.Bool("dry_run", opts.DryRun),
		)

		move := model.Move{
			Source:      f.Path,
			Destination: destPath,
			Category:    dest,
			Size:        f.Size,
			Overwrote:   overwrote,
		}
		report.Moves = append(report.Moves, move)
		tally.RecordMove(move)
	}

	report.Duration = time.Since(start)
	report.Stats = tally.Snapshot()
	return report, nil
}
