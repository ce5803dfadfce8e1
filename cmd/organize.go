// Package cmd provides the command-line interface commands for the pigeonhole file organizer.
//
// This package implements the CLI commands using the urfave/cli framework, including
//   - organize: The main command for sorting a folder's files into category subfolders
//   - category: Commands for editing the categories of the working configuration
//   - extension: Commands for listing known extensions and registering custom ones
//   - preset: Commands for managing named snapshots of the category configuration
//
// Commands that change categories, custom extensions, or presets persist the
// change before returning, so every run starts from the saved state.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"pigeonhole/internal/config"
	"pigeonhole/internal/logger"
	"pigeonhole/internal/model"
	"pigeonhole/internal/organizer"
	"pigeonhole/internal/output"
	"pigeonhole/pkg/filer"
)

// OrganizeCommand returns the organize command configuration.
func OrganizeCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "organize",
		Aliases: []string{"org", "o"},
		Usage:   "Sort a folder's files into category subfolders",
		Description: `Classify every file in FOLDER by its extension and move it into the
matching category subfolder. Files matching no category go to "Others".
A same-name file already in the destination folder is overwritten.`,
		ArgsUsage:             "FOLDER",
		EnableShellCompletion: true,
		Suggest:               true,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "recursive",
				Aliases: []string{"r"},
				Usage:   "Organize files at any depth under FOLDER, not just direct children",
			},
			&cli.BoolFlag{
				Name:  "delete-empty",
				Usage: "Delete subdirectories left empty by a recursive run",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Report the moves without touching any file",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Report format: pretty, json, yaml",
				Value:   "pretty",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the report to a file (default: stdout)",
				Value:   "",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return organizeCmd(ctx, c, cfg)
		},
	}
}

// organizeCmd is the action function for the organize command.
func organizeCmd(ctx context.Context, c *cli.Command, cfg *config.Config) error {
	// Override with CLI flags
	if c.IsSet("recursive") {
		cfg.Organize.Recursive = c.Bool("recursive")
	}
	if c.IsSet("delete-empty") {
		cfg.Organize.DeleteEmpty = c.Bool("delete-empty")
	}
	if c.IsSet("format") {
		cfg.Organize.Format = c.String("format")
	}
	if c.IsSet("output") {
		cfg.Organize.Output = c.String("output")
	}

	// Moving files is destructive, so the folder is never implied.
	if c.Args().Len() == 0 {
		fmt.Println("Choose folder first.")
		return nil
	}
	if c.Args().Len() > 1 {
		return fmt.Errorf("expected exactly one folder, got %d arguments", c.Args().Len())
	}
	folder := c.Args().First()

	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	logger.DebugCtx(ctx, "organizing folder",
		"folder", folder,
		"recursive", cfg.Organize.Recursive,
		"dry_run", c.Bool("dry-run"),
	)

	spin := startSpinner(folder, cfg.Organize.Output != "")
	report, err := runOrganize(session, cfg, folder, c.Bool("dry-run"))
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	return writeReport(cfg, report)
}

// runOrganize performs one organize run, pruning the emptied directories
// afterward when asked to.
func runOrganize(session *filer.Session, cfg *config.Config, folder string, dryRun bool) (*model.Report, error) {
	opts := organizer.Options{
		Recursive: cfg.Organize.Recursive,
		DryRun:    dryRun,
	}

	report, err := session.Organize(folder, opts)
	if err != nil {
		return nil, fmt.Errorf("error organizing %s: %w", folder, err)
	}

	if opts.Recursive && cfg.Organize.DeleteEmpty && !dryRun {
		removed, err := session.PruneEmptyDirs(folder)
		if err != nil {
			return nil, fmt.Errorf("error removing empty directories: %w", err)
		}
		report.EmptyDirsRemoved = len(removed)
	}

	return report, nil
}

// writeReport renders the report in the configured format, to stdout or to
// the configured output file.
func writeReport(cfg *config.Config, report *model.Report) error {
	reg, err := output.InitFormatters()
	if err != nil {
		return fmt.Errorf("error initializing formatters: %w", err)
	}

	outputFile := cfg.Organize.Output
	var out io.Writer = os.Stdout

	if outputFile != "" {
		outputFile = filepath.Clean(outputFile)
		if outputFile == "." {
			outputFile = "pigeonhole-report.txt"
		}

		outputFile, err = filepath.Abs(outputFile)
		if err != nil {
			return fmt.Errorf("error getting absolute path for output file: %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(outputFile), 0o750); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}

		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("error opening output file: %w", err)
		}

		defer func(file *os.File) {
			_ = file.Close()
		}(file)

		out = file
	}

	err = reg.Format(cfg.Organize.Format, report, out)
	if err != nil {
		return fmt.Errorf("error formatting report: %w", err)
	}

	if out != os.Stdout {
		fmt.Printf("\n✅ Report written to \"%s\"", outputFile)
	}
	fmt.Println()

	return nil
}

// startSpinner shows an indeterminate spinner on stderr while a run is in
// flight. It stays silent when the report is bound for a file or either
// stream is not a terminal, keeping piped output clean.
func startSpinner(folder string, toFile bool) *spinner.Spinner {
	if toFile || !isTerminal(os.Stderr) || !isTerminal(os.Stdout) {
		return nil
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Organizing " + filepath.Base(folder) + "..."
	s.Start()
	return s
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
