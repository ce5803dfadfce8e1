// Pigeonhole is a CLI tool that sorts files into folders named after extension
// categories. The categories, custom extensions, and preset snapshots persist
// between runs and are editable from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"pigeonhole/cmd"
	"pigeonhole/internal/config"
	"pigeonhole/internal/logger"
	"pigeonhole/internal/pathutil"
)

const (
	version = "1.0.0"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var closer io.Closer
	closeLogFile := func() {
		if closer != nil {
			_ = closer.Close()
		}
	}
	defer closeLogFile()

	// exit function to handle a graceful shutdown
	exit := func(status int) {
		cancel()
		closeLogFile()
		os.Exit(status)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		sig := <-c
		logger.InfoAttrs(ctx, "Received signal, shutting down", slog.String("signal", sig.String()))
		exit(1)
	}()

	appConfig, err := config.Load()
	if err != nil {
		logger.Error("failed to load the config", "error", err)
		exit(1)
	}

	app := &cli.Command{
		Name:    "pigeonhole",
		Usage:   "Sort files into folders by extension category",
		Version: version,
		Description: `A file organizer driven by editable category presets.

Files are classified by extension into named categories and moved into
matching subfolders of the organized folder. The categories, custom
extensions, and preset snapshots persist between runs and are edited
with the category, extension, and preset commands.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Set the log level (debug, info, warn, error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Set the log format (text, json, pretty, discard)",
				Value: "pretty",
			},
			&cli.StringFlag{
				Name:  "log-output",
				Usage: "Set the log output (stdout, stderr, null, or file path)",
				Value: "stdout",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the configuration file (TOML, YAML, or JSON)",
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "Directory holding the categories and presets documents",
			},
		},
		Commands: []*cli.Command{
			cmd.OrganizeCommand(appConfig),
			cmd.CategoryCommand(appConfig),
			cmd.ExtensionCommand(appConfig),
			cmd.PresetCommand(appConfig),
		},
		Suggest:               true,
		EnableShellCompletion: true,
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			if command.IsSet("config") {
				configPath, err := pathutil.ValidateRegularFile(command.String("config"))
				if err != nil {
					return ctx, fmt.Errorf("failed to parse the config: %w", err)
				}

				loader := config.NewLoader(
					config.WithTimeout(2 * time.Second),
				)
				loader.AddProvider(config.NewFileProvider(configPath, 10))
				loader.AddProvider(config.NewEnvProvider("PIGEONHOLE_", 100))
				customConfig, err := loader.Load(ctx)
				if err != nil {
					return ctx, err
				}
				*appConfig = *customConfig
			}

			if command.IsSet("data-dir") {
				appConfig.Store.Dir = command.String("data-dir")
			}

			logCloser, newCtx, err := initialize(ctx, command, appConfig)
			closer = logCloser
			return newCtx, err
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		logger.Error("application error", "error", err)
		exit(1)
	}
}

// initialize sets up the logging system based on CLI flags and configuration.
func initialize(ctx context.Context, command *cli.Command, cfg *config.Config) (io.Closer, context.Context, error) {
	// Override with CLI flags
	if command.IsSet("log-level") {
		cfg.Log.Level = command.String("log-level")
	}
	if command.IsSet("log-format") {
		cfg.Log.Format = command.String("log-format")
	}
	if command.IsSet("log-output") {
		cfg.Log.Output = command.String("log-output")
	}

	logCfg, logCloser, err := logger.NewConfig(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		return nil, ctx, err
	}

	err = logger.InitDefault(logCfg)

	return logCloser, ctx, err
}
