package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"pigeonhole/internal/category"
	"pigeonhole/internal/config"
)

// PresetCommand returns the preset command configuration.
func PresetCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "preset",
		Aliases: []string{"p"},
		Usage:   "Manage named snapshots of the category configuration",
		Description: `Presets are named snapshots of the whole category configuration:
  - use replaces the working configuration with a preset's snapshot
  - save updates a snapshot from the working configuration
  - add creates a fresh preset with placeholder categories

The built-in Default preset always restores the stock categories and
cannot be renamed, saved over, or deleted.`,
		EnableShellCompletion: true,
		Suggest:               true,

		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List the available presets",
				Action: func(ctx context.Context, c *cli.Command) error {
					return listPresetsCmd(cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
			{
				Name:      "add",
				Usage:     "Create a preset with placeholder categories and switch to it",
				ArgsUsage: "[NAME]",
				Action: func(ctx context.Context, c *cli.Command) error {
					return addPresetCmd(c, cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
			{
				Name:      "rename",
				Aliases:   []string{"mv"},
				Usage:     "Rename a preset",
				ArgsUsage: "OLD NEW",
				Action: func(ctx context.Context, c *cli.Command) error {
					return renamePresetCmd(c, cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
			{
				Name:      "save",
				Usage:     "Save the working configuration into a preset",
				ArgsUsage: "NAME",
				Action: func(ctx context.Context, c *cli.Command) error {
					return savePresetCmd(c, cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a preset and fall back to Default",
				ArgsUsage: "NAME",
				Action: func(ctx context.Context, c *cli.Command) error {
					return deletePresetCmd(c, cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
			{
				Name:      "use",
				Usage:     "Replace the working configuration with a preset's snapshot",
				ArgsUsage: "NAME",
				Action: func(ctx context.Context, c *cli.Command) error {
					return usePresetCmd(c, cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
		},
	}
}

func listPresetsCmd(cfg *config.Config) error {
	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	names := session.PresetNames()
	fmt.Printf("🗃️  Presets (%d):\n", len(names))
	for _, name := range names {
		if name == category.DefaultPreset {
			fmt.Printf("   %s (built-in)\n", name)
			continue
		}
		fmt.Printf("   %s\n", name)
	}
	return nil
}

func addPresetCmd(c *cli.Command, cfg *config.Config) error {
	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	name, err := session.AddPreset(c.Args().First())
	if errors.Is(err, category.ErrReservedPreset) {
		fmt.Println("'Default' is reserved.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Added preset '%s'\n", name)
	return nil
}

func renamePresetCmd(c *cli.Command, cfg *config.Config) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected OLD and NEW arguments, got %d", c.Args().Len())
	}
	oldName, newName := c.Args().Get(0), c.Args().Get(1)

	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	renamed, err := session.RenamePreset(oldName, newName)
	switch {
	case errors.Is(err, category.ErrReservedPreset):
		fmt.Println("Cannot rename Default.")
		return nil
	case errors.Is(err, category.ErrUnknownPreset):
		fmt.Printf("No preset named '%s'.\n", oldName)
		return nil
	case err != nil:
		return err
	case !renamed:
		fmt.Println("Nothing to rename.")
		return nil
	}

	fmt.Printf("Renamed preset to '%s'\n", newName)
	return nil
}

func savePresetCmd(c *cli.Command, cfg *config.Config) error {
	name := c.Args().First()

	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	err = session.SavePreset(name)
	switch {
	case errors.Is(err, category.ErrReservedPreset):
		fmt.Println("Use 'preset add' to create a new preset.")
		return nil
	case errors.Is(err, category.ErrUnknownPreset):
		fmt.Printf("No preset named '%s'.\n", name)
		return nil
	case err != nil:
		return err
	}

	fmt.Printf("Saved preset '%s'\n", name)
	return nil
}

func deletePresetCmd(c *cli.Command, cfg *config.Config) error {
	name := c.Args().First()

	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	deleted, err := session.DeletePreset(name)
	if errors.Is(err, category.ErrUnknownPreset) {
		fmt.Printf("No preset named '%s'.\n", name)
		return nil
	}
	if err != nil {
		return err
	}
	if !deleted {
		// Deleting Default is a quiet no-op.
		return nil
	}

	fmt.Printf("Deleted preset '%s'\n", name)
	return nil
}

func usePresetCmd(c *cli.Command, cfg *config.Config) error {
	name := c.Args().First()

	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	err = session.UsePreset(name)
	if errors.Is(err, category.ErrUnknownPreset) {
		fmt.Printf("No preset named '%s'.\n", name)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Switched to preset '%s'.\n", name)
	return nil
}
