package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"pigeonhole/internal/category"
	"pigeonhole/internal/config"
)

// ExtensionCommand returns the extension command configuration.
func ExtensionCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "extension",
		Aliases: []string{"ext"},
		Usage:   "List known extensions and register custom ones",
		Description: `Show the extensions behind each type group, or register a custom
extension. Custom extensions join the All group and can then be toggled
into any category.`,
		EnableShellCompletion: true,
		Suggest:               true,

		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List the type groups and the registered custom extensions",
				Action: func(ctx context.Context, c *cli.Command) error {
					return listExtensionsCmd(cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
			{
				Name:      "add",
				Usage:     "Register a custom extension",
				ArgsUsage: "EXT",
				Action: func(ctx context.Context, c *cli.Command) error {
					return addExtensionCmd(c, cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
		},
	}
}

func listExtensionsCmd(cfg *config.Config) error {
	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	fmt.Println("🧩 Type groups:")
	for _, group := range category.Groups() {
		fmt.Printf("   %s: %s\n", group.Name, strings.Join(group.Extensions, " "))
	}

	customs := session.CustomExtensions()
	if len(customs) == 0 {
		fmt.Println("   Custom: (none)")
		return nil
	}
	fmt.Printf("   Custom: %s\n", strings.Join(customs, " "))
	return nil
}

func addExtensionCmd(c *cli.Command, cfg *config.Config) error {
	ext := category.NormalizeExt(c.Args().First())
	if ext == "" {
		fmt.Println("Extension cannot be empty.")
		return nil
	}

	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	added, err := session.AddCustomExtension(ext)
	if errors.Is(err, category.ErrExtensionExists) {
		fmt.Printf("'%s' already exists.\n", ext)
		return nil
	}
	if err != nil {
		return err
	}
	if added {
		fmt.Printf("Added extension '%s' to All.\n", ext)
	}
	return nil
}
