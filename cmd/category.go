package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"pigeonhole/internal/category"
	"pigeonhole/internal/config"
)

// CategoryCommand returns the category command configuration.
func CategoryCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "category",
		Aliases: []string{"cat"},
		Usage:   "Edit the categories of the working configuration",
		Description: `List and edit the categories files are sorted into. Every change is
saved immediately. A file goes to the first category listing its
extension, so category order matters.`,
		EnableShellCompletion: true,
		Suggest:               true,

		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List the categories and their extensions",
				Action: func(ctx context.Context, c *cli.Command) error {
					return listCategoriesCmd(cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
			{
				Name:      "add",
				Usage:     "Add an empty category (or empty an existing one)",
				ArgsUsage: "NAME",
				Action: func(ctx context.Context, c *cli.Command) error {
					return addCategoryCmd(c, cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
			{
				Name:      "remove",
				Aliases:   []string{"rm"},
				Usage:     "Remove a category",
				ArgsUsage: "NAME",
				Action: func(ctx context.Context, c *cli.Command) error {
					return removeCategoryCmd(c, cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
			{
				Name:      "set-type",
				Usage:     "Reset a category's extensions to a type group's defaults",
				ArgsUsage: "NAME TYPE",
				Action: func(ctx context.Context, c *cli.Command) error {
					return setCategoryTypeCmd(c, cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
			{
				Name:      "toggle",
				Usage:     "Toggle an extension's membership in a category",
				ArgsUsage: "NAME EXT",
				Action: func(ctx context.Context, c *cli.Command) error {
					return toggleExtensionCmd(c, cfg)
				},
				Suggest:               true,
				EnableShellCompletion: true,
			},
		},
	}
}

func listCategoriesCmd(cfg *config.Config) error {
	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	categories := session.Config()
	fmt.Printf("🗂️  Categories (%d):\n", len(categories))
	for _, cat := range categories {
		if len(cat.Extensions) == 0 {
			fmt.Printf("   %s: (no extensions)\n", cat.Name)
			continue
		}
		fmt.Printf("   %s: %s\n", cat.Name, strings.Join(cat.Extensions, " "))
	}

	return nil
}

func addCategoryCmd(c *cli.Command, cfg *config.Config) error {
	name := strings.TrimSpace(c.Args().First())
	if name == "" {
		fmt.Println("Category name cannot be empty.")
		return nil
	}

	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	added, err := session.AddCategory(name)
	if err != nil {
		return err
	}
	if !added {
		fmt.Printf("'%s' already exists.\n", name)
		return nil
	}

	fmt.Printf("Added '%s'\n", name)
	return nil
}

func removeCategoryCmd(c *cli.Command, cfg *config.Config) error {
	name := c.Args().First()

	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	removed, err := session.RemoveCategory(name)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("No category named '%s'.\n", name)
		return nil
	}

	fmt.Printf("Removed '%s'\n", name)
	return nil
}

func setCategoryTypeCmd(c *cli.Command, cfg *config.Config) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected NAME and TYPE arguments, got %d", c.Args().Len())
	}
	name, group := c.Args().Get(0), c.Args().Get(1)

	if _, ok := category.GroupExtensions(group, nil); !ok {
		fmt.Printf("Unknown type '%s'. Types: %s.\n", group, strings.Join(category.GroupNames(), ", "))
		return nil
	}

	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	applied, err := session.SetCategoryType(name, group)
	if err != nil {
		return err
	}
	if !applied {
		fmt.Printf("No category named '%s'.\n", name)
		return nil
	}

	fmt.Printf("Set '%s' to %s defaults.\n", name, group)
	return nil
}

func toggleExtensionCmd(c *cli.Command, cfg *config.Config) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected NAME and EXT arguments, got %d", c.Args().Len())
	}
	name, ext := c.Args().Get(0), category.NormalizeExt(c.Args().Get(1))
	if ext == "" {
		fmt.Println("Extension cannot be empty.")
		return nil
	}

	session, err := openSession(cfg)
	if err != nil {
		return err
	}

	applied, err := session.ToggleExtension(name, ext)
	if err != nil {
		return err
	}
	if !applied {
		fmt.Printf("No category named '%s'.\n", name)
		return nil
	}

	if exts, ok := session.Config().Get(name); ok && slices.Contains(exts, ext) {
		fmt.Printf("Added '%s' to '%s'\n", ext, name)
	} else {
		fmt.Printf("Removed '%s' from '%s'\n", ext, name)
	}
	return nil
}
