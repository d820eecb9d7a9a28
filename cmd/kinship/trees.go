package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nileroots/kinship-core/internal/infrastructure/config"
)

func newTreesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trees",
		Short: "Manage family trees",
		RunE:  runTreesList,
	}

	cmd.AddCommand(
		newTreesListCmd(),
		newTreesCreateCmd(),
		newTreesDeleteCmd(),
	)

	return cmd
}

func newTreesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all trees",
		RunE:  runTreesList,
	}
}

func runTreesList(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	trees, err := config.LoadTrees(cwd)
	if err != nil {
		return fmt.Errorf("loading trees: %w", err)
	}

	if len(trees.Trees) == 0 {
		fmt.Println("No trees configured. Run 'kinship trees create <name>' first.")
		return nil
	}

	names := make([]string, 0, len(trees.Trees))
	for name := range trees.Trees {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Trees (%d):\n", len(names))
	for _, name := range names {
		entry := trees.Trees[name]
		if entry.Description != "" {
			fmt.Printf("  %s - %s\n", name, entry.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}

func newTreesCreateCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new family tree",
		Long: `Creates a new family tree with its own database.

Writes a default config file on first use.

Examples:
  kinship trees create dongola
  kinship trees create "Hassan family" --description "Maternal side"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreesCreate(cmd, args[0], description)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Tree description")

	return cmd
}

func runTreesCreate(cmd *cobra.Command, name, description string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if !config.Exists(cwd) {
		if err := config.WriteDefault(cwd); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
	}

	trees, err := config.LoadTrees(cwd)
	if err != nil {
		return fmt.Errorf("loading trees: %w", err)
	}
	if trees.Exists(name) {
		return fmt.Errorf("tree %q already exists", name)
	}

	trees.Add(name, config.TreeEntry{
		ID:          config.TreeID(name),
		Description: description,
	})
	if err := trees.Save(cwd); err != nil {
		return fmt.Errorf("saving trees: %w", err)
	}

	fmt.Printf("Created tree %q (id: %s)\n", name, config.TreeID(name))
	return nil
}

func newTreesDeleteCmd() *cobra.Command {
	var keepData bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a tree",
		Long:  "Removes a tree from the registry and deletes its database unless --keep-data is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreesDelete(cmd, args[0], keepData)
		},
	}

	cmd.Flags().BoolVar(&keepData, "keep-data", false, "Keep the tree's database on disk")

	return cmd
}

func runTreesDelete(cmd *cobra.Command, name string, keepData bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	trees, err := config.LoadTrees(cwd)
	if err != nil {
		return fmt.Errorf("loading trees: %w", err)
	}
	if !trees.Exists(name) {
		return fmt.Errorf("tree %q not found", name)
	}

	trees.Remove(name)
	if err := trees.Save(cwd); err != nil {
		return fmt.Errorf("saving trees: %w", err)
	}

	if !keepData {
		if err := os.RemoveAll(config.TreeDir(cwd, name)); err != nil {
			return fmt.Errorf("removing tree data: %w", err)
		}
	}

	fmt.Printf("Deleted tree %q\n", name)
	return nil
}
