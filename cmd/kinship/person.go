package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nileroots/kinship-core/internal/domain/entities"
)

func newPersonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage people in a tree",
	}

	cmd.AddCommand(
		newPersonAddCmd(),
		newPersonListCmd(),
		newPersonShowCmd(),
		newPersonDeleteCmd(),
	)

	return cmd
}

func newPersonAddCmd() *cobra.Command {
	var sex string
	var deceased bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a person to the tree",
		Long: `Adds a person to the tree. Use quotes for names with spaces.

Examples:
  kinship person add Sara --sex female
  kinship person add "Omar Hassan" --sex male --deceased`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *deps) error {
				person, err := d.PersonHandler.HandleAdd(ctx, d.TreeID, args[0], sex, deceased)
				if err != nil {
					return fmt.Errorf("adding person: %w", err)
				}
				fmt.Printf("Added %s (%s)\n", person.Name, person.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&sex, "sex", "s", "unknown", "Sex (male, female, unknown)")
	cmd.Flags().BoolVar(&deceased, "deceased", false, "Mark the person as deceased")

	return cmd
}

func newPersonListCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people in the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *deps) error {
				result, err := d.PersonHandler.HandleList(ctx, d.TreeID, limit, offset)
				if err != nil {
					return err
				}
				if len(result.People) == 0 {
					fmt.Println("No people found.")
					return nil
				}
				fmt.Printf("People (%d total):\n", result.Total)
				for _, p := range result.People {
					marker := ""
					if p.Deceased {
						marker = " †"
					}
					fmt.Printf("  %s [%s]%s  %s\n", p.Name, p.Sex, marker, p.ID)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultListLimit, "Maximum number of people to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of people to skip")

	return cmd
}

func newPersonShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name-or-id>",
		Short: "Show a person and their immediate family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *deps) error {
				detail, err := d.PersonHandler.HandleShow(ctx, d.TreeID, args[0])
				if err != nil {
					return err
				}
				p := detail.Person
				fmt.Printf("%s [%s] (%s)\n", p.Name, p.Sex, p.ID)
				printRelatives("Parents", detail.Parents)
				printRelatives("Children", detail.Children)
				printRelatives("Spouses", detail.Spouses)
				return nil
			})
		},
	}
}

func printRelatives(heading string, people []*entities.Person) {
	if len(people) == 0 {
		return
	}
	fmt.Printf("  %s:\n", heading)
	for _, p := range people {
		fmt.Printf("    %s (%s)\n", p.Name, p.ID)
	}
}

func newPersonDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name-or-id>",
		Short: "Delete a person",
		Long:  "Deletes a person together with all edges and union memberships referring to them.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *deps) error {
				if err := d.PersonHandler.HandleDelete(ctx, d.TreeID, args[0]); err != nil {
					return fmt.Errorf("deleting person: %w", err)
				}
				fmt.Printf("Deleted %s\n", args[0])
				return nil
			})
		},
	}
}
