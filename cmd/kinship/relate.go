package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRelateCmd() *cobra.Command {
	var maxDepth int
	var showPath bool

	cmd := &cobra.Command{
		Use:   "relate <person-a> <person-b>",
		Short: "Determine how two people are related",
		Long: `Determines how the second person relates to the first: parent, child,
spouse, sibling, grandparent, uncle/aunt, cousin, or a generic relation
found by path search. People are referenced by name or id.

Examples:
  kinship relate Sara Omar
  kinship relate Sara Nadia --path
  kinship relate Sara "Distant Cousin" --max-depth 20`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelate(cmd, args, maxDepth, showPath)
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Fallback search depth bound in edges (0 = default)")
	cmd.Flags().BoolVar(&showPath, "path", false, "Print the connecting path")

	return cmd
}

func runRelate(cmd *cobra.Command, args []string, maxDepth int, showPath bool) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *deps) error {
		relation, err := d.RelateHandler.HandleRelate(ctx, d.TreeID, args[0], args[1], maxDepth)
		if err != nil {
			return err
		}

		result := relation.Result
		if !result.Found {
			fmt.Printf("%s (%s)\n", result.DisplayLabel, result.Kind)
			return nil
		}

		fmt.Printf("%s is the %s of %s\n", args[1], result.DisplayLabel, args[0])
		fmt.Printf("  kind: %s, distance: %d edges\n", result.Kind, result.PathLength)
		if result.CommonAncestorID != "" {
			fmt.Printf("  common ancestor: %s\n", result.CommonAncestorID)
		}

		if showPath && len(result.PathIDs) > 0 {
			people, err := d.RelateHandler.ResolvePath(ctx, d.TreeID, result.PathIDs)
			if err != nil {
				return err
			}
			names := make([]string, len(people))
			for i, p := range people {
				if p != nil {
					names[i] = p.Name
				} else {
					names[i] = result.PathIDs[i]
				}
			}
			fmt.Printf("  path: %s\n", strings.Join(names, " -> "))
		}
		return nil
	})
}
