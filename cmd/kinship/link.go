package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Record family links",
	}

	cmd.AddCommand(newLinkParentCmd())

	return cmd
}

func newLinkParentCmd() *cobra.Command {
	var edgeType string

	cmd := &cobra.Command{
		Use:   "parent <parent> <child>",
		Short: "Record a parent-child link",
		Long: `Records a directed parent -> child edge between two existing people.
People are referenced by name or id.

Examples:
  kinship link parent Ali Omar
  kinship link parent "Um Kulthum" Sara --type adoptive`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *deps) error {
				edge, err := d.PersonHandler.HandleLinkParent(ctx, d.TreeID, args[0], args[1], edgeType)
				if err != nil {
					return fmt.Errorf("linking parent: %w", err)
				}
				fmt.Printf("Linked %s -[%s]-> %s (%s)\n", args[0], edge.Type, args[1], edge.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&edgeType, "type", "biological", "Edge type (biological, adoptive, step)")

	return cmd
}

func newUnionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "union",
		Short: "Manage unions",
	}

	cmd.AddCommand(newUnionCreateCmd())

	return cmd
}

func newUnionCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <member> <member> [member...]",
		Short: "Record a union",
		Long: `Records a union of two or more people. Polygamous unions are supported.

Examples:
  kinship union create Omar Nadia
  kinship union create Idris Amna Halima`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *deps) error {
				union, err := d.PersonHandler.HandleCreateUnion(ctx, d.TreeID, args)
				if err != nil {
					return fmt.Errorf("creating union: %w", err)
				}
				fmt.Printf("Created union %s with %d members\n", union.ID, len(union.MemberIDs))
				return nil
			})
		},
	}
}
