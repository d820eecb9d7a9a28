package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLabelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Manage the relationship label vocabulary",
	}

	cmd.AddCommand(
		newLabelsListCmd(),
		newLabelsSetCmd(),
	)

	return cmd
}

func newLabelsListCmd() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List relationship labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *deps) error {
				labels, err := d.LabelHandler.HandleList(ctx, locale)
				if err != nil {
					return fmt.Errorf("listing labels: %w", err)
				}
				if len(labels) == 0 {
					fmt.Println("No labels found.")
					return nil
				}
				for _, l := range labels {
					fmt.Printf("  %-32s %-4s %-8s %s\n", l.LabelKey, l.Locale, l.Sex, l.Display)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "Restrict to one locale (en, ar, fia)")

	return cmd
}

func newLabelsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <kind> <sex> <locale> <display>",
		Short: "Override one relationship label",
		Long: `Overrides the display label for one (kind, sex, locale) combination.

Examples:
  kinship labels set parent male fia "Faab"
  kinship labels set uncle_aunt female ar "خالة"`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *deps) error {
				if err := d.LabelHandler.HandleSet(ctx, args[0], args[1], args[2], args[3]); err != nil {
					return fmt.Errorf("setting label: %w", err)
				}
				fmt.Printf("Set %s/%s [%s] = %s\n", args[0], args[1], args[2], args[3])
				return nil
			})
		},
	}
}
