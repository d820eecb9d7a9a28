package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import family records from a file",
		Long: `Imports people, parent links, and unions from a JSON or CSV file.
People are created first, so links can reference people defined anywhere
in the same file.

Examples:
  kinship import family.json
  kinship import family.csv --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format (json, csv); inferred from extension if empty")

	return cmd
}

func runImport(cmd *cobra.Command, path, format string) error {
	ctx := cmd.Context()

	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	if !contains(validFormats, format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, validFormats)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return withDeps(ctx, func(d *deps) error {
		result, err := d.ImportHandler.HandleImport(ctx, d.TreeID, format, file)
		if err != nil {
			return fmt.Errorf("importing: %w", err)
		}

		fmt.Printf("Imported %d people, %d parent links, %d unions (%d skipped)\n",
			result.People, result.Edges, result.Unions, result.Skipped)
		for _, importErr := range result.Errors {
			fmt.Fprintf(os.Stderr, "  warning: %v\n", importErr)
		}
		return nil
	})
}
