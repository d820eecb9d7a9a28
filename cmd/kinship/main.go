// Package main provides the entry point for the kinship CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0-dev"
	globalTree string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "kinship",
		Short:   "A genealogy database with a family relationship resolution engine",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalTree, "tree", "t", "", "Family tree to operate on (required)")

	rootCmd.AddCommand(
		newTreesCmd(),
		newPersonCmd(),
		newLinkCmd(),
		newUnionCmd(),
		newRelateCmd(),
		newImportCmd(),
		newExportCmd(),
		newLabelsCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
