// Package main provides the entry point for the checklist CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ersonp/bg3-checklist/internal/application/handlers"
)

var (
	version       = "0.1.0-dev"
	globalVerbose bool
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
		Use:           "checklist",
		Short:         "Track collectible items across the acts of Baldur's Gate 3",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(),
		newGenerateCmd(),
		newItemsCmd(),
		newAreasCmd(),
		newMarkCmd(handlers.ActionComplete, "Mark items as collected"),
		newMarkCmd(handlers.ActionUncomplete, "Mark items as not collected"),
		newMarkCmd(handlers.ActionHide, "Hide items from the list"),
		newMarkCmd(handlers.ActionUnhide, "Show hidden items again"),
		newBuildsCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
