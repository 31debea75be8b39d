package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/bg3-checklist/internal/application/handlers"
	"github.com/ersonp/bg3-checklist/internal/domain/entities"
)

func newGenerateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the item catalog from the act sheets",
		Long: "Downloads the sheet of every act, parses it into items and writes the catalog artifacts.\n" +
			"Nothing is written if any act fails to download.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and validate without writing artifacts")

	return cmd
}

func runGenerate(cmd *cobra.Command, dryRun bool) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.GenerateHandler.Handle(ctx, handlers.GenerateOptions{DryRun: dryRun})
		if err != nil {
			return err
		}

		printGenerateCounts(os.Stdout, result)

		if len(result.Warnings) > 0 {
			fmt.Printf("\n%d warnings:\n", len(result.Warnings))
			for _, w := range result.Warnings {
				fmt.Printf("  - %s\n", w)
			}
		}

		if result.Written {
			fmt.Printf("\nCatalog written to %s\n", d.Config.DataDir)
		} else {
			fmt.Println("\nDry run: nothing written.")
		}
		return nil
	})
}

// printGenerateCounts prints the item count of every act, next to the count
// of the catalog being replaced when there is one.
func printGenerateCounts(w io.Writer, result *handlers.GenerateResult) {
	prev := result.Previous
	if prev != nil {
		fmt.Fprintf(w, "Replacing generation %s (%s)\n", prev.GenerationID, prev.GeneratedAt)
	}

	prevTotal := 0
	for _, act := range entities.AllActs {
		if prev == nil {
			fmt.Fprintf(w, "Act %d: %d items\n", act, result.Counts[act])
			continue
		}
		prevTotal += prev.Acts[act]
		fmt.Fprintf(w, "Act %d: %d items (was %d)\n", act, result.Counts[act], prev.Acts[act])
	}

	if prev == nil {
		fmt.Fprintf(w, "Total: %d items\n", result.Total)
		return
	}
	fmt.Fprintf(w, "Total: %d items (was %d)\n", result.Total, prevTotal)
}
