package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/bg3-checklist/internal/application/handlers"
	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/services"
)

func newAreasCmd() *cobra.Command {
	var (
		act     int
		showAll bool
	)

	cmd := &cobra.Command{
		Use:   "areas",
		Short: "List items grouped by area",
		Long:  "Groups items by general area in sheet order. Areas with nothing left to collect are skipped unless --all is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAreas(cmd, act, showAll)
		},
	}

	cmd.Flags().IntVarP(&act, "act", "a", 0, "Only list areas of this act (1-3)")
	cmd.Flags().BoolVar(&showAll, "all", false, "Include collected items and finished areas")

	return cmd
}

func runAreas(cmd *cobra.Command, act int, showAll bool) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		groups, err := d.ItemsHandler.Areas(handlers.AreasQuery{
			Act:     entities.Act(act),
			ShowAll: showAll,
		})
		if err != nil {
			return err
		}

		return printAreas(os.Stdout, groups)
	})
}

func printAreas(w io.Writer, groups []services.AreaGroup) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w, "Nothing left to collect.")
		return err
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d remaining)\n", g.Area, g.Remaining)
		if g.Hint != "" {
			fmt.Fprintf(w, "  %s\n", g.Hint)
		}
		for _, item := range g.Items {
			fmt.Fprintf(w, "  #%d %s [%s]\n", item.ID, item.Name, item.Type)
		}
	}
	return nil
}
