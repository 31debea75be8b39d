package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ersonp/bg3-checklist/internal/application/handlers"
)

func newMarkCmd(action handlers.ProgressAction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(action) + " <id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMark(cmd, action, args)
		},
	}
}

func runMark(cmd *cobra.Command, action handlers.ProgressAction, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.ProgressHandler.Handle(ctx, action, ids)
		if err != nil {
			return err
		}

		if len(result.Changed) > 0 {
			fmt.Printf("%s: %v\n", action, result.Changed)
		}
		if len(result.Unchanged) > 0 {
			fmt.Printf("Already in that state: %v\n", result.Unchanged)
		}
		return nil
	})
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id < 1 {
			return nil, fmt.Errorf("invalid item id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
