package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/bg3-checklist/internal/application/handlers"
)

func newBuildsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "builds",
		Short: "Manage active builds",
		Long:  "List builds and choose which ones --builds-only filters on.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildsList(cmd)
		},
	}

	cmd.AddCommand(newBuildsListCmd())
	cmd.AddCommand(newBuildsToggleCmd())
	cmd.AddCommand(newBuildsEnableAllCmd())
	cmd.AddCommand(newBuildsDisableAllCmd())

	return cmd
}

func newBuildsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildsList(cmd)
		},
	}
}

func runBuildsList(cmd *cobra.Command) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		return printBuilds(os.Stdout, d.BuildsHandler.List())
	})
}

func printBuilds(w io.Writer, builds []handlers.BuildStatus) error {
	if len(builds) == 0 {
		_, err := fmt.Fprintln(w, "No builds found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tITEMS\tACTIVE")
	for _, b := range builds {
		active := ""
		if b.Active {
			active = "yes"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", b.Name, b.Items, active)
	}
	return tw.Flush()
}

func newBuildsToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <name>",
		Short: "Activate or deactivate a build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				active, err := d.BuildsHandler.Toggle(ctx, args[0])
				if err != nil {
					return err
				}
				if active {
					fmt.Printf("Activated build: %s\n", args[0])
				} else {
					fmt.Printf("Deactivated build: %s\n", args[0])
				}
				return nil
			})
		},
	}
}

func newBuildsEnableAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable-all",
		Short: "Activate every build",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				if err := d.BuildsHandler.EnableAll(ctx); err != nil {
					return err
				}
				fmt.Println("All builds activated.")
				return nil
			})
		},
	}
}

func newBuildsDisableAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable-all",
		Short: "Deactivate every build",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				if err := d.BuildsHandler.DisableAll(ctx); err != nil {
					return err
				}
				fmt.Println("All builds deactivated.")
				return nil
			})
		},
	}
}
