package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/ersonp/bg3-checklist/internal/application/handlers"
	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/services"
)

type itemsFlags struct {
	act           int
	search        string
	page          int
	pageSize      int
	showCompleted bool
	showHidden    bool
	buildsOnly    bool
	format        string
}

// itemView is one item as printed by the items command.
type itemView struct {
	ID          int      `json:"id"`
	Act         int      `json:"act"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	GeneralArea string   `json:"generalArea"`
	Builds      string   `json:"builds"`
	Effect      []string `json:"effect"`
	Source      string   `json:"source"`
	Location    string   `json:"location"`
	Wiki        string   `json:"wiki"`
}

// pageView is one page as printed by the items command. Page is 1-based.
type pageView struct {
	Items     []itemView `json:"items"`
	Page      int        `json:"page"`
	PageSize  int        `json:"pageSize"`
	PageCount int        `json:"pageCount"`
	Total     int        `json:"total"`
	Collected int        `json:"collected"`
	Hidden    int        `json:"hidden"`
}

func newItemsCmd() *cobra.Command {
	var flags itemsFlags

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List collectible items",
		Long: "Lists the items still to collect, filtered by the completed, hidden and active build state.\n" +
			"Search matches act, name, builds, type, area, source and location, ignoring case.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItems(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.act, "act", "a", 0, "Only list items of this act (1-3)")
	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "Case-insensitive search text")
	cmd.Flags().IntVarP(&flags.page, "page", "p", 1, "Page number")
	cmd.Flags().IntVarP(&flags.pageSize, "page-size", "n", 0, "Items per page (10, 15, 20, 25 or 50)")
	cmd.Flags().BoolVar(&flags.showCompleted, "show-completed", false, "Include collected items")
	cmd.Flags().BoolVar(&flags.showHidden, "show-hidden", false, "Include hidden items")
	cmd.Flags().BoolVar(&flags.buildsOnly, "builds-only", false, "Only list items of active builds")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "table", "Output format (table, json)")

	return cmd
}

func runItems(cmd *cobra.Command, flags itemsFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}
	if flags.pageSize != 0 && !services.ValidPageSize(flags.pageSize) {
		return fmt.Errorf("invalid page size %d, valid sizes: %v", flags.pageSize, services.PageSizes)
	}

	return withDeps(cmd.Context(), func(d *Deps) error {
		pageSize := flags.pageSize
		if pageSize == 0 {
			pageSize = d.Config.View.PageSize
		}

		page, err := d.ItemsHandler.Handle(handlers.ItemsQuery{
			Act: entities.Act(flags.act),
			ViewQuery: services.ViewQuery{
				FilterOptions: services.FilterOptions{
					ShowCompleted: flags.showCompleted,
					ShowHidden:    flags.showHidden,
					BuildsOnly:    flags.buildsOnly,
				},
				Search:    flags.search,
				PageIndex: flags.page - 1,
				PageSize:  pageSize,
			},
		})
		if err != nil {
			return err
		}

		view := newPageView(page, d.ItemsHandler.BuildTags)
		progress := d.ItemsHandler.Progress()
		view.Collected = progress.Completed
		view.Hidden = progress.Hidden
		if flags.format == "json" {
			return formatItemsJSON(os.Stdout, view)
		}
		return formatItemsTable(os.Stdout, view)
	})
}

func newPageView(page *services.Page, buildTags func(*entities.Item) string) pageView {
	items := make([]itemView, 0, len(page.Items))
	for i := range page.Items {
		item := &page.Items[i]
		items = append(items, itemView{
			ID:          item.ID,
			Act:         int(item.Act),
			Name:        item.Name,
			Type:        item.Type,
			GeneralArea: item.GeneralArea,
			Builds:      buildTags(item),
			Effect:      item.Effect,
			Source:      item.Source,
			Location:    item.Location,
			Wiki:        item.WikiURL(),
		})
	}

	return pageView{
		Items:     items,
		Page:      page.PageIndex + 1,
		PageSize:  page.PageSize,
		PageCount: page.PageCount,
		Total:     page.Total,
	}
}

func formatItemsJSON(w io.Writer, view pageView) error {
	encoder := sonic.ConfigStd.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(view)
}

func formatItemsTable(w io.Writer, view pageView) error {
	if len(view.Items) == 0 {
		_, err := fmt.Fprintln(w, "No items found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tACT\tNAME\tTYPE\tAREA\tBUILDS\tSOURCE\tLOCATION")
	for _, item := range view.Items {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID,
			item.Act,
			truncate(item.Name, NameWidth),
			item.Type,
			truncate(item.GeneralArea, AreaWidth),
			truncate(item.Builds, BuildsWidth),
			truncate(oneLine(item.Source), SourceWidth),
			truncate(oneLine(item.Location), LocationWidth),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nPage %d of %d (%d items)\n%d collected, %d hidden\n",
		view.Page, view.PageCount, view.Total, view.Collected, view.Hidden)
	return err
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
