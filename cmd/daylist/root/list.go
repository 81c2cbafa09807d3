package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"daylist/internal/config"
	"daylist/internal/engine"
	"daylist/internal/ui"
)

func newListCmd(ov *config.Overrides) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := engine.ParseFilter(filter)
			if err != nil {
				return err
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd, ov, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.SetFilter(f); err != nil {
				return err
			}
			printView(cmd.OutOrStdout(), a.svc.Render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "Filter (all|completed|pending)")
	return cmd
}

func printView(w io.Writer, v engine.View) {
	fmt.Fprintln(w, ui.Heading(ui.IconList, v.Title))
	fmt.Fprintln(w, ui.FilterTabs(v.Filter))
	fmt.Fprintln(w, "")
	if len(v.Rows) == 0 {
		fmt.Fprintln(w, ui.Muted.Render(v.Placeholder))
	}
	for _, t := range v.Rows {
		fmt.Fprintf(w, "%s %s %s  %s\n",
			ui.Muted.Render(fmt.Sprintf("#%d", t.ID)),
			ui.Checkbox(t.Completed),
			ui.TaskText(t),
			ui.Muted.Render(t.CreatedAt+" "+t.CreatedAtTime))
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, ui.Counters(v.Stats))
}
