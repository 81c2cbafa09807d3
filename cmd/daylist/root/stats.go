package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daylist/internal/config"
	"daylist/internal/ui"
)

func newStatsCmd(ov *config.Overrides) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd, ov, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			v := a.svc.Render()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, v.Title))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total", v.Stats.Total))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Completed", v.Stats.Completed))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Pending", v.Stats.Pending))
			return nil
		},
	}

	return cmd
}
