package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daylist/internal/config"
	"daylist/internal/ui"
)

func newToggleCmd(ov *config.Overrides) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"do"},
		Short:   "Mark a task completed (or pending again)",
		Args:    idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd, ov, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			id := parseID(args)
			t, err := a.svc.ToggleTask(ctx, id)
			if err != nil {
				return err
			}
			if t == nil {
				notFound(cmd, id)
				return nil
			}
			state := ui.Warn.Render(ui.IconPending + " pending")
			if t.Completed {
				state = ui.Good.Render(ui.IconDone + " completed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Muted.Render(fmt.Sprintf("#%d", t.ID)), t.Text, state)
			return nil
		},
	}

	return cmd
}
