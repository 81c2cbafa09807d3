package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daylist/internal/config"
	"daylist/internal/ui"
)

func newAddCmd(ov *config.Overrides) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd, ov, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := a.svc.AddTask(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Muted.Render(fmt.Sprintf("#%d", t.ID)), t.Text)
			return nil
		},
	}

	return cmd
}
