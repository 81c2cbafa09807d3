package root

import (
	"context"

	"github.com/spf13/cobra"

	"daylist/internal/config"
	"daylist/internal/tui"
)

func newBoardCmd(ov *config.Overrides) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd, ov, tui.Silent)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, a.svc, a.cfg.NoticeTTL(), cmd.OutOrStdout())
		},
	}

	return cmd
}
