package root

import (
	"context"

	"github.com/spf13/cobra"

	"daylist/internal/config"
)

func newClearCmd(ov *config.Overrides) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed tasks (asks for confirmation)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd, ov, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			_, err = a.svc.ClearCompleted(ctx, confirmerFor(cmd, yes))
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
