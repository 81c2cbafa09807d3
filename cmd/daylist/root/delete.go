package root

import (
	"context"

	"github.com/spf13/cobra"

	"daylist/internal/config"
)

func newDeleteCmd(ov *config.Overrides) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task (asks for confirmation)",
		Args:    idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd, ov, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			id := parseID(args)
			if !hasTask(a, id) {
				notFound(cmd, id)
				return nil
			}
			_, err = a.svc.DeleteTask(ctx, id, confirmerFor(cmd, yes))
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func hasTask(a *app, id int64) bool {
	for _, t := range a.svc.Tasks() {
		if t.ID == id {
			return true
		}
	}
	return false
}
