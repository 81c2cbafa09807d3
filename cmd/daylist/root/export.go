package root

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"daylist/internal/config"
	"daylist/internal/export"
	"daylist/internal/ui"
)

func newExportCmd(ov *config.Overrides) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks (" + strings.Join(export.Formats, "|") + ")",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, cmd, ov, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := export.Export(a.svc.Tasks(), format, a.cfg.Title)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", ui.Good.Render(ui.IconDone+" Exported"), ui.Muted.Render(output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Format ("+strings.Join(export.Formats, "|")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
