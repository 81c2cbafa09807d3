package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"daylist/internal/config"
	"daylist/internal/engine"
	"daylist/internal/ui"
)

const Version = "0.1.0"

func newRootCmd() *cobra.Command {
	var ov config.Overrides

	rootCmd := &cobra.Command{
		Use:           "daylist",
		Short:         "daylist: a small local-first to-do list",
		Long:          "daylist keeps a short list of daily tasks in a local store, with a CLI and an interactive board.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&ov.ConfigFile, "config", "", "Config file (TOML)")
	pf.StringVar(&ov.DSN, "db", "", "Database DSN (file path for sqlite)")
	pf.StringVar(&ov.Driver, "driver", "", "Storage driver (sqlite|mysql|postgres)")
	pf.StringVar(&ov.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(
		newAddCmd(&ov),
		newToggleCmd(&ov),
		newDeleteCmd(&ov),
		newClearCmd(&ov),
		newListCmd(&ov),
		newStatsCmd(&ov),
		newExportCmd(&ov),
		newBoardCmd(&ov),
	)
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		// Blank input was already reported as a notice.
		if !errors.Is(err, engine.ErrEmptyText) {
			fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		}
		os.Exit(1)
	}
}
