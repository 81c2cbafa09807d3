package root

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"daylist/internal/analytics"
	"daylist/internal/config"
	"daylist/internal/engine"
	"daylist/internal/logging"
	"daylist/internal/storage"
	"daylist/internal/ui"
)

type app struct {
	cfg    *config.Config
	svc    *engine.Service
	logger *log.Logger
}

// openApp loads config, opens storage and returns a loaded service. A nil
// notifier prints notices to the command's output.
func openApp(ctx context.Context, cmd *cobra.Command, ov *config.Overrides, notifier engine.Notifier) (*app, func(), error) {
	cfg, err := config.Load(*ov)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

	db, dialect, err := storage.Open(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	logger.Debug("storage opened", "driver", dialect, "files", cfg.Files)

	if notifier == nil {
		notifier = printNotifier(cmd.OutOrStdout())
	}
	rec := analytics.NewRecorder(cfg.AnalyticsPath())
	if rec.Path() != "" {
		logger.Debug("analytics enabled", "events", rec.Path())
	}
	svc := engine.NewService(storage.NewKVRepo(db, dialect), engine.Options{
		StorageKey:   cfg.StorageKey,
		DateLayout:   cfg.DateLayout,
		TimeLayout:   cfg.TimeLayout,
		Title:        cfg.Title,
		PageLocation: pageLocation(dialect, cfg.DSN),
		Tracker:      rec,
		Notifier:     notifier,
		Logger:       logger,
	})
	if err := svc.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return &app{cfg: cfg, svc: svc, logger: logger}, cleanup, nil
}

// pageLocation identifies the store without leaking credentials.
func pageLocation(d storage.Dialect, dsn string) string {
	if d == storage.DialectSQLite {
		return "file://" + dsn
	}
	return string(d) + "://"
}

func printNotifier(w io.Writer) engine.Notifier {
	return engine.NotifyFunc(func(n engine.Notice) {
		fmt.Fprintln(w, ui.Notice(n))
	})
}

// promptConfirmer asks on out and reads a y/N answer from in.
func promptConfirmer(in io.Reader, out io.Writer) engine.Confirmer {
	r := bufio.NewReader(in)
	return engine.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(out, "%s %s ", ui.Warn.Render(ui.IconWarn+" "+prompt), ui.Muted.Render("[y/N]"))
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	})
}

func confirmerFor(cmd *cobra.Command, yes bool) engine.Confirmer {
	if yes {
		return engine.Confirmed
	}
	return promptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
}

func notFound(cmd *cobra.Command, id int64) {
	fmt.Fprintln(cmd.OutOrStdout(), ui.Notice(engine.Notice{
		Kind:    engine.NoticeInfo,
		Message: fmt.Sprintf("task #%d not found", id),
	}))
}
