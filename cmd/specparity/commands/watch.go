package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/erraggy/specparity/internal/cliutil"
	"github.com/erraggy/specparity/internal/watch"
)

func (a *app) newWatchCommand() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the check whenever a document changes",
		Long: `Run the check once, then watch the directories of every configured document
and re-run it after each change. Bursts of changes are debounced into one run.

Missing or malformed documents are reported and watching continues. Stop
with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWatch(cmd.Context(), debounce)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "delay before re-running after a change")
	return cmd
}

func (a *app) runWatch(ctx context.Context, debounce time.Duration) error {
	checker, err := a.newChecker()
	if err != nil {
		return err
	}
	cfg := checker.Config()

	w, err := watch.New(cfg.SpecDir, cfg.Locations(), watch.WithDebounce(debounce), watch.WithLogger(a.libLogger()))
	if err != nil {
		return err
	}
	a.logger.Info("watching documents", "dirs", w.Dirs(), "debounce", debounce)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.Run(ctx, func(ctx context.Context) error {
		report, err := checker.Run(ctx)
		if err != nil {
			var reported *reportedError
			if !errors.As(a.runError(err), &reported) {
				cliutil.Writef(a.stderr, "Error: %v\n", err)
			}
			return err
		}
		a.logger.Info("check finished", "passed", report.Passed)
		return nil
	})
}
