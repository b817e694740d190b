package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/erraggy/specparity/internal/cliutil"
	"github.com/erraggy/specparity/parity"
	"github.com/erraggy/specparity/parityerrors"
)

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the parity check once (default command)",
		Long: `Load every configured document, split the unified documents by namespace
and compare each namespace subset against its standalone document.

All rules run even after one fails, so a single run reports every
discrepancy. In text format the console report is printed; json and yaml
print the structured report instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheck(cmd)
		},
	}
}

func (a *app) runCheck(cmd *cobra.Command) error {
	checker, err := a.newChecker()
	if err != nil {
		return err
	}
	report, err := checker.Run(cmd.Context())
	if err != nil {
		return a.runError(err)
	}
	if !report.Passed {
		return failedError{}
	}
	return nil
}

func (a *app) newChecker() (*parity.Checker, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	return parity.New(cfg,
		parity.WithOutput(a.stdout),
		parity.WithFormat(a.flags.Format),
		parity.WithLogger(a.libLogger()),
	)
}

// runError marks missing-input errors as already reported when the text
// report printed them.
func (a *app) runError(err error) error {
	if a.flags.Format == cliutil.FormatText && errors.Is(err, parityerrors.ErrMissingInput) {
		return &reportedError{err: err}
	}
	return err
}
