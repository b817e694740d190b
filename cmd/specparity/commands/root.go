// Package commands provides the cobra command tree for specparity.
package commands

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/erraggy/specparity"
	"github.com/erraggy/specparity/config"
	"github.com/erraggy/specparity/internal/cliutil"
	"github.com/erraggy/specparity/loader"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	ConfigFile string
	SpecDir    string
	Format     string
	LogLevel   string
	LogFormat  string
}

// app is the state shared by one command tree. A fresh app per Execute call
// keeps tests isolated from each other.
type app struct {
	flags  globalFlags
	viper  *viper.Viper
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// Execute runs the command line and returns the process exit code:
// 0 pass, 1 missing input or discrepancies, 2 malformed input, invalid
// configuration or usage error.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{viper: viper.New(), stdout: stdout, stderr: stderr}
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	if !alreadyReported(err) {
		cliutil.Writef(stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

// newRootCommand creates a fresh root command instance. Running it without a
// subcommand runs the check.
func (a *app) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specparity",
		Short: "Check that unified OpenAPI specs match the separate v1/v2 specs",
		Long: `specparity validates that the unified OpenAPI documents carry exactly the
paths of the standalone versioned documents they were merged from.

Examples:
   specparity                          # run the check with the default layout
   specparity --spec-dir api/openapi-spec --format json
   specparity watch                    # re-run whenever a document changes
   specparity paths spec3.cli.json --namespace v2
   specparity config                   # print the effective configuration

Exit Status:
   0    all rules matched
   1    a document is missing or a rule found discrepancies
   2    malformed document, invalid configuration or usage error`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Version:       specparity.Version(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheck(cmd)
		},
	}
	cmd.SetVersionTemplate("specparity {{.Version}}\n")
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.flags.ConfigFile, "config", "c", "", "configuration file (YAML or JSON)")
	pf.StringVar(&a.flags.SpecDir, "spec-dir", "", "directory holding the documents (default "+config.DefaultSpecDir+")")
	pf.StringVarP(&a.flags.Format, "format", "f", cliutil.FormatText, "output format: text, json, or yaml")
	pf.StringVar(&a.flags.LogLevel, "log-level", "warn", "log level: debug, info, warn, or error")
	pf.StringVar(&a.flags.LogFormat, "log-format", "text", "log format: text or json")

	_ = a.viper.BindPFlag("spec_dir", pf.Lookup("spec-dir"))

	cmd.AddCommand(
		a.newCheckCommand(),
		a.newWatchCommand(),
		a.newPathsCommand(),
		a.newConfigCommand(),
		a.newMCPCommand(),
		a.newVersionCommand(),
	)
	return cmd
}

// normalizeFlagName accepts configuration key spellings (spec_dir) for flags
// (--spec-dir).
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// initialize validates the global flags and builds the logger.
func (a *app) initialize(_ *cobra.Command) error {
	if err := cliutil.ValidateOutputFormat(a.flags.Format); err != nil {
		return usageError(err)
	}
	logger, err := newLogger(a.stderr, a.flags.LogLevel, a.flags.LogFormat)
	if err != nil {
		return usageError(err)
	}
	a.logger = logger
	return nil
}

// loadConfig returns the effective configuration: defaults, the config file,
// SPECPARITY_* environment variables, then --spec-dir.
func (a *app) loadConfig() (*config.Config, error) {
	return config.LoadWithViper(a.viper, a.flags.ConfigFile)
}

// libLogger adapts the command logger for library packages.
func (a *app) libLogger() loader.Logger {
	return loader.NewSlogAdapter(a.logger)
}
