package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/specparity"
	"github.com/erraggy/specparity/internal/cliutil"
)

type versionOutput struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

func (a *app) newVersionCommand() *cobra.Command {
	var extended bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if cliutil.IsStructured(a.flags.Format) {
				return cliutil.WriteStructured(a.stdout, versionOutput{
					Version:   specparity.Version(),
					Commit:    specparity.Commit(),
					BuildTime: specparity.BuildTime(),
					GoVersion: specparity.GoVersion(),
				}, a.flags.Format)
			}
			if extended {
				cliutil.Writef(a.stdout, "%s", specparity.BuildInfo())
				return nil
			}
			cliutil.Writef(a.stdout, "specparity %s\n", specparity.Version())
			return nil
		},
	}
	cmd.Flags().BoolVar(&extended, "extended", false, "include commit, build time and Go version")
	return cmd
}
