package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erraggy/specparity/config"
	"github.com/erraggy/specparity/internal/cliutil"
	"github.com/erraggy/specparity/internal/fileutil"
)

func (a *app) newConfigCommand() *cobra.Command {
	var (
		schema bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration a check would run with: built-in defaults, then the
--config file, then SPECPARITY_* environment variables, then --spec-dir.
Use --schema to print the JSON schema configuration files are validated against.
Use --output to write the configuration to a file instead of stdout.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if schema {
				_, err := a.stdout.Write(config.Schema())
				return err
			}
			return a.runConfig(output)
		},
	}
	cmd.Flags().BoolVar(&schema, "schema", false, "print the configuration JSON schema")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the configuration to `file`")
	return cmd
}

func (a *app) runConfig(output string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if a.flags.Format == cliutil.FormatJSON {
		if err := cliutil.WriteStructured(&buf, cfg, cliutil.FormatJSON); err != nil {
			return err
		}
	} else {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		buf.Write(data)
	}
	if output == "" {
		_, err = a.stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	a.logger.Info("configuration written", "path", output)
	return nil
}
