package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/specparity/internal/mcpserver"
)

func (a *app) newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the check as MCP tools over stdio",
		Long: `Start an MCP (Model Context Protocol) server over stdio exposing the
check_parity and partition_paths tools. Defaults are read from
SPECPARITY_MCP_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
