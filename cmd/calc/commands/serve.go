package commands

import (
	"github.com/spf13/cobra"

	"github.com/sunfmin/mcp-go-calculator/pkg/mcp"
)

func serveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator as an MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcp.NewMCPCalculatorServer(opts.cfg.ServerName, Version).ServeStdio()
		},
	}
}
