package commands

import (
	"github.com/spf13/cobra"

	"github.com/sunfmin/mcp-go-calculator/pkg/config"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

// Version is reported by "calc serve" to MCP clients.
var Version = "dev"

type options struct {
	envFile  string
	jsonOut  bool
	cfg      *config.Config
	closeLog func() error
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "calc",
		Short:        "Integer calculator with an MCP server mode",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var envFiles []string
			if opts.envFile != "" {
				envFiles = append(envFiles, opts.envFile)
			}
			cfg, err := config.Load(envFiles...)
			if err != nil {
				return err
			}
			closeLog, err := cfg.SetupLogging()
			if err != nil {
				logger.Warn("Failed to set up log file", "error", err)
			}
			opts.cfg = cfg
			opts.closeLog = closeLog
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.closeLog != nil {
				return opts.closeLog()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env", "", "env file to load (default .env)")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(arithmeticCmds(opts)...)
	root.AddCommand(evalCmd(opts), serveCmd(opts))
	return root
}
