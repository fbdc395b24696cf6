package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rastertool/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP tool server on stdin/stdout",
	Long: `Run the MCP tool server. Requests are read from stdin one JSON-RPC message
per line and responses are written to stdout. Configure it in your MCP client.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Debug("starting server", "version", Version, "built", BuildTime, "commit", GitCommit)
		return server.New(slog.Default()).Serve(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
