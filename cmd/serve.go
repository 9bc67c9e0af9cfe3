package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API server",
		Long: `Run the HTTP server exposing boards, cards, batches and metrics.

Examples:
  taskboard serve
  taskboard serve --addr=0.0.0.0:3001
`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	c, owned, err := cli.FromContext(ctx)
	if err != nil {
		return err
	}
	if owned {
		defer func() {
			if err := c.Close(); err != nil {
				slog.Error("failed to close CLI", "error", err)
			}
		}()
	}

	addr := c.Config.Server.Addr
	if flagAddr, _ := cmd.Flags().GetString("addr"); flagAddr != "" {
		addr = flagAddr
	}

	slog.Info("starting server", "addr", addr)
	return server.NewServer(addr, c.App).Start(ctx)
}
