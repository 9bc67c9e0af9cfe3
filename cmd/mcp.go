package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/mcp"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		Long: `Run the Model Context Protocol server over stdin/stdout so agents
can manage boards through tools.

Example client config:
  {"command": "taskboard", "args": ["mcp"]}
`,
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, _ []string) error {
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

	mcp.Version = Version
	return mcp.Serve(ctx, mcp.New(c.App))
}
