// Package batch implements the "taskboard batch" command group
package batch

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
)

// Cmd returns the batch command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Apply batches of card operations",
	}

	cmd.AddCommand(applyCmd())

	return cmd
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
