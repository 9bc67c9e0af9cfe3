// Package column implements the "taskboard column" command group
package column

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
)

// Cmd returns the column command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage board columns",
	}

	cmd.AddCommand(addCmd())
	cmd.AddCommand(renameCmd())
	cmd.AddCommand(deleteCmd())

	return cmd
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
