// Package card implements the "taskboard card" command group
package card

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
)

// Cmd returns the card command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(createCmd())
	cmd.AddCommand(showCmd())
	cmd.AddCommand(updateCmd())
	cmd.AddCommand(moveCmd())
	cmd.AddCommand(deleteCmd())

	return cmd
}

// splitList parses a comma-separated flag value, dropping empty entries
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
