// Package cmd wires the taskboard command tree
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli/batch"
	"github.com/tuckertucker/taskboard/internal/cli/board"
	"github.com/tuckertucker/taskboard/internal/cli/card"
	"github.com/tuckertucker/taskboard/internal/cli/column"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "taskboard",
	Short:   "TaskBoard - a kanban board backend for humans and agents",
	Long:    `TaskBoard manages kanban boards from the command line, over REST, or over MCP.`,
	Version: Version,
}

func init() {
	rootCmd.AddCommand(board.Cmd())
	rootCmd.AddCommand(column.Cmd())
	rootCmd.AddCommand(card.Cmd())
	rootCmd.AddCommand(batch.Cmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(mcpCmd())
}

// ExecuteContext runs the command tree under the given context so serve and
// mcp shut down when the process receives an interrupt
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
