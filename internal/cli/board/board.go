// Package board implements the "taskboard board" command group
package board

import "github.com/spf13/cobra"

// Cmd returns the board command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	cmd.AddCommand(createCmd())
	cmd.AddCommand(listCmd())
	cmd.AddCommand(showCmd())
	cmd.AddCommand(deleteCmd())
	cmd.AddCommand(templatesCmd())

	return cmd
}
