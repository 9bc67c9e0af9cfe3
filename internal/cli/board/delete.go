package board

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/types"
)

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board",
		Long: `Delete a board and all its cards.

Examples:
  taskboard board delete 9f1c2a7e-...
  taskboard board delete 9f1c2a7e-... --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Suppress confirmation output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, owned, err := cli.FromContext(ctx)
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	if owned {
		defer closeCLI(c)
	}

	if err := c.App.BoardService.DeleteBoard(ctx, types.BoardID(args[0])); err != nil {
		_ = formatter.Error("DELETE_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	formatter.Message("Board deleted")
	return nil
}
