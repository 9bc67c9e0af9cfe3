package column

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/types"
)

func renameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <column-id>",
		Short: "Rename a column",
		Long: `Rename a column. Card positions are unaffected.

Examples:
  taskboard column rename col-123 --board=9f1c2a7e-... --name="Shipped"
`,
		Args: cobra.ExactArgs(1),
		RunE: runRename,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("name", "", "New column name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Suppress confirmation output")

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	boardID, _ := cmd.Flags().GetString("board")
	name, _ := cmd.Flags().GetString("name")
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

	err = c.App.BoardService.RenameColumn(ctx, types.BoardID(boardID), types.ColumnID(args[0]), name)
	if err != nil {
		_ = formatter.Error("RENAME_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	formatter.Message("Column renamed")
	return nil
}
