package column

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/types"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a column to a board",
		Long: `Add a column at the end of a board. Column names are unique per
board, compared case-insensitively.

Examples:
  taskboard column add --board=9f1c2a7e-... --name="In Review"
  COL_ID=$(taskboard column add --board=9f1c2a7e-... --name="In Review" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("name", "", "Column name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
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

	col, err := c.App.BoardService.AddColumn(ctx, types.BoardID(boardID), name)
	if err != nil {
		_ = formatter.Error("ADD_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	if quietMode {
		cmd.Println(col.ID)
		return nil
	}
	return formatter.Success(col)
}
