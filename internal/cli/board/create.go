package board

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/converters"
	"github.com/tuckertucker/taskboard/internal/models"
)

// createCmd returns the board create subcommand
func createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new board from explicit columns or a template.

Examples:
  # Create with explicit columns
  taskboard board create --name="Sprint 12" --columns="Todo,Doing,Done"

  # Create from a template (kanban, scrum, simple, or a user template)
  taskboard board create --name="Sprint 12" --template=scrum

  # JSON output for agents
  taskboard board create --name="Sprint 12" --template=kanban --json

  # Quiet mode for bash capture
  BOARD_ID=$(taskboard board create --name="Sprint 12" --template=kanban --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Board name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("columns", "", "Comma-separated column names")
	cmd.Flags().String("template", "", "Template to instantiate")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	columns, _ := cmd.Flags().GetString("columns")
	template, _ := cmd.Flags().GetString("template")
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

	var board *models.Board
	if template != "" {
		board, err = c.App.TemplateService.CreateBoard(ctx, template, name)
	} else {
		board, err = c.App.BoardService.CreateBoard(ctx, name, splitColumns(columns))
	}
	if err != nil {
		_ = formatter.Error("CREATE_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	if quietMode {
		cmd.Println(board.ID)
		return nil
	}
	return formatter.Success(converters.ToBoardView(board))
}

func splitColumns(raw string) []string {
	var columns []string
	for _, col := range strings.Split(raw, ",") {
		if col = strings.TrimSpace(col); col != "" {
			columns = append(columns, col)
		}
	}
	return columns
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
