package board

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/cli/styles"
	"github.com/tuckertucker/taskboard/internal/converters"
	"github.com/tuckertucker/taskboard/internal/types"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <board-id>",
		Short: "Show a board with its columns and cards",
		Long: `Show one board: columns in order, cards in position order.

Examples:
  taskboard board show 9f1c2a7e-...
  taskboard board show 9f1c2a7e-... --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	c, owned, err := cli.FromContext(ctx)
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	if owned {
		defer closeCLI(c)
	}

	board, err := c.App.BoardService.GetBoard(ctx, types.BoardID(args[0]))
	if err != nil {
		_ = formatter.Error("SHOW_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	view := converters.ToBoardView(board)
	if jsonOutput {
		return formatter.Success(view)
	}

	cmd.Printf("%s %s\n\n",
		styles.Title.Render(view.Name),
		styles.Subtle.Render(string(view.ID)))
	for _, col := range view.Columns {
		cmd.Println(styles.ColumnHeader.Render(fmt.Sprintf("%s (%d)", col.Name, len(col.Cards))))
		for _, card := range col.Cards {
			line := fmt.Sprintf("  %d. %s", card.Position, card.Title)
			if len(card.Tags) > 0 {
				line += " " + styles.Subtle.Render("["+strings.Join(card.Tags, ", ")+"]")
			}
			cmd.Println(styles.CardLine.Render(line))
		}
	}
	return nil
}
