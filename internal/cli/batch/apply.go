package batch

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/cli/styles"
	"github.com/tuckertucker/taskboard/internal/converters"
	batchservice "github.com/tuckertucker/taskboard/internal/services/batch"
	"github.com/tuckertucker/taskboard/internal/types"
)

func applyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a batch of operations to a board",
		Long: `Apply a JSON array of create, update, move and delete operations to
one board in a single load-modify-save cycle. Operations run in order;
later operations may refer to cards created earlier in the same batch
through "$ref:<name>" references.

The file format is the same array the REST batch endpoint accepts:

  [
    {"type": "create", "reference": "task1",
     "columnId": "col-1", "data": {"title": "Design schema"}},
    {"type": "create", "columnId": "col-1",
     "data": {"title": "Implement", "dependencies": ["$ref:task1"]}},
    {"type": "move", "cardId": "$ref:task1", "columnId": "col-2", "position": "first"}
  ]

Examples:
  taskboard batch apply --board=9f1c2a7e-... --file=ops.json
  cat ops.json | taskboard batch apply --board=9f1c2a7e-... --file=-
  taskboard batch apply --board=9f1c2a7e-... --file=ops.json --json
`,
		RunE: runApply,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("file", "", "Operations file, or - for stdin (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Suppress per-operation output")

	return cmd
}

func runApply(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	boardID, _ := cmd.Flags().GetString("board")
	file, _ := cmd.Flags().GetString("file")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	raw, err := readOperations(file)
	if err != nil {
		_ = formatter.Error("READ_FAILED", err.Error())
		os.Exit(cli.ExitDataErr)
	}

	ops, err := converters.DecodeOperations(raw)
	if err != nil {
		_ = formatter.Error(batchservice.CodeValidationError, err.Error())
		os.Exit(cli.ExitValidation)
	}

	c, owned, err := cli.FromContext(ctx)
	if err != nil {
		_ = formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	if owned {
		defer closeCLI(c)
	}

	result, err := c.App.BatchService.Apply(ctx, types.BoardID(boardID), ops)
	if err != nil {
		_ = formatter.Error(batchservice.ErrorCode(err), err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	if jsonOutput {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if !quietMode {
		printResult(cmd, result)
	}

	if !result.Success {
		os.Exit(cli.ExitError)
	}
	return nil
}

// readOperations loads the operations payload from a file or stdin
func readOperations(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func printResult(cmd *cobra.Command, result *batchservice.Result) {
	for _, op := range result.Results {
		if op.Success {
			line := fmt.Sprintf("✓ [%d] %s", op.Index, op.Type)
			if op.CardID != "" {
				line += " " + string(op.CardID)
			}
			cmd.Println(styles.Success.Render(line))
			continue
		}
		cmd.Println(styles.Error.Render(fmt.Sprintf("✗ [%d] %s: %s (%s)", op.Index, op.Type, op.Error, op.Code)))
	}
	if result.Success {
		cmd.Println(styles.Success.Render("Batch applied"))
	} else {
		cmd.Println(styles.Error.Render("Batch finished with failures"))
	}
}
