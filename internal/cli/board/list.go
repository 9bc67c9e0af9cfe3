package board

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/cli/styles"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List every board with its card count and last update time.

Examples:
  taskboard board list
  taskboard board list --json
`,
		RunE: runList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
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

	summaries, err := c.App.BoardService.ListBoards(ctx)
	if err != nil {
		_ = formatter.Error("LIST_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	if quietMode {
		for _, s := range summaries {
			cmd.Println(s.ID)
		}
		return nil
	}
	if jsonOutput {
		return formatter.Success(summaries)
	}

	if len(summaries) == 0 {
		cmd.Println("No boards found.")
		return nil
	}
	for _, s := range summaries {
		cmd.Printf("%s %s\n",
			styles.Title.Render(s.Name),
			styles.Subtle.Render(fmt.Sprintf("(%s, %d cards, updated %s)",
				s.ID, s.CardCount, s.LastUpdated.Format("2006-01-02 15:04"))))
	}
	return nil
}
