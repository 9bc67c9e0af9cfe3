package board

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tuckertucker/taskboard/internal/cli"
	"github.com/tuckertucker/taskboard/internal/cli/styles"
)

func templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available board templates",
		Long: `List built-in and user templates usable with "board create --template".

Examples:
  taskboard board templates
  taskboard board templates --json
`,
		RunE: runTemplates,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runTemplates(cmd *cobra.Command, _ []string) error {
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

	templates, err := c.App.TemplateService.List(ctx)
	if err != nil {
		_ = formatter.Error("LIST_FAILED", err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}

	if jsonOutput {
		return formatter.Success(templates)
	}
	for _, tpl := range templates {
		cmd.Printf("%s %s\n",
			styles.Title.Render(tpl.Name),
			styles.Subtle.Render(strings.Join(tpl.Columns, " | ")))
	}
	return nil
}
