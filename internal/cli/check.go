package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pipegrid/pkg/diagram"
	"github.com/matzehuels/pipegrid/pkg/errors"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <diagram>...",
		Short: "Validate diagrams against the part catalog",
		Long: `Check reads each diagram and reports invalid rotations, duplicate parts and
part types missing from the catalog, without computing any flow.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			defer c.logMetrics()

			catalog, err := c.loadCatalog(ctx)
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range args {
				d, err := diagram.ReadFile(path)
				if err != nil {
					printError(c.Out, "%s: %s", path, errors.UserMessage(err))
					failed++
					continue
				}
				problems := diagram.Check(d, catalog)
				if len(problems) == 0 {
					printSuccess(c.Out, "%s: %d parts", d.Name, len(d.Parts))
					continue
				}
				failed++
				printError(c.Out, "%s: %d problems", d.Name, len(problems))
				for _, p := range problems {
					printDetail(c.Out, "%s", errors.UserMessage(p))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d diagrams failed", failed, len(args))
			}
			return nil
		},
	}
}
