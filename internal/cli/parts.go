package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pipegrid/pkg/parts"
)

// partsCommand creates the parts command.
func (c *CLI) partsCommand() *cobra.Command {
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "parts",
		Short: "List the part types known to the catalog",
		Long: `Parts lists every part type available to diagrams: the built-in types plus
any loaded from the user catalog, PIPEGRID_CATALOG or --catalog.

With --toml the catalog is written in the catalog file format, which is a
convenient starting point for a custom catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			if asTOML {
				return parts.WriteCatalog(c.Out, catalog)
			}
			fmt.Fprintln(c.Out, catalogTable(catalog))
			printInfo(c.Out, "%s part types", StyleNumber.Render(fmt.Sprint(catalog.Len())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTOML, "toml", false, "print the catalog as TOML")

	return cmd
}
