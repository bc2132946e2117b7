package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/marsquake/internal/report"
	"github.com/vvka-141/marsquake/internal/tui"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown [catalog_document]",
	Short: "Count events per Mars type and location quality",
	Long: `Breakdown groups the catalog's events by Mars event type, then by
location quality grade, and prints the counts.

Examples:
  marsquake breakdown ./events_mqs.xml
  marsquake breakdown ./events_mqs.xml --earth-type earthquake`,
	Args: CatalogPathArgs,
	RunE: runBreakdown,
}

var breakdownFlags selectionFlagValues

func init() {
	rootCmd.AddCommand(breakdownCmd)
	addSelectionFlags(breakdownCmd, &breakdownFlags)
}

func runBreakdown(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd, args)
	if err != nil {
		return err
	}

	sel := buildSelection(cmd, &breakdownFlags)
	if hasSelection(sel) {
		cat = cat.Select(sel)
	}

	report.NewRenderer(os.Stdout, tui.IsInteractive()).Breakdown(cat)
	return nil
}
