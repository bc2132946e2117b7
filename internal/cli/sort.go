package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/marsquake/internal/report"
	"github.com/vvka-141/marsquake/internal/tui"
)

var sortCmd = &cobra.Command{
	Use:   "sort [catalog_document]",
	Short: "List events by epicentral distance",
	Long: `Sort lists events in ascending order of epicentral distance, taken
from each event's preferred origin. Events whose preferred origin has no
distance are listed separately at the end.

Examples:
  marsquake sort ./events_mqs.xml
  marsquake sort ./events_mqs.xml --quality A --quality B`,
	Args: CatalogPathArgs,
	RunE: runSort,
}

var sortFlags selectionFlagValues

func init() {
	rootCmd.AddCommand(sortCmd)
	addSelectionFlags(sortCmd, &sortFlags)
}

func runSort(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd, args)
	if err != nil {
		return err
	}

	sel := buildSelection(cmd, &sortFlags)
	if hasSelection(sel) {
		cat = cat.Select(sel)
	}

	report.NewRenderer(os.Stdout, tui.IsInteractive()).SortedByDistance(cat)
	return nil
}
