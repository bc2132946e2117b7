package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select [catalog_document]",
	Short: "List events matching filter criteria",
	Long: `Select applies the filter criteria to the catalog and lists the
matching events, one per line. All given criteria must hold at once.

Magnitude bounds compare against the resolved preferred magnitude;
events without one never match a bound.

Examples:
  # Well-located low-frequency events
  marsquake select ./events_mqs.xml --type LF --quality A --quality B

  # Strong events of any type
  marsquake select ./events_mqs.xml --min-magnitude 3.0`,
	Args: CatalogPathArgs,
	RunE: runSelect,
}

var selectFlags selectionFlagValues

func init() {
	rootCmd.AddCommand(selectCmd)
	addSelectionFlags(selectCmd, &selectFlags)
}

func runSelect(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd, args)
	if err != nil {
		return err
	}

	selected := cat.Select(buildSelection(cmd, &selectFlags))
	for _, ev := range selected.Events() {
		fmt.Fprintln(os.Stdout, ev.String())
	}
	fmt.Fprintf(os.Stderr, "%d of %d events match\n", selected.Len(), cat.Len())
	return nil
}
