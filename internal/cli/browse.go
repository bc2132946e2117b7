package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/marsquake/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [catalog_document]",
	Short: "Browse the catalog interactively",
	Long: `Browse opens an interactive terminal viewer over the catalog: a
filterable event list with a per-event detail page.

Requires a terminal. In CI or with piped output, use 'report' instead.

Keys:
  ↑/↓ or k/j   move the cursor
  enter        open the event under the cursor
  /            filter by event name
  esc          clear the filter / go back
  q            quit

Examples:
  marsquake browse ./events_mqs.xml
  marsquake browse ./events_mqs.xml --type LF`,
	Args: CatalogPathArgs,
	RunE: runBrowse,
}

var browseFlags selectionFlagValues

func init() {
	rootCmd.AddCommand(browseCmd)
	addSelectionFlags(browseCmd, &browseFlags)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !tui.IsInteractive() {
		return fmt.Errorf("browse requires an interactive terminal; use 'report' for plain output")
	}

	cat, err := loadCatalog(cmd, args)
	if err != nil {
		return err
	}

	sel := buildSelection(cmd, &browseFlags)
	if hasSelection(sel) {
		cat = cat.Select(sel)
	}

	return tui.Run(cat)
}
