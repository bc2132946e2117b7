package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/marsquake/internal/report"
	"github.com/vvka-141/marsquake/internal/tui"
)

var reportCmd = &cobra.Command{
	Use:   "report [catalog_document]",
	Short: "Print a full catalog report",
	Long: `Report prints every event in the catalog with its preferred origin,
preferred magnitude, and optional detail sections.

The catalog document defaults to catalog.document in marsquake.yaml when
no argument is given.

Examples:
  # Report the whole catalog
  marsquake report ./events_mqs.xml

  # Only specific events, with picks included
  marsquake report ./events_mqs.xml --event S0173a --event S0235b --picks

  # Report a filtered view
  marsquake report ./events_mqs.xml --type LF --quality A`,
	Args: CatalogPathArgs,
	RunE: runReport,
}

type reportFlagValues struct {
	events    []string
	picks     bool
	origins   bool
	selection selectionFlagValues
}

var reportFlags reportFlagValues

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringSliceVar(&reportFlags.events, "event", nil,
		"Report only the named events (can be specified multiple times)")
	reportCmd.Flags().BoolVar(&reportFlags.picks, "picks", false,
		"Include the pick listing per event")
	reportCmd.Flags().BoolVar(&reportFlags.origins, "origins", false,
		"Include the full origin listing per event")
	addSelectionFlags(reportCmd, &reportFlags.selection)
}

func runReport(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd, args)
	if err != nil {
		return err
	}

	sel := buildSelection(cmd, &reportFlags.selection)
	if hasSelection(sel) {
		cat = cat.Select(sel)
	}

	opts := report.DefaultOptions()
	opts.IncludePicks = reportFlags.picks
	opts.IncludeOrigins = reportFlags.origins

	r := report.NewRenderer(os.Stdout, tui.IsInteractive())

	if len(reportFlags.events) > 0 {
		events := cat.EventsByName(reportFlags.events...)
		if len(events) == 0 {
			return fmt.Errorf("no events named %s in the catalog",
				strings.Join(reportFlags.events, ", "))
		}
		for _, ev := range events {
			r.Event(ev, opts)
		}
		return nil
	}

	r.Catalog(cat, opts)
	return nil
}
