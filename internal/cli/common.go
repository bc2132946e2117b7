package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/marsquake/internal/config"
	"github.com/vvka-141/marsquake/internal/logging"
	"github.com/vvka-141/marsquake/internal/quakeml"
	"github.com/vvka-141/marsquake/pkg/catalog"
)

// resolveDocumentPath determines the catalog document to read.
// Precedence: positional argument > marsquake.yaml catalog.document.
func resolveDocumentPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	_ = godotenv.Load()

	projectCfg, err := config.Load(".")
	if err == nil && projectCfg.Catalog.Document != "" {
		return projectCfg.Catalog.Document, nil
	}

	return "", fmt.Errorf(`missing catalog document

Pass the document path as an argument, or set catalog.document in %s.

Example:
  marsquake report ./events_mqs.xml`, config.ConfigFileName)
}

// loadCatalog reads and links the catalog document for a command.
func loadCatalog(cmd *cobra.Command, args []string) (*catalog.Catalog, error) {
	path, err := resolveDocumentPath(args)
	if err != nil {
		return nil, err
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	return quakeml.NewReader(logger).ReadFile(path)
}

// selectionFlagValues holds the shared filtering flags.
type selectionFlagValues struct {
	marsTypes    []string
	earthTypes   []string
	qualities    []string
	minMagnitude float64
	maxMagnitude float64
}

// addSelectionFlags registers the filtering flags on a command.
func addSelectionFlags(cmd *cobra.Command, flags *selectionFlagValues) {
	cmd.Flags().StringSliceVar(&flags.marsTypes, "type", nil,
		"Mars event type codes to keep (can be specified multiple times)\n"+
			"Example: --type LF --type BB")
	cmd.Flags().StringSliceVar(&flags.earthTypes, "earth-type", nil,
		"Base event types to keep\n"+
			"Example: --earth-type earthquake --earth-type meteorite")
	cmd.Flags().StringSliceVar(&flags.qualities, "quality", nil,
		"Location quality grades to keep, with or without a leading Q\n"+
			"Example: --quality A --quality QB")
	cmd.Flags().Float64Var(&flags.minMagnitude, "min-magnitude", 0,
		"Keep events with preferred magnitude at or above this value")
	cmd.Flags().Float64Var(&flags.maxMagnitude, "max-magnitude", 0,
		"Keep events with preferred magnitude at or below this value")

	cmd.RegisterFlagCompletionFunc("type", completeMarsTypes)
	cmd.RegisterFlagCompletionFunc("quality", completeQualities)
}

// buildSelection converts flag values to selection criteria. Magnitude
// bounds only apply when their flags were changed.
func buildSelection(cmd *cobra.Command, flags *selectionFlagValues) catalog.Selection {
	sel := catalog.Selection{
		MarsTypes:  flags.marsTypes,
		EarthTypes: flags.earthTypes,
		Qualities:  flags.qualities,
	}
	if cmd.Flags().Changed("min-magnitude") {
		v := flags.minMagnitude
		sel.MinMagnitude = &v
	}
	if cmd.Flags().Changed("max-magnitude") {
		v := flags.maxMagnitude
		sel.MaxMagnitude = &v
	}
	return sel
}

// hasSelection reports whether any filter criterion was provided.
func hasSelection(sel catalog.Selection) bool {
	return len(sel.MarsTypes) > 0 || len(sel.EarthTypes) > 0 ||
		len(sel.Qualities) > 0 || sel.MinMagnitude != nil || sel.MaxMagnitude != nil
}
