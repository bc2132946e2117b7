package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `
  _ __ ___   __ _ _ __ ___  __ _ _   _  __ _| | _____
 | '_ ` + "`" + ` _ \ / _` + "`" + ` | '__/ __|/ _` + "`" + ` | | | |/ _` + "`" + ` | |/ / _ \
 | | | | | | (_| | |  \__ \ (_| | |_| | (_| |   <  __/
 |_| |_| |_|\__,_|_|  |___/\__, |\__,_|\__,_|_|\_\___|
                              |_|`

var rootCmd = &cobra.Command{
	Use:   "marsquake",
	Short: "Mars seismic event catalog toolkit",
	Long: asciiLogo + `

marsquake ingests InSight Marsquake Service QuakeML catalogs and turns
them into a fully cross-referenced event catalog: origins, magnitudes,
picks, arrivals, and single-station location parameters, linked and
ready for filtering, reporting, and relational export.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Database connection failed
  12 - Catalog document could not be ingested
  13 - Catalog export failed
  14 - Catalog document not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for marsquake")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
