package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CatalogPathArgs validates an optional catalog document argument. The
// document can also come from marsquake.yaml, so zero arguments is fine.
func CatalogPathArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("accepts at most 1 arg(s), received %d", len(args))
	}
	return nil
}
