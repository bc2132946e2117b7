package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// sslModes contains valid PostgreSQL SSL modes for shell completion.
var sslModes = []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}

// marsEventTypes contains the catalog's Mars event type codes for shell
// completion of the --type flag.
var marsEventTypes = []string{
	"BB", "WB", "LF", "VF", "HF", "24", "SF",
	"DL-BB", "DL-WB", "DL-LF", "DL-VF", "DL-HF", "DL-24", "DL-SF",
}

// qualityGrades contains the location quality grades for shell
// completion of the --quality flag.
var qualityGrades = []string{"A", "B", "C", "D"}

// completeSSLModes provides shell completion for SSL mode flag values.
func completeSSLModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return prefixMatches(sslModes, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeMarsTypes provides shell completion for Mars event type flag values.
func completeMarsTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return prefixMatches(marsEventTypes, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeQualities provides shell completion for quality grade flag values.
func completeQualities(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return prefixMatches(qualityGrades, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func prefixMatches(candidates []string, toComplete string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, toComplete) {
			matches = append(matches, c)
		}
	}
	return matches
}
