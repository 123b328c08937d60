package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/biome/pkg/lint"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the Biome version and the size of the rule catalog.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Biome v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "JavaScript and TypeScript linter with %d rules (%d implemented)\n",
				lint.RuleCount(), len(lint.ImplementedRules()))
		},
	}
}
