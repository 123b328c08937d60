package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/biome/internal/cli/config"
	"github.com/leapstack-labs/biome/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command context and
// the given output mode.
func NewCommandContext(cmd *cobra.Command, mode output.OutputMode) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode, colorMode(cmd))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// colorMode reads the persistent --colors flag. The root command has
// already validated it.
func colorMode(cmd *cobra.Command) output.ColorMode {
	value, err := cmd.Flags().GetString("colors")
	if err != nil {
		return output.ColorAuto
	}
	mode, err := output.ParseColorMode(value)
	if err != nil {
		return output.ColorAuto
	}
	return mode
}
