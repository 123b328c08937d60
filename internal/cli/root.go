// Package cli provides the command-line interface for Biome.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/biome/internal/cli/commands"
	"github.com/leapstack-labs/biome/internal/cli/config"
	"github.com/leapstack-labs/biome/internal/cli/output"
	"github.com/leapstack-labs/biome/internal/outcome"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "biome",
		Short: "Biome - JavaScript and TypeScript linter",
		Long: `Biome analyzes JavaScript and TypeScript sources with a catalog of lint
rules grouped by concern, and can apply the fixes those rules suggest.

Configuration is read from biome.json or biome.jsonc, searched upward from
the working directory, or from the file given with --config-path.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help, completion and version commands
			switch cmd.Name() {
			case "help", "completion", "__complete", "__completeNoDesc", "version":
				return nil
			}
			return setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
JavaScript and TypeScript linter built with Go and tree-sitter
`)

	// Global persistent flags
	rootCmd.PersistentFlags().String("config-path", "", "Path to biome.json, or to the directory holding it")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug logs")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default: warn)")
	rootCmd.PersistentFlags().String("colors", "auto", "Colored output: auto, off, force")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("colors", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "off", "force"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewLintCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// setup loads the configuration and stores it, together with the logger,
// in the command context.
func setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	colors, _ := flags.GetString("colors")
	if _, err := output.ParseColorMode(colors); err != nil {
		return err
	}
	configPath, _ := flags.GetString("config-path")

	cfg, err := config.Load(config.LoadOptions{ConfigPath: configPath, Flags: flags})
	if err != nil {
		return err
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	if cfg.FileUsed != "" {
		logger.Debug("using configuration file", slog.String("path", cfg.FileUsed))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, config.LoggerKey(), logger)
	cmd.SetContext(config.WithConfig(ctx, cfg))
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// The reporter has already rendered the diagnostics behind a lint failure.
		if !errors.Is(err, outcome.ErrLintFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for Biome.

To load completions:

Bash:
  $ source <(biome completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ biome completion bash > /etc/bash_completion.d/biome
  # macOS:
  $ biome completion bash > $(brew --prefix)/etc/bash_completion.d/biome

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ biome completion zsh > "${fpath[1]}/_biome"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ biome completion fish | source

  # To load completions for each session, execute once:
  $ biome completion fish > ~/.config/fish/completions/biome.fish

PowerShell:
  PS> biome completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> biome completion powershell > biome.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
