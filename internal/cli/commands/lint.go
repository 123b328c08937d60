package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/biome/internal/cli/config"
	"github.com/leapstack-labs/biome/internal/cli/output"
	"github.com/leapstack-labs/biome/internal/driver"
	fsx "github.com/leapstack-labs/biome/internal/fs"
	"github.com/leapstack-labs/biome/internal/outcome"
	"github.com/leapstack-labs/biome/internal/runner"
	"github.com/leapstack-labs/biome/internal/scanner"
	"github.com/leapstack-labs/biome/internal/vcs"
	"github.com/leapstack-labs/biome/internal/watch"
	"github.com/leapstack-labs/biome/pkg/lint"
	_ "github.com/leapstack-labs/biome/pkg/lint/rules" // register rules
)

// Flag validation errors.
var (
	ErrUnsafeWithoutWrite    = errors.New("the --unsafe flag requires --write or --fix")
	ErrInvalidMaxDiagnostics = errors.New("--max-diagnostics must be a positive integer")
)

// LintOptions holds options for the lint command.
// Flags that map to configuration keys (--only, --skip, --files-*, --vcs-*)
// are read through the config loader.
type LintOptions struct {
	Paths               []string
	Write               bool
	Fix                 bool
	Unsafe              bool
	MaxDiagnostics      int
	ErrorOnWarnings     bool
	NoErrorsOnUnmatched bool
	StdinFilePath       string
	Changed             bool
	Staged              bool
	Since               string
	Reporter            string // text, json
	DiagnosticLevel     string // info, warn, error
	Watch               bool
	Threads             int
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Run the linter on JavaScript and TypeScript files",
		Long: `Analyze JavaScript and TypeScript files and report rule violations.

Rules are configured in biome.json (or biome.jsonc), searched upward from
the working directory. Directories are linted recursively; files ignored by
the VCS ignore file are skipped when vcs.useIgnoreFile is set.

With --write, safe fixes are applied and the files rewritten. Unsafe fixes
additionally need --unsafe.`,
		Example: `  # Lint the current directory
  biome lint

  # Lint specific paths and apply safe fixes
  biome lint --write src/ index.js

  # Run a single rule, even if the linter is disabled in biome.json
  biome lint --only=suspicious/noDebugger src/

  # Lint source from stdin and print the fixed content
  cat app.js | biome lint --write --stdin-file-path=app.js

  # Lint files changed since main
  biome lint --vcs-enabled --changed --since=main`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.Write, "write", false, "Apply safe fixes and write the files")
	f.BoolVar(&opts.Fix, "fix", false, "Alias for --write")
	f.BoolVar(&opts.Unsafe, "unsafe", false, "Also apply unsafe fixes (requires --write)")
	f.StringSlice("only", nil, "Run only this group or rule, e.g. style or style/noVar (repeatable)")
	f.StringSlice("skip", nil, "Skip this group or rule, e.g. style or style/noVar (repeatable)")
	f.IntVar(&opts.MaxDiagnostics, "max-diagnostics", driver.DefaultMaxDiagnostics, "Maximum number of error diagnostics shown per file")
	f.Int64("files-max-size", scanner.DefaultMaxSize, "Maximum size in bytes of a linted file")
	f.Bool("files-ignore-unknown", false, "Do not report files without a language handler")
	f.BoolVar(&opts.ErrorOnWarnings, "error-on-warnings", false, "Fail when warnings are emitted")
	f.BoolVar(&opts.NoErrorsOnUnmatched, "no-errors-on-unmatched", false, "Do not fail when no file was processed")
	f.StringVar(&opts.StdinFilePath, "stdin-file-path", "", "Lint stdin as if it were this file and print the result")
	f.Bool("vcs-enabled", false, "Enable the VCS integration")
	f.String("vcs-client-kind", string(vcs.ClientGit), "Kind of VCS client")
	f.Bool("vcs-use-ignore-file", false, "Skip files matched by the VCS ignore file")
	f.String("vcs-root", "", "Root of the repository")
	f.BoolVar(&opts.Changed, "changed", false, "Lint only files changed since --since or vcs.defaultBranch")
	f.BoolVar(&opts.Staged, "staged", false, "Lint only staged files")
	f.StringVar(&opts.Since, "since", "", "Reference the changes are compared with")
	f.StringVar(&opts.Reporter, "reporter", string(output.ModeText), "Reporter: text, json")
	f.StringVar(&opts.DiagnosticLevel, "diagnostic-level", "info", "Lowest severity shown: info, warn, error")
	f.BoolVar(&opts.Watch, "watch", false, "Lint again whenever files change")
	f.IntVar(&opts.Threads, "threads", 0, "Number of files linted in parallel (default: number of CPUs)")
	f.Bool("unstable", false, "Enable the presets of unstable rule groups")
	_ = f.MarkHidden("unstable")

	_ = cmd.RegisterFlagCompletionFunc("only", completeSelectors)
	_ = cmd.RegisterFlagCompletionFunc("skip", completeSelectors)
	_ = cmd.RegisterFlagCompletionFunc("reporter", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("diagnostic-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (o *LintOptions) fixing() bool {
	return o.Write || o.Fix
}

// validate checks flag combinations before any file is read.
func (o *LintOptions) validate() error {
	if o.Unsafe && !o.fixing() {
		return ErrUnsafeWithoutWrite
	}
	if o.MaxDiagnostics <= 0 {
		return ErrInvalidMaxDiagnostics
	}
	if o.Changed && o.Staged {
		return scanner.ErrChangedAndStaged
	}
	if o.Reporter != string(output.ModeText) && o.Reporter != string(output.ModeJSON) {
		return fmt.Errorf("invalid value %q for --reporter: expected text or json", o.Reporter)
	}
	if _, err := parseDiagnosticLevel(o.DiagnosticLevel); err != nil {
		return err
	}
	return nil
}

func parseDiagnosticLevel(s string) (lint.Severity, error) {
	switch s {
	case "info":
		return lint.SeverityInfo, nil
	case "warn", "warning":
		return lint.SeverityWarning, nil
	case "error":
		return lint.SeverityError, nil
	default:
		return 0, fmt.Errorf("invalid value %q for --diagnostic-level: expected info, warn or error", s)
	}
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	cmdCtx := NewCommandContext(cmd, output.Mode(opts.Reporter))

	l, err := newLintRun(cmdCtx, opts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if opts.StdinFilePath != "" {
		rep, content, err := l.stdin(ctx, cmd.InOrStdin())
		if err != nil {
			return err
		}
		if err := l.render(rep); err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(content); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return rep.Err()
	}

	rep, err := l.run(ctx, opts.Paths)
	if err != nil {
		return err
	}
	if err := l.render(rep); err != nil {
		return err
	}
	if opts.Watch {
		return l.watch(ctx)
	}
	return rep.Err()
}

// lintRun holds everything one lint invocation shares between runs.
type lintRun struct {
	opts     *LintOptions
	cfg      *config.Config
	logger   *slog.Logger
	renderer *output.Renderer
	fs       fsx.FileSystem
	driver   *driver.Driver
	workDir  string
	level    lint.Severity
}

func newLintRun(cmdCtx *CommandContext, opts *LintOptions) (*lintRun, error) {
	cfg := cmdCtx.Cfg

	only, err := parseSelectors("--only", cfg.Linter.Only)
	if err != nil {
		return nil, err
	}
	skip, err := parseSelectors("--skip", cfg.Linter.Skip)
	if err != nil {
		return nil, err
	}
	resolved := lint.Resolve(cfg.Rules, lint.ResolveOptions{
		LinterEnabled: cfg.LinterEnabled(),
		Unstable:      cfg.Unstable,
		Only:          only,
		Skip:          skip,
	})
	cmdCtx.Logger.Debug("resolved rules",
		slog.Int("enabled", resolved.Enabled().Len()),
		slog.String("config", cfg.FileUsed))

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	var cache *driver.Cache
	if opts.Watch {
		cache, err = driver.NewCache(driver.DefaultCacheSize)
		if err != nil {
			return nil, err
		}
	}

	level, _ := parseDiagnosticLevel(opts.DiagnosticLevel)
	fs := fsx.NewOS()
	return &lintRun{
		opts:     opts,
		cfg:      cfg,
		logger:   cmdCtx.Logger,
		renderer: cmdCtx.Renderer,
		fs:       fs,
		workDir:  workDir,
		level:    level,
		driver: driver.New(driver.Options{
			FS:             fs,
			Analyzer:       lint.NewAnalyzer(resolved),
			Fix:            opts.fixing(),
			Unsafe:         opts.Unsafe,
			MaxDiagnostics: opts.MaxDiagnostics,
			Cache:          cache,
			Logger:         cmdCtx.Logger,
		}),
	}, nil
}

func parseSelectors(flag string, values []string) ([]lint.Selector, error) {
	var sels []lint.Selector
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part == "" {
				continue
			}
			sel, err := lint.ParseSelector(part)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q for %s: %w", part, flag, err)
			}
			sels = append(sels, sel)
		}
	}
	return sels, nil
}

func (l *lintRun) newReducer() *outcome.Reducer {
	reducer := outcome.NewReducer(outcome.Options{
		ErrorOnWarnings:     l.opts.ErrorOnWarnings,
		NoErrorsOnUnmatched: l.opts.NoErrorsOnUnmatched,
	})
	reducer.AddDiagnostics(l.cfg.Diagnostics...)
	return reducer
}

func (l *lintRun) scanOptions(paths []string) scanner.Options {
	cfg := l.cfg
	vcsRoot := cfg.VCS.Root
	switch {
	case vcsRoot != "" && !filepath.IsAbs(vcsRoot):
		vcsRoot = filepath.Join(cfg.Dir, vcsRoot)
	case vcsRoot == "" && cfg.FileUsed != "":
		vcsRoot = cfg.Dir
	}
	maxSize := cfg.MaxSize(scanner.DefaultMaxSize)
	return scanner.Options{
		FS:             l.fs,
		Root:           l.workDir,
		Paths:          paths,
		MaxSize:        &maxSize,
		IgnoreUnknown:  cfg.IgnoreUnknown(),
		Includes:       cfg.Files.Includes,
		LinterIncludes: cfg.Linter.Includes,
		VCS: scanner.VCSOptions{
			Enabled:       cfg.VCSEnabled(),
			ClientKind:    vcs.ClientKind(cfg.VCS.ClientKind),
			UseIgnoreFile: cfg.UseIgnoreFile(),
			Root:          vcsRoot,
			DefaultBranch: cfg.VCS.DefaultBranch,
		},
		Changed:   l.opts.Changed,
		Staged:    l.opts.Staged,
		Since:     l.opts.Since,
		WriteBack: l.opts.fixing(),
		Logger:    l.logger,
	}
}

// run scans paths and lints every accepted file.
func (l *lintRun) run(ctx context.Context, paths []string) (*outcome.Report, error) {
	scanOpts := l.scanOptions(paths)
	if err := scanOpts.Validate(); err != nil {
		return nil, err
	}

	reducer := l.newReducer()
	scanned, err := scanner.Scan(ctx, scanOpts)
	if err != nil {
		return nil, err
	}
	reducer.AddDiagnostics(scanned.Diagnostics...)

	if err := runner.Run(ctx, scanned.Items, l.driver, reducer, runner.Options{
		Jobs:   l.opts.Threads,
		Logger: l.logger,
	}); err != nil {
		return nil, err
	}
	return reducer.Finish(), nil
}

// stdin lints the content of r under the virtual --stdin-file-path and
// returns the content to print: fixed when --write applied fixes,
// unchanged otherwise.
func (l *lintRun) stdin(ctx context.Context, r io.Reader) (*outcome.Report, []byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	reducer := l.newReducer()
	item, ok := scanner.NewStdinItem(l.opts.StdinFilePath, content)
	if !ok {
		if !l.cfg.IgnoreUnknown() {
			reducer.AddDiagnostics(lint.Diagnostic{
				Category: lint.CategoryFilesMissingHandle,
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("Biome could not determine the language for the file extension %q.", filepath.Ext(item.Path)),
				Path:     item.Path,
			})
		}
		return reducer.Finish(), content, nil
	}

	res := l.driver.Lint(ctx, item)
	reducer.Add(res)
	if res.Output != nil {
		content = res.Output
	}
	return reducer.Finish(), content, nil
}

func (l *lintRun) render(rep *outcome.Report) error {
	return l.renderer.Report(rep, output.ReportOptions{Level: l.level})
}

// watch re-lints changed files until the context is cancelled.
func (l *lintRun) watch(ctx context.Context) error {
	dirs := l.watchDirs()
	l.logger.Info("watching for changes", slog.Any("dirs", dirs))

	err := watch.Watch(ctx, watch.Options{Dirs: dirs, Logger: l.logger}, func(ctx context.Context, paths []string) {
		rep, err := l.run(ctx, paths)
		if err != nil {
			if ctx.Err() == nil {
				l.logger.Error("lint failed", slog.Any("error", err))
			}
			return
		}
		if err := l.render(rep); err != nil {
			l.logger.Error("failed to render report", slog.Any("error", err))
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watchDirs returns the directories holding the linted paths.
func (l *lintRun) watchDirs() []string {
	if len(l.opts.Paths) == 0 {
		return []string{l.workDir}
	}
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range l.opts.Paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(l.workDir, p)
		}
		if info, err := l.fs.Stat(p); err != nil || !info.IsDir() {
			p = filepath.Dir(p)
		}
		if !seen[p] {
			seen[p] = true
			dirs = append(dirs, p)
		}
	}
	return dirs
}

// completeSelectors completes --only and --skip values from the rule catalog.
func completeSelectors(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, g := range lint.Groups() {
		if strings.HasPrefix(string(g), toComplete) {
			out = append(out, string(g))
		}
		for _, id := range lint.RulesIn(g) {
			if name := id.String(); strings.HasPrefix(name, toComplete) {
				out = append(out, name)
			}
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
