// Package scanner decides which files are linted.
//
// Scan walks the requested paths and runs every candidate file through the
// gates in order: include patterns, the VCS ignore file, the changed/staged
// set, the size limit and the language handler check. Rejections that the
// user should hear about become diagnostics; the rest are skipped silently.
package scanner

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/moby/patternmatcher"

	fsx "github.com/leapstack-labs/biome/internal/fs"
	"github.com/leapstack-labs/biome/internal/vcs"
	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/parser"
)

// DefaultMaxSize is the default file size limit in bytes.
const DefaultMaxSize int64 = 1024 * 1024

// maxLinks bounds a chain of symbolic links.
const maxLinks = 40

// Validation errors, reported before any file is processed.
var (
	ErrChangedAndStaged = errors.New("the --changed and --staged flags can't be used together")
	ErrChangedNoBase    = errors.New("--changed requires --since=<ref> or vcs.defaultBranch in the configuration")
	ErrVCSDisabled      = errors.New("--changed and --staged require the VCS integration; set vcs.enabled to true")
	ErrNegativeMaxSize  = errors.New("the maximum file size must not be negative")
)

// VCSOptions configures the VCS integration.
type VCSOptions struct {
	Enabled       bool
	ClientKind    vcs.ClientKind
	UseIgnoreFile bool
	// Root is the repository root; empty means the scan root.
	Root          string
	DefaultBranch string
	// Client overrides the client built from ClientKind.
	Client vcs.Client
}

// Options configures a scan.
type Options struct {
	FS fsx.FileSystem
	// Root is the absolute working directory. Relative paths resolve against it.
	Root  string
	Paths []string

	// MaxSize is the size limit in bytes; nil means DefaultMaxSize.
	// Zero rejects every non-empty file.
	MaxSize        *int64
	IgnoreUnknown  bool
	Includes       []string
	LinterIncludes []string

	VCS     VCSOptions
	Changed bool
	Staged  bool
	Since   string

	// WriteBack marks accepted items as writable by the driver.
	WriteBack bool
	Logger    *slog.Logger
}

// Validate checks option combinations that must fail the invocation.
func (o *Options) Validate() error {
	if o.MaxSize != nil && *o.MaxSize < 0 {
		return ErrNegativeMaxSize
	}
	if o.Changed && o.Staged {
		return ErrChangedAndStaged
	}
	if (o.Changed || o.Staged) && !o.VCS.Enabled {
		return ErrVCSDisabled
	}
	if o.Changed && o.Since == "" && o.VCS.DefaultBranch == "" {
		return ErrChangedNoBase
	}
	return nil
}

// Result is the outcome of a scan.
type Result struct {
	Items       []WorkItem
	Diagnostics []lint.Diagnostic
	// Unmatched is set when explicit paths were given but no file was accepted.
	Unmatched bool
}

type walker struct {
	opts    *Options
	logger  *slog.Logger
	vcsRoot string
	maxSize int64
	ignore  *patternmatcher.PatternMatcher
	changed map[string]bool
	seen    map[fsx.FileKey]bool
	res     *Result
}

// Scan walks opts.Paths and returns the accepted work items.
func Scan(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.FS == nil {
		opts.FS = fsx.NewOS()
	}
	maxSize := DefaultMaxSize
	if opts.MaxSize != nil {
		maxSize = *opts.MaxSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w := &walker{
		opts:    &opts,
		logger:  logger,
		vcsRoot: opts.Root,
		maxSize: maxSize,
		seen:    make(map[fsx.FileKey]bool),
		res:     &Result{},
	}
	if opts.VCS.Root != "" {
		w.vcsRoot = w.full(opts.VCS.Root)
	}

	if err := w.loadIgnore(); err != nil {
		return nil, err
	}
	if err := w.loadChanged(ctx); err != nil {
		return nil, err
	}

	paths := opts.Paths
	if len(paths) == 0 {
		paths = w.defaultPaths()
	}
	explicit := len(opts.Paths) > 0
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		full := w.full(p)
		w.visit(ctx, w.display(p, full), full, explicit, map[fsx.FileKey]string{})
	}

	sort.SliceStable(w.res.Items, func(i, j int) bool { return w.res.Items[i].Path < w.res.Items[j].Path })
	if len(w.res.Items) == 0 && len(opts.Paths) > 0 {
		w.res.Unmatched = true
		w.report(lint.CategoryFilesNoMatch, "", "No files were processed in the specified paths.")
	}
	logger.Debug("scan finished",
		slog.Int("accepted", len(w.res.Items)),
		slog.Int("diagnostics", len(w.res.Diagnostics)))
	return w.res, nil
}

// defaultPaths lints the changed set when one is active, else the root.
func (w *walker) defaultPaths() []string {
	if w.changed == nil {
		return []string{"."}
	}
	paths := make([]string, 0, len(w.changed))
	for p := range w.changed {
		full := filepath.Join(w.vcsRoot, filepath.FromSlash(p))
		if rel, err := filepath.Rel(w.opts.Root, full); err == nil {
			paths = append(paths, rel)
		}
	}
	sort.Strings(paths)
	return paths
}

func (w *walker) loadIgnore() error {
	vo := w.opts.VCS
	if !vo.Enabled || !vo.UseIgnoreFile {
		return nil
	}
	kind := vo.ClientKind
	if kind == "" {
		kind = vcs.ClientGit
	}
	name := kind.IgnoreFile()
	if name == "" {
		return fmt.Errorf("%w: %q", vcs.ErrUnsupportedClient, kind)
	}
	content, err := w.opts.FS.ReadFile(filepath.Join(w.vcsRoot, name))
	if errors.Is(err, iofs.ErrNotExist) {
		w.logger.Debug("no ignore file", slog.String("dir", w.vcsRoot))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read ignore file: %w", err)
	}
	pm, err := compileIgnore(content)
	if err != nil {
		return fmt.Errorf("invalid ignore file %s: %w", name, err)
	}
	w.ignore = pm
	return nil
}

func (w *walker) loadChanged(ctx context.Context) error {
	if !w.opts.Changed && !w.opts.Staged {
		return nil
	}
	client := w.opts.VCS.Client
	if client == nil {
		c, err := vcs.New(w.opts.VCS.ClientKind, w.vcsRoot)
		if err != nil {
			return err
		}
		client = c
	}

	var files []string
	var err error
	if w.opts.Staged {
		files, err = client.StagedFiles(ctx)
	} else {
		since := w.opts.Since
		if since == "" {
			since = w.opts.VCS.DefaultBranch
		}
		files, err = client.ChangedFiles(ctx, since)
	}
	if err != nil {
		return fmt.Errorf("failed to list files from VCS: %w", err)
	}

	w.changed = make(map[string]bool, len(files))
	for _, f := range files {
		w.changed[path.Clean(filepath.ToSlash(f))] = true
	}
	return nil
}

func (w *walker) full(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(w.opts.Root, p)
}

// display returns the root-relative slash path of a user path, or the path
// itself when it lies outside the root.
func (w *walker) display(p, full string) string {
	if !filepath.IsAbs(p) {
		return path.Clean(filepath.ToSlash(p))
	}
	rel, err := filepath.Rel(w.opts.Root, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(full)
	}
	return filepath.ToSlash(rel)
}

// visit processes one path. ancestors maps the directories on the current
// descent to their display paths, for cycle detection.
func (w *walker) visit(ctx context.Context, display, full string, explicit bool, ancestors map[fsx.FileKey]string) {
	if ctx.Err() != nil {
		return
	}

	info, err := w.opts.FS.Lstat(full)
	if err != nil {
		if explicit {
			w.report(lint.CategoryFilesIO, display, fmt.Sprintf("The path %s doesn't exist or is not accessible.", display))
		}
		return
	}

	if info.Mode()&iofs.ModeSymlink != 0 {
		target, ok := w.followLink(display, full)
		if !ok {
			return
		}
		full = target
		if info, err = w.opts.FS.Stat(full); err != nil {
			w.report(lint.CategoryFilesIO, display, fmt.Sprintf("The symbolic link %s points to a path that doesn't exist.", display))
			return
		}
	}

	rel := w.relative(display)
	if w.isIgnored(full) {
		w.logger.Debug("ignored by VCS ignore file", slog.String("path", display))
		return
	}

	if info.IsDir() {
		w.visitDir(ctx, display, full, explicit, ancestors)
		return
	}

	if !matchIncludes(w.opts.Includes, rel) || !matchIncludes(w.opts.LinterIncludes, rel) {
		w.logger.Debug("excluded by includes", slog.String("path", display))
		return
	}
	if w.changed != nil && !w.changed[w.vcsRelative(full)] {
		return
	}

	lang, ok := parser.LanguageForPath(full)
	if !ok {
		if explicit && !w.opts.IgnoreUnknown {
			w.report(lint.CategoryFilesMissingHandle, display,
				fmt.Sprintf("Biome could not determine the language for the file extension %q.", filepath.Ext(full)))
		}
		return
	}
	if info.Size() > w.maxSize {
		w.report(lint.CategoryFilesTooLarge, display,
			fmt.Sprintf("Size of %s is %d bytes which exceeds configured maximum of %d bytes for this project.", display, info.Size(), w.maxSize))
		return
	}

	key, err := w.opts.FS.FileKey(full)
	if err == nil {
		if w.seen[key] {
			return
		}
		w.seen[key] = true
	}

	w.res.Items = append(w.res.Items, WorkItem{
		Path:      display,
		FullPath:  full,
		Language:  lang,
		Source:    SourceDisk,
		WriteBack: w.opts.WriteBack,
		Explicit:  explicit,
	})
}

func (w *walker) visitDir(ctx context.Context, display, full string, explicit bool, ancestors map[fsx.FileKey]string) {
	if !explicit {
		switch filepath.Base(full) {
		case ".git", "node_modules":
			return
		}
	}

	key, err := w.opts.FS.FileKey(full)
	if err == nil {
		if first, loop := ancestors[key]; loop {
			w.report(lint.CategoryFilesDeeplyNested, display,
				fmt.Sprintf("Symbolic link cycle detected: %s points back to %s.", display, first))
			return
		}
		ancestors[key] = display
		defer delete(ancestors, key)
	}

	entries, err := w.opts.FS.ReadDir(full)
	if err != nil {
		w.report(lint.CategoryFilesIO, display, fmt.Sprintf("Unable to read the directory %s: %v", display, err))
		return
	}
	for _, e := range entries {
		childDisplay := path.Join(display, e.Name())
		w.visit(ctx, childDisplay, filepath.Join(full, e.Name()), false, ancestors)
	}
}

// followLink resolves a chain of symbolic links starting at full.
func (w *walker) followLink(display, full string) (string, bool) {
	cur := full
	visited := map[string]bool{cur: true}
	for i := 0; i < maxLinks; i++ {
		target, err := w.opts.FS.Readlink(cur)
		if err != nil {
			w.report(lint.CategoryFilesIO, display, fmt.Sprintf("Unable to read the symbolic link %s: %v", display, err))
			return "", false
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(cur), target)
		}
		if visited[target] {
			w.report(lint.CategoryFilesDeeplyNested, display,
				fmt.Sprintf("Symbolic link cycle detected: %s points back to %s.", cur, target))
			return "", false
		}
		visited[target] = true

		info, err := w.opts.FS.Lstat(target)
		if err != nil {
			w.report(lint.CategoryFilesIO, display,
				fmt.Sprintf("The symbolic link %s points to a path that doesn't exist.", display))
			return "", false
		}
		if info.Mode()&iofs.ModeSymlink == 0 {
			return target, true
		}
		cur = target
	}
	w.report(lint.CategoryFilesDeeplyNested, display,
		fmt.Sprintf("The symbolic link %s is nested too deeply: more than %d links from %s to %s.", display, maxLinks, full, cur))
	return "", false
}

func (w *walker) relative(display string) string {
	return strings.TrimPrefix(display, "./")
}

func (w *walker) vcsRelative(full string) string {
	rel, err := filepath.Rel(w.vcsRoot, full)
	if err != nil {
		return ""
	}
	return filepath.ToSlash(rel)
}

func (w *walker) isIgnored(full string) bool {
	if w.ignore == nil {
		return false
	}
	return ignored(w.ignore, w.vcsRelative(full))
}

func (w *walker) report(category, display, message string) {
	w.res.Diagnostics = append(w.res.Diagnostics, lint.Diagnostic{
		Category: category,
		Severity: lint.SeverityError,
		Message:  message,
		Path:     display,
	})
}
