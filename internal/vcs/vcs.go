// Package vcs queries version control for changed and staged files.
package vcs

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrUnsupportedClient is returned for a client kind other than git.
var ErrUnsupportedClient = errors.New("unsupported VCS client kind")

// Client lists files known to version control.
// Returned paths are relative to the repository root and use forward slashes.
type Client interface {
	// ChangedFiles returns files changed between since and the working tree.
	ChangedFiles(ctx context.Context, since string) ([]string, error)
	// StagedFiles returns files staged for the next commit.
	StagedFiles(ctx context.Context) ([]string, error)
}

// ClientKind names a VCS integration.
type ClientKind string

// Supported client kinds.
const (
	ClientGit ClientKind = "git"
)

// IgnoreFile returns the name of the ignore file of the client kind.
func (k ClientKind) IgnoreFile() string {
	if k == ClientGit {
		return ".gitignore"
	}
	return ""
}

// New returns a client of the given kind rooted at dir.
func New(kind ClientKind, dir string) (Client, error) {
	switch kind {
	case ClientGit, "":
		return NewGit(dir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedClient, kind)
	}
}

// Git runs the git executable.
// Git is safe for concurrent use.
type Git struct {
	dir string
}

// NewGit creates a git client for the repository containing dir.
func NewGit(dir string) *Git {
	return &Git{dir: dir}
}

// ChangedFiles implements Client.
func (g *Git) ChangedFiles(ctx context.Context, since string) ([]string, error) {
	if since == "" {
		return nil, errors.New("a base reference is required to list changed files")
	}
	return g.run(ctx, "diff", "--name-only", "--relative", "--diff-filter=d", since)
}

// StagedFiles implements Client.
func (g *Git) StagedFiles(ctx context.Context) ([]string, error) {
	return g.run(ctx, "diff", "--name-only", "--relative", "--diff-filter=d", "--staged")
}

func (g *Git) run(ctx context.Context, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return parseNameOnly(stdout.Bytes()), nil
}

// parseNameOnly splits `git diff --name-only` output into paths.
func parseNameOnly(out []byte) []string {
	var files []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			files = append(files, line)
		}
	}
	return files
}

// Static is a Client returning fixed file lists.
type Static struct {
	Changed []string
	Staged  []string
}

// ChangedFiles implements Client.
func (s Static) ChangedFiles(context.Context, string) ([]string, error) {
	return s.Changed, nil
}

// StagedFiles implements Client.
func (s Static) StagedFiles(context.Context) ([]string, error) {
	return s.Staged, nil
}
