package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNameOnly(t *testing.T) {
	out := []byte("src/a.js\n\nsrc/b.ts\r\n")
	assert.Equal(t, []string{"src/a.js", "src/b.ts"}, parseNameOnly(out))
	assert.Empty(t, parseNameOnly(nil))
}

func TestNew(t *testing.T) {
	c, err := New(ClientGit, ".")
	require.NoError(t, err)
	assert.IsType(t, &Git{}, c)

	_, err = New("svn", ".")
	assert.ErrorIs(t, err, ErrUnsupportedClient)
	assert.Equal(t, ".gitignore", ClientGit.IgnoreFile())
}

func TestGit_StagedAndChanged(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	git := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com")
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}

	git("init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("a"), 0o644))
	git("add", "a.js")
	git("commit", "-q", "-m", "init")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.js"), []byte("c"), 0o644))
	git("add", "c.js")

	client := NewGit(dir)
	staged, err := client.StagedFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"c.js"}, staged)

	changed, err := client.ChangedFiles(context.Background(), "HEAD")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.js", "c.js"}, changed)

	_, err = client.ChangedFiles(context.Background(), "")
	assert.Error(t, err)
}
