// Package fs abstracts the filesystem used by the scanner and the lint driver.
//
// Two implementations are provided: OS, backed by the real filesystem with
// atomic writes, and Memory, an in-memory tree used by tests.
package fs

import (
	"errors"
	iofs "io/fs"
)

// ErrReadOnly is returned by writes to a read-only filesystem.
var ErrReadOnly = errors.New("filesystem is read-only")

// FileSystem is the set of filesystem operations the linter needs.
// Paths use the host separator.
type FileSystem interface {
	Stat(path string) (iofs.FileInfo, error)
	Lstat(path string) (iofs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	ReadDir(path string) ([]iofs.DirEntry, error)
	Readlink(path string) (string, error)
	// FileKey identifies the file at path, following symlinks.
	// Two paths with equal keys denote the same file.
	FileKey(path string) (FileKey, error)
}

// FileKey identifies a file independently of the path used to reach it.
type FileKey struct {
	Dev  uint64
	Ino  uint64
	Path string
}
