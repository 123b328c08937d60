package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/moby/sys/atomicwriter"
)

// OS is the host filesystem.
type OS struct{}

// NewOS returns the host filesystem.
func NewOS() *OS {
	return &OS{}
}

// Stat implements FileSystem.
func (OS) Stat(path string) (iofs.FileInfo, error) { return os.Stat(path) }

// Lstat implements FileSystem.
func (OS) Lstat(path string) (iofs.FileInfo, error) { return os.Lstat(path) }

// ReadFile implements FileSystem.
func (OS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// ReadDir implements FileSystem.
func (OS) ReadDir(path string) ([]iofs.DirEntry, error) { return os.ReadDir(path) }

// Readlink implements FileSystem.
func (OS) Readlink(path string) (string, error) { return os.Readlink(path) }

// WriteFile writes data to a temporary file next to path and renames it
// over path, so readers never observe a partially written file.
func (OS) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	if err := atomicwriter.WriteFile(path, data, perm); err != nil {
		if errors.Is(err, syscall.EROFS) {
			return &os.PathError{Op: "write", Path: path, Err: ErrReadOnly}
		}
		return err
	}
	return nil
}

// FileKey implements FileSystem.
func (OS) FileKey(path string) (FileKey, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileKey{}, err
	}
	if dev, ino, ok := inode(info); ok {
		return FileKey{Dev: dev, Ino: ino}, nil
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return FileKey{}, err
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return FileKey{}, err
	}
	return FileKey{Path: abs}, nil
}
