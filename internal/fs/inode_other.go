//go:build !unix

package fs

import iofs "io/fs"

func inode(iofs.FileInfo) (dev, ino uint64, ok bool) {
	return 0, 0, false
}
