package fs

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const maxMemoryLinks = 40

var errTooManyLinks = errors.New("too many levels of symbolic links")

// Memory is an in-memory filesystem. Directories exist implicitly for every
// ancestor of a file. It is safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	nodes    map[string]*memNode
	readOnly bool
}

type memNode struct {
	data    []byte
	mode    iofs.FileMode
	target  string // symlink target, when mode has ModeSymlink
	modTime time.Time
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() *Memory {
	return &Memory{nodes: make(map[string]*memNode)}
}

// SetReadOnly makes every subsequent write fail with ErrReadOnly.
func (m *Memory) SetReadOnly(ro bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readOnly = ro
}

// AddFile creates or replaces a regular file.
func (m *Memory) AddFile(path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[clean(path)] = &memNode{data: []byte(content), mode: 0o644, modTime: time.Now()}
}

// AddDir creates an empty directory.
func (m *Memory) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[clean(path)] = &memNode{mode: iofs.ModeDir | 0o755, modTime: time.Now()}
}

// AddSymlink creates a symbolic link at path pointing to target.
func (m *Memory) AddSymlink(path, target string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[clean(path)] = &memNode{mode: iofs.ModeSymlink | 0o777, target: target, modTime: time.Now()}
}

// Content returns the content of a regular file, for assertions in tests.
func (m *Memory) Content(path string) (string, bool) {
	data, err := m.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Stat implements FileSystem.
func (m *Memory) Stat(path string) (iofs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resolved, err := m.resolve(clean(path))
	if err != nil {
		return nil, &iofs.PathError{Op: "stat", Path: path, Err: err}
	}
	info, err := m.info(resolved)
	if err != nil {
		return nil, &iofs.PathError{Op: "stat", Path: path, Err: err}
	}
	return info, nil
}

// Lstat implements FileSystem.
func (m *Memory) Lstat(path string) (iofs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	info, err := m.info(clean(path))
	if err != nil {
		return nil, &iofs.PathError{Op: "lstat", Path: path, Err: iofs.ErrNotExist}
	}
	return info, nil
}

// ReadFile implements FileSystem.
func (m *Memory) ReadFile(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resolved, err := m.resolve(clean(path))
	if err != nil {
		return nil, &iofs.PathError{Op: "open", Path: path, Err: err}
	}
	n, ok := m.nodes[resolved]
	if !ok {
		if m.isDir(resolved) {
			return nil, &iofs.PathError{Op: "read", Path: path, Err: errors.New("is a directory")}
		}
		return nil, &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
	}
	if n.mode.IsDir() {
		return nil, &iofs.PathError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}
	out := make([]byte, len(n.data))
	copy(out, n.data)
	return out, nil
}

// WriteFile implements FileSystem.
func (m *Memory) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readOnly {
		return &iofs.PathError{Op: "write", Path: path, Err: ErrReadOnly}
	}
	p := clean(path)
	if resolved, err := m.resolve(p); err == nil {
		p = resolved
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.nodes[p] = &memNode{data: buf, mode: perm.Perm(), modTime: time.Now()}
	return nil
}

// ReadDir implements FileSystem.
func (m *Memory) ReadDir(path string) ([]iofs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	dir, err := m.resolve(clean(path))
	if err != nil {
		return nil, &iofs.PathError{Op: "readdir", Path: path, Err: err}
	}
	if !m.isDir(dir) {
		return nil, &iofs.PathError{Op: "readdir", Path: path, Err: iofs.ErrNotExist}
	}

	prefix := dir + "/"
	if dir == "/" {
		prefix = "/"
	}
	children := make(map[string]iofs.DirEntry)
	for p := range m.nodes {
		rest, ok := strings.CutPrefix(p, prefix)
		if !ok || rest == "" {
			continue
		}
		name, _, _ := strings.Cut(rest, "/")
		if _, seen := children[name]; seen {
			continue
		}
		info, err := m.info(prefix + name)
		if err != nil {
			continue
		}
		children[name] = iofs.FileInfoToDirEntry(info)
	}

	entries := make([]iofs.DirEntry, 0, len(children))
	for _, e := range children {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Readlink implements FileSystem.
func (m *Memory) Readlink(path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[clean(path)]
	if !ok || n.mode&iofs.ModeSymlink == 0 {
		return "", &iofs.PathError{Op: "readlink", Path: path, Err: iofs.ErrInvalid}
	}
	return n.target, nil
}

// FileKey implements FileSystem.
func (m *Memory) FileKey(path string) (FileKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resolved, err := m.resolve(clean(path))
	if err != nil {
		return FileKey{}, &iofs.PathError{Op: "stat", Path: path, Err: err}
	}
	if _, err := m.info(resolved); err != nil {
		return FileKey{}, err
	}
	return FileKey{Path: resolved}, nil
}

// resolve follows symlinks in every component of p. Callers hold the lock.
func (m *Memory) resolve(p string) (string, error) {
	links := 0
	parts := strings.Split(strings.TrimPrefix(p, "/"), "/")
	cur := "/"
	for i := 0; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		next := filepath.ToSlash(filepath.Join(cur, parts[i]))
		n, ok := m.nodes[next]
		if ok && n.mode&iofs.ModeSymlink != 0 {
			links++
			if links > maxMemoryLinks {
				return "", errTooManyLinks
			}
			target := n.target
			if !strings.HasPrefix(target, "/") {
				target = filepath.ToSlash(filepath.Join(cur, target))
			}
			rest := append(strings.Split(strings.TrimPrefix(clean(target), "/"), "/"), parts[i+1:]...)
			parts, cur, i = rest, "/", -1
			continue
		}
		cur = next
	}
	return cur, nil
}

func (m *Memory) isDir(p string) bool {
	if p == "/" {
		return true
	}
	if n, ok := m.nodes[p]; ok {
		return n.mode.IsDir()
	}
	prefix := p + "/"
	for q := range m.nodes {
		if strings.HasPrefix(q, prefix) {
			return true
		}
	}
	return false
}

func (m *Memory) info(p string) (iofs.FileInfo, error) {
	if n, ok := m.nodes[p]; ok {
		return &memInfo{name: filepath.Base(p), size: int64(len(n.data)), mode: n.mode, modTime: n.modTime}, nil
	}
	if m.isDir(p) {
		return &memInfo{name: filepath.Base(p), mode: iofs.ModeDir | 0o755}, nil
	}
	return nil, iofs.ErrNotExist
}

func clean(p string) string {
	p = filepath.ToSlash(filepath.Clean(p))
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

type memInfo struct {
	name    string
	size    int64
	mode    iofs.FileMode
	modTime time.Time
}

func (i *memInfo) Name() string        { return i.name }
func (i *memInfo) Size() int64         { return i.size }
func (i *memInfo) Mode() iofs.FileMode { return i.mode }
func (i *memInfo) ModTime() time.Time  { return i.modTime }
func (i *memInfo) IsDir() bool         { return i.mode.IsDir() }
func (i *memInfo) Sys() any            { return nil }
