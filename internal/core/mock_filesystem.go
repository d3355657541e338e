package core

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Paths are slash-separated and absolute ("/eclipse/plugins/foo_1.0.0.jar").
type MockFileSystem struct {
	mu    sync.Mutex
	nodes map[string]fs.FileMode

	// StatErr injects a per-path Stat failure.
	StatErr map[string]error

	// ReadDirErr, when set, is returned by every ReadDir call.
	ReadDirErr error
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		nodes:   make(map[string]fs.FileMode),
		StatErr: make(map[string]error),
	}
}

// Verify MockFileSystem implements FileSystem.
var _ FileSystem = (*MockFileSystem)(nil)

// SetFile registers a regular file and all of its parent directories.
func (m *MockFileSystem) SetFile(name string) {
	m.set(name, PermFile)
}

// SetDir registers a directory and all of its parent directories.
func (m *MockFileSystem) SetDir(name string) {
	m.set(name, fs.ModeDir|PermDir)
}

// SetSpecial registers a node that is neither a regular file nor a directory.
func (m *MockFileSystem) SetSpecial(name string) {
	m.set(name, fs.ModeNamedPipe|PermFile)
}

func (m *MockFileSystem) set(name string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = path.Clean(name)
	m.nodes[name] = mode
	for dir := path.Dir(name); dir != "/" && dir != "."; dir = path.Dir(dir) {
		if _, ok := m.nodes[dir]; !ok {
			m.nodes[dir] = fs.ModeDir | PermDir
		}
	}
}

// Stat returns the registered node or fs.ErrNotExist.
func (m *MockFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	name = path.Clean(name)
	if err, ok := m.StatErr[name]; ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	mode, ok := m.nodes[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return mockFileInfo{name: path.Base(name), mode: mode}, nil
}

// ReadDir returns the direct children of name sorted by filename.
func (m *MockFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ReadDirErr != nil {
		return nil, m.ReadDirErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	name = path.Clean(name)
	if mode, ok := m.nodes[name]; !ok || !mode.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	prefix := name + "/"
	var entries []fs.DirEntry
	for p, mode := range m.nodes {
		rest, ok := strings.CutPrefix(p, prefix)
		if !ok || rest == "" || strings.Contains(rest, "/") {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(mockFileInfo{name: rest, mode: mode}))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

type mockFileInfo struct {
	name string
	mode fs.FileMode
}

func (fi mockFileInfo) Name() string       { return fi.name }
func (fi mockFileInfo) Size() int64        { return 0 }
func (fi mockFileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi mockFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi mockFileInfo) Sys() any           { return nil }
