package core

import (
	"context"
	"io/fs"
	"os"
)

// File permission constants shared across the codebase.
const (
	// PermOwnerRW is read/write for the owner only (config files).
	PermOwnerRW FileMode = 0o600

	// PermFile is the default permission for files written by eclean.
	PermFile FileMode = 0o644

	// PermDir is the default permission for directories created by eclean.
	PermDir FileMode = 0o755
)

// FileMode is an alias so callers do not need to import io/fs for permissions.
type FileMode = fs.FileMode

// FileSystem abstracts the read-only filesystem calls used while scanning
// a plugins directory.
type FileSystem interface {
	Stat(ctx context.Context, name string) (fs.FileInfo, error)
	ReadDir(ctx context.Context, name string) ([]fs.DirEntry, error)
}

// Marshaler abstracts serialization for report and config writers.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

// OSFileSystem implements FileSystem on top of the os package.
type OSFileSystem struct{}

// NewOSFileSystem returns the production FileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Verify OSFileSystem implements FileSystem.
var _ FileSystem = (*OSFileSystem)(nil)

// Stat follows symlinks, so a link to a directory reports as a directory.
func (o *OSFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(name)
}

// ReadDir returns the direct children of name sorted by filename.
func (o *OSFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadDir(name)
}
