package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/indaco/eclean/internal/console"
	"github.com/indaco/eclean/internal/core"
	"github.com/indaco/eclean/internal/plugin"
	"github.com/indaco/eclean/internal/registry"
)

// DefaultPluginsDir is the plugins subdirectory of an installation root.
const DefaultPluginsDir = "plugins"

// MissingPluginsDirError indicates the installation root has no plugins directory.
type MissingPluginsDirError struct {
	Root string
	Dir  string
	Err  error
}

func (e *MissingPluginsDirError) Error() string {
	return fmt.Sprintf("plugins directory %q not found in %q", e.Dir, e.Root)
}

func (e *MissingPluginsDirError) Unwrap() error {
	return e.Err
}

// Kind implements core.KindedError.
func (e *MissingPluginsDirError) Kind() core.Kind {
	return core.KindMissingPluginsDirectory
}

// Service provides plugin discovery functionality.
type Service struct {
	fs         core.FileSystem
	pluginsDir string
	logger     *log.Logger
}

// NewService creates a new discovery Service. An empty pluginsDir means
// DefaultPluginsDir; a nil logger discards output.
func NewService(fs core.FileSystem, pluginsDir string, logger *log.Logger) *Service {
	if pluginsDir == "" {
		pluginsDir = DefaultPluginsDir
	}
	if logger == nil {
		logger = console.Discard()
	}
	return &Service{
		fs:         fs,
		pluginsDir: pluginsDir,
		logger:     logger,
	}
}

// Discover lists <root>/<plugins dir>, parses every direct child and groups
// the entries. The first entry that fails to parse aborts the scan.
func (s *Service) Discover(ctx context.Context, root string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(root, s.pluginsDir)
	info, err := s.fs.Stat(ctx, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingPluginsDirError{Root: root, Dir: s.pluginsDir, Err: err}
		}
		return nil, fmt.Errorf("failed to stat plugins directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, &MissingPluginsDirError{Root: root, Dir: s.pluginsDir}
	}

	children, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list plugins directory %q: %w", dir, err)
	}

	entries := make([]plugin.Entry, 0, len(children))
	for _, child := range children {
		entry, err := plugin.ParseEntry(ctx, s.fs, filepath.Join(dir, child.Name()))
		if err != nil {
			return nil, err
		}
		s.logger.Debug(">> entry", "name", entry.Name, "version", entry.Version.String(), "path", entry.Path)
		entries = append(entries, entry)
	}

	reg := registry.Build(entries)
	result := &Result{
		Mode:       NoDuplicates,
		Root:       root,
		PluginsDir: dir,
		Entries:    entries,
		Registry:   reg,
	}
	if len(reg.Duplicates()) > 0 {
		result.Mode = DuplicatesFound
	}

	s.logger.Debug("scan complete", "entries", len(entries), "groups", reg.Len(), "mode", result.Mode)
	return result, nil
}
