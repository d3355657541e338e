// Package relocate moves plugin entries into a backup directory by recursive
// copy followed by recursive delete. A move is not atomic: a failure after the
// copy leaves both the copy and the original in place.
package relocate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/indaco/eclean/internal/core"
)

// errDestinationInsideSource guards against copying an entry into itself.
var errDestinationInsideSource = errors.New("backup destination is inside the plugin being moved")

// Relocator moves plugin entries into a destination root.
type Relocator struct {
	copier     *OSFileCopier
	mkdirAllFn func(path string, perm os.FileMode) error
	removeAll  func(path string) error
	absFn      func(path string) (string, error)
}

// NewRelocator creates a Relocator backed by the OS filesystem.
func NewRelocator() *Relocator {
	return &Relocator{
		copier:     NewOSFileCopier(),
		mkdirAllFn: os.MkdirAll,
		removeAll:  os.RemoveAll,
		absFn:      filepath.Abs,
	}
}

// Relocate copies src into destRoot/<base name of src>, creating destRoot if
// needed, then removes src. It returns the number of files copied.
//
// Every failure is a *RelocationError.
func (r *Relocator) Relocate(ctx context.Context, src, destRoot string) (int, error) {
	dst := filepath.Join(destRoot, filepath.Base(src))

	if err := ctx.Err(); err != nil {
		return 0, &RelocationError{Source: src, Destination: dst, Op: OpValidate, Err: err}
	}
	if err := r.checkPaths(src, dst); err != nil {
		return 0, &RelocationError{Source: src, Destination: dst, Op: OpValidate, Err: err}
	}

	if err := r.mkdirAllFn(destRoot, core.PermDir); err != nil {
		return 0, &RelocationError{Source: src, Destination: dst, Op: OpCreateDest, Err: err}
	}

	count, err := r.copier.CopyTree(src, dst)
	if err != nil {
		return count, &RelocationError{Source: src, Destination: dst, Op: OpCopy, Files: count, Err: err}
	}

	if err := r.removeAll(src); err != nil {
		return count, &RelocationError{Source: src, Destination: dst, Op: OpRemove, Files: count, Err: err}
	}

	return count, nil
}

// checkPaths rejects a destination equal to or nested inside the source.
func (r *Relocator) checkPaths(src, dst string) error {
	absSrc, err := r.absFn(src)
	if err != nil {
		return err
	}
	absDst, err := r.absFn(dst)
	if err != nil {
		return err
	}
	if absDst == absSrc || strings.HasPrefix(absDst, absSrc+string(filepath.Separator)) {
		return errDestinationInsideSource
	}
	return nil
}
