package relocate

import (
	"fmt"

	"github.com/indaco/eclean/internal/core"
)

// Op names the relocation step that failed.
type Op string

const (
	OpCreateDest Op = "create backup directory"
	OpCopy       Op = "copy"
	OpRemove     Op = "remove original"
	OpValidate   Op = "validate paths"
)

// RelocationError wraps any failure while moving one plugin entry.
// When Op is OpRemove the copy already exists at Destination.
type RelocationError struct {
	Source      string
	Destination string
	Op          Op
	Files       int // files copied before the failure
	Err         error
}

func (e *RelocationError) Error() string {
	return fmt.Sprintf("failed to relocate %q to %q (%s): %v", e.Source, e.Destination, e.Op, e.Err)
}

func (e *RelocationError) Unwrap() error {
	return e.Err
}

// Kind implements core.KindedError.
func (e *RelocationError) Kind() core.Kind {
	return core.KindRelocationIOFailure
}

// FilePermissionError indicates insufficient permissions for file operations.
type FilePermissionError struct {
	Src string
	Dst string
	Op  string // operation: "open", "create", "copy", "symlink"
	Err error
}

func (e *FilePermissionError) Error() string {
	return fmt.Sprintf("permission denied: cannot %s file from %q to %q: %v", e.Op, e.Src, e.Dst, e.Err)
}

func (e *FilePermissionError) Unwrap() error {
	return e.Err
}

// DiskFullError indicates no space left on device.
type DiskFullError struct {
	Path string
	Err  error
}

func (e *DiskFullError) Error() string {
	return fmt.Sprintf("no space left on device at %q: %v", e.Path, e.Err)
}

func (e *DiskFullError) Unwrap() error {
	return e.Err
}
