package plugin

import (
	"fmt"

	"github.com/indaco/eclean/internal/core"
)

// UnreadableNameError indicates an entry that is neither a regular file nor a
// directory, vanished during the scan, or has a name that cannot be used.
type UnreadableNameError struct {
	Path   string
	Reason string
	Err    error
}

func (e *UnreadableNameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read plugin name from %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot read plugin name from %q: %s", e.Path, e.Reason)
}

func (e *UnreadableNameError) Unwrap() error {
	return e.Err
}

// Kind implements core.KindedError.
func (e *UnreadableNameError) Kind() core.Kind {
	return core.KindUnreadableEntryName
}

// UnparsableVersionError indicates an entry whose name matched the version
// pattern but whose version expression failed to parse.
type UnparsableVersionError struct {
	Path        string
	VersionExpr string
	Err         error
}

func (e *UnparsableVersionError) Error() string {
	return fmt.Sprintf("error parsing plugin %q: %v", e.Path, e.Err)
}

func (e *UnparsableVersionError) Unwrap() error {
	return e.Err
}

// Kind implements core.KindedError.
func (e *UnparsableVersionError) Kind() core.Kind {
	return core.KindUnparsablePluginVersion
}
