package core

import (
	"errors"
	"fmt"
)

// Kind classifies the failures eclean can surface. The set is closed:
// every error produced by the scan and relocation packages reports one of these.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors outside the closed set.
	KindUnknown Kind = iota

	// KindInvalidVersionFormat means a numeric version field failed to parse.
	KindInvalidVersionFormat

	// KindUnreadableEntryName means a plugins directory entry has no usable name.
	KindUnreadableEntryName

	// KindUnparsablePluginVersion means an entry matched the version pattern
	// but its version expression could not be parsed.
	KindUnparsablePluginVersion

	// KindMissingPluginsDirectory means the plugins subdirectory does not exist.
	KindMissingPluginsDirectory

	// KindRelocationIOFailure means copying or deleting an entry failed.
	KindRelocationIOFailure
)

// String returns the kind name used in logs and reports.
func (k Kind) String() string {
	switch k {
	case KindInvalidVersionFormat:
		return "InvalidVersionFormat"
	case KindUnreadableEntryName:
		return "UnreadableEntryName"
	case KindUnparsablePluginVersion:
		return "UnparsablePluginVersion"
	case KindMissingPluginsDirectory:
		return "MissingPluginsDirectory"
	case KindRelocationIOFailure:
		return "RelocationIOFailure"
	default:
		return "Unknown"
	}
}

// KindedError is implemented by every error type in the closed set.
type KindedError interface {
	error
	Kind() Kind
}

// KindOf returns the kind of the outermost KindedError in err's chain.
func KindOf(err error) Kind {
	var ke KindedError
	if errors.As(err, &ke) {
		return ke.Kind()
	}
	return KindUnknown
}

// UsageError reports invalid command line input. It is outside the closed
// kind set and maps to its own exit code.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// NewUsageError formats a UsageError.
func NewUsageError(format string, args ...any) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// IsUsageError reports whether err's chain contains a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
