package discovery

import (
	"github.com/indaco/eclean/internal/plugin"
	"github.com/indaco/eclean/internal/registry"
)

// DetectionMode indicates whether the scan found duplicated plugins.
type DetectionMode int

const (
	// NoDuplicates indicates every plugin name appears once.
	NoDuplicates DetectionMode = iota

	// DuplicatesFound indicates at least one name appears two or more times.
	DuplicatesFound
)

// String returns a human-readable representation of the detection mode.
func (m DetectionMode) String() string {
	switch m {
	case NoDuplicates:
		return "NoDuplicates"
	case DuplicatesFound:
		return "DuplicatesFound"
	default:
		return "Unknown"
	}
}

// Result represents the complete scan result for one installation root.
type Result struct {
	// Mode indicates whether duplicates were detected.
	Mode DetectionMode

	// Root is the installation root that was scanned.
	Root string

	// PluginsDir is the full path of the scanned plugins directory.
	PluginsDir string

	// Entries holds every parsed entry in directory listing order.
	Entries []plugin.Entry

	// Registry groups Entries by plugin name.
	Registry *registry.Registry
}

// HasDuplicates returns true if any plugin is installed more than once.
func (r *Result) HasDuplicates() bool {
	return r.Mode == DuplicatesFound
}

// Duplicates returns the duplicate groups in first-seen order.
func (r *Result) Duplicates() []registry.Group {
	if r.Registry == nil {
		return nil
	}
	return r.Registry.Duplicates()
}

// DiscardCount returns how many entries would be relocated.
func (r *Result) DiscardCount() int {
	n := 0
	for _, g := range r.Duplicates() {
		n += len(g.Discarded())
	}
	return n
}
