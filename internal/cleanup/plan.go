// Package cleanup applies the retention policy to duplicate plugin groups
// and drives the relocation of every discarded entry into a backup directory.
package cleanup

import (
	"github.com/indaco/eclean/internal/plugin"
	"github.com/indaco/eclean/internal/registry"
)

// Decision is the keep/discard split for one duplicate group.
type Decision struct {
	Name    string
	Keep    plugin.Entry
	Discard []plugin.Entry
}

// Plan lists the decisions for every duplicate group.
type Plan struct {
	Decisions []Decision

	// DiscardCount is the total number of entries to relocate.
	DiscardCount int
}

// NewPlan keeps the newest entry of each group and discards the rest in
// ascending version order. Groups with fewer than two entries are skipped.
func NewPlan(groups []registry.Group) *Plan {
	p := &Plan{Decisions: make([]Decision, 0, len(groups))}
	for _, g := range groups {
		if !g.IsDuplicate() {
			continue
		}
		d := Decision{
			Name:    g.Name,
			Keep:    g.Kept(),
			Discard: g.Discarded(),
		}
		p.Decisions = append(p.Decisions, d)
		p.DiscardCount += len(d.Discard)
	}
	return p
}

// IsEmpty returns true if nothing would be relocated.
func (p *Plan) IsEmpty() bool {
	return p.DiscardCount == 0
}
