package report

import (
	"github.com/indaco/eclean/internal/cleanup"
	"github.com/indaco/eclean/internal/discovery"
)

// ScanDocument is the machine-readable form of a scan.
type ScanDocument struct {
	PluginsDir     string          `json:"plugins_dir" yaml:"plugins_dir" toml:"plugins_dir"`
	DuplicateCount int             `json:"duplicate_count" yaml:"duplicate_count" toml:"duplicate_count"`
	DiscardCount   int             `json:"discard_count" yaml:"discard_count" toml:"discard_count"`
	Groups         []GroupDocument `json:"groups" yaml:"groups" toml:"groups"`
}

// GroupDocument describes one duplicated plugin.
type GroupDocument struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Keep    string   `json:"keep" yaml:"keep" toml:"keep"`
	Discard []string `json:"discard" yaml:"discard" toml:"discard"`
}

// RelocationDocument is the machine-readable form of a relocation summary.
type RelocationDocument struct {
	Relocated []MovedDocument `json:"relocated" yaml:"relocated" toml:"relocated"`
	Plugins   int             `json:"plugins" yaml:"plugins" toml:"plugins"`
	Files     int             `json:"files" yaml:"files" toml:"files"`
}

// relocationTOML nests a RelocationDocument under [relocation] so it can
// follow a scan document in the same TOML stream.
type relocationTOML struct {
	Relocation RelocationDocument `toml:"relocation"`
}

// MovedDocument describes one relocated entry.
type MovedDocument struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Version string `json:"version" yaml:"version" toml:"version"`
	Files   int    `json:"files" yaml:"files" toml:"files"`
}

// NewScanDocument builds the document for a scan result.
func NewScanDocument(res *discovery.Result) ScanDocument {
	plan := cleanup.NewPlan(res.Duplicates())
	doc := ScanDocument{
		PluginsDir:     res.PluginsDir,
		DuplicateCount: len(plan.Decisions),
		DiscardCount:   plan.DiscardCount,
		Groups:         make([]GroupDocument, 0, len(plan.Decisions)),
	}
	for _, d := range plan.Decisions {
		g := GroupDocument{
			Name:    d.Name,
			Keep:    d.Keep.Version.String(),
			Discard: make([]string, 0, len(d.Discard)),
		}
		for _, e := range d.Discard {
			g.Discard = append(g.Discard, e.Version.String())
		}
		doc.Groups = append(doc.Groups, g)
	}
	return doc
}

// NewRelocationDocument builds the document for a relocation summary.
func NewRelocationDocument(sum *cleanup.Summary) RelocationDocument {
	doc := RelocationDocument{
		Relocated: make([]MovedDocument, 0, len(sum.Relocated)),
		Plugins:   sum.Plugins(),
		Files:     sum.Files,
	}
	for _, m := range sum.Relocated {
		doc.Relocated = append(doc.Relocated, MovedDocument{
			Name:    m.Entry.Name,
			Version: m.Entry.Version.String(),
			Files:   m.Files,
		})
	}
	return doc
}
