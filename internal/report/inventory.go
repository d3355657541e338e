package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/indaco/eclean/internal/discovery"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// InventoryDocument lists every installed plugin, duplicated or not.
type InventoryDocument struct {
	PluginsDir string            `json:"plugins_dir" yaml:"plugins_dir" toml:"plugins_dir"`
	Entries    int               `json:"entries" yaml:"entries" toml:"entries"`
	Plugins    []InventoryPlugin `json:"plugins" yaml:"plugins" toml:"plugins"`
}

// InventoryPlugin is one plugin name with its installed versions in
// ascending order.
type InventoryPlugin struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Versions  []string `json:"versions" yaml:"versions" toml:"versions"`
	Duplicate bool     `json:"duplicate" yaml:"duplicate" toml:"duplicate"`
}

// NewInventoryDocument builds the inventory of a scan result.
func NewInventoryDocument(res *discovery.Result) InventoryDocument {
	doc := InventoryDocument{
		PluginsDir: res.PluginsDir,
		Entries:    len(res.Entries),
		Plugins:    make([]InventoryPlugin, 0),
	}
	if res.Registry == nil {
		return doc
	}
	for _, g := range res.Registry.Groups() {
		p := InventoryPlugin{
			Name:      g.Name,
			Versions:  make([]string, 0, len(g.Entries)),
			Duplicate: g.IsDuplicate(),
		}
		for _, e := range g.Entries {
			p.Versions = append(p.Versions, e.Version.String())
		}
		doc.Plugins = append(doc.Plugins, p)
	}
	return doc
}

// Inventory writes every plugin found by a scan.
func (f *Formatter) Inventory(res *discovery.Result) error {
	doc := NewInventoryDocument(res)

	var out string
	var err error
	switch f.format {
	case FormatTable:
		out = inventoryTable(doc)
	case FormatJSON:
		out, err = inventoryJSON(doc)
	case FormatYAML:
		out, err = marshalYAML(doc)
	case FormatTOML:
		out, err = marshalTOML(doc)
	default:
		out = InventoryText(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to render inventory: %w", err)
	}
	_, err = io.WriteString(f.w, out)
	return err
}

// InventoryText renders one line per plugin name.
func InventoryText(doc InventoryDocument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d plugins (%d entries) in %s:\n", len(doc.Plugins), doc.Entries, doc.PluginsDir)
	for _, p := range doc.Plugins {
		marker := ""
		if p.Duplicate {
			marker = " *"
		}
		fmt.Fprintf(&b, "  %s [%s]%s\n", p.Name, strings.Join(p.Versions, ", "), marker)
	}
	return b.String()
}

func inventoryTable(doc InventoryDocument) string {
	t := newTable("NAME", "VERSIONS", "DUPLICATE")
	for _, p := range doc.Plugins {
		t.Row(p.Name, strings.Join(p.Versions, ", "), strconv.FormatBool(p.Duplicate))
	}
	return t.String() + "\n"
}

func inventoryJSON(doc InventoryDocument) (string, error) {
	out := "{}"
	var err error
	if out, err = sjson.Set(out, "plugins_dir", doc.PluginsDir); err != nil {
		return "", err
	}
	if out, err = sjson.Set(out, "entries", doc.Entries); err != nil {
		return "", err
	}
	if out, err = sjson.SetRaw(out, "plugins", "[]"); err != nil {
		return "", err
	}
	for _, p := range doc.Plugins {
		obj := "{}"
		if obj, err = sjson.Set(obj, "name", p.Name); err != nil {
			return "", err
		}
		if obj, err = sjson.Set(obj, "versions", p.Versions); err != nil {
			return "", err
		}
		if obj, err = sjson.Set(obj, "duplicate", p.Duplicate); err != nil {
			return "", err
		}
		if out, err = sjson.SetRaw(out, "plugins.-1", obj); err != nil {
			return "", err
		}
	}
	return string(pretty.Pretty([]byte(out))), nil
}
