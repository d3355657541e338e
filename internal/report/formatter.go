package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"
	"github.com/indaco/eclean/internal/cleanup"
	"github.com/indaco/eclean/internal/discovery"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Formatter writes reports in one output format.
type Formatter struct {
	format string
	w      io.Writer
}

// NewFormatter creates a Formatter for format writing to w.
func NewFormatter(format string, w io.Writer) (*Formatter, error) {
	if !IsValidFormat(format) {
		return nil, fmt.Errorf("unknown output format %q (valid: %s)", format, strings.Join(ValidFormats, ", "))
	}
	return &Formatter{format: format, w: w}, nil
}

// Format returns the output format name.
func (f *Formatter) Format() string {
	return f.format
}

// Scan writes the duplicate groups found by a scan.
func (f *Formatter) Scan(res *discovery.Result) error {
	doc := NewScanDocument(res)

	var out string
	var err error
	switch f.format {
	case FormatTable:
		out = scanTable(doc)
	case FormatJSON:
		out, err = scanJSON(doc)
	case FormatYAML:
		out, err = marshalYAML(doc)
	case FormatTOML:
		out, err = marshalTOML(doc)
	default:
		out = ScanText(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to render scan report: %w", err)
	}
	_, err = io.WriteString(f.w, out)
	return err
}

// Relocation writes the outcome of a relocation run.
func (f *Formatter) Relocation(sum *cleanup.Summary) error {
	doc := NewRelocationDocument(sum)

	var out string
	var err error
	switch f.format {
	case FormatTable:
		out = relocationTable(doc)
	case FormatJSON:
		out, err = relocationJSON(doc)
	case FormatYAML:
		out, err = marshalYAML(doc)
		out = "---\n" + out
	case FormatTOML:
		out, err = marshalTOML(relocationTOML{Relocation: doc})
	default:
		out = RelocationText(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to render relocation report: %w", err)
	}
	_, err = io.WriteString(f.w, out)
	return err
}

// ScanText renders the scan in the classic line layout.
func ScanText(doc ScanDocument) string {
	if doc.DuplicateCount == 0 {
		return "There are no duplicated plugins.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d duplicated plugins found:\n", doc.DuplicateCount)
	for i, g := range doc.Groups {
		fmt.Fprintf(&b, "  %d\t%s [KEEP: %s; DISCARD: %s]\n", i+1, g.Name, g.Keep, strings.Join(g.Discard, ", "))
	}
	return b.String()
}

// RelocationText renders the one-line relocation summary.
func RelocationText(doc RelocationDocument) string {
	return fmt.Sprintf("%d plugins have been cleaned up successfully! (%d files moved)\n", doc.Plugins, doc.Files)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func scanTable(doc ScanDocument) string {
	if doc.DuplicateCount == 0 {
		return ScanText(doc)
	}
	t := newTable("ID", "NAME", "KEEP", "DISCARD")
	for i, g := range doc.Groups {
		t.Row(strconv.Itoa(i+1), g.Name, g.Keep, strings.Join(g.Discard, ", "))
	}
	return t.String() + "\n"
}

func relocationTable(doc RelocationDocument) string {
	t := newTable("NAME", "VERSION", "FILES")
	for _, m := range doc.Relocated {
		t.Row(m.Name, m.Version, strconv.Itoa(m.Files))
	}
	return t.String() + "\n" + RelocationText(doc)
}

// scanJSON builds the document key by key so the field order is stable.
func scanJSON(doc ScanDocument) (string, error) {
	out := "{}"
	var err error
	if out, err = sjson.Set(out, "plugins_dir", doc.PluginsDir); err != nil {
		return "", err
	}
	if out, err = sjson.Set(out, "duplicate_count", doc.DuplicateCount); err != nil {
		return "", err
	}
	if out, err = sjson.Set(out, "discard_count", doc.DiscardCount); err != nil {
		return "", err
	}
	if out, err = sjson.SetRaw(out, "groups", "[]"); err != nil {
		return "", err
	}
	for _, g := range doc.Groups {
		obj := "{}"
		if obj, err = sjson.Set(obj, "name", g.Name); err != nil {
			return "", err
		}
		if obj, err = sjson.Set(obj, "keep", g.Keep); err != nil {
			return "", err
		}
		if obj, err = sjson.Set(obj, "discard", g.Discard); err != nil {
			return "", err
		}
		if out, err = sjson.SetRaw(out, "groups.-1", obj); err != nil {
			return "", err
		}
	}
	return string(pretty.Pretty([]byte(out))), nil
}

func relocationJSON(doc RelocationDocument) (string, error) {
	out := "{}"
	var err error
	if out, err = sjson.SetRaw(out, "relocated", "[]"); err != nil {
		return "", err
	}
	for _, m := range doc.Relocated {
		obj := "{}"
		if obj, err = sjson.Set(obj, "name", m.Name); err != nil {
			return "", err
		}
		if obj, err = sjson.Set(obj, "version", m.Version); err != nil {
			return "", err
		}
		if obj, err = sjson.Set(obj, "files", m.Files); err != nil {
			return "", err
		}
		if out, err = sjson.SetRaw(out, "relocated.-1", obj); err != nil {
			return "", err
		}
	}
	if out, err = sjson.Set(out, "plugins", doc.Plugins); err != nil {
		return "", err
	}
	if out, err = sjson.Set(out, "files", doc.Files); err != nil {
		return "", err
	}
	return string(pretty.Pretty([]byte(out))), nil
}

func marshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func marshalTOML(v any) (string, error) {
	data, err := toml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
