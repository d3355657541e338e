// Package report renders scan and relocation results in the supported
// output formats.
package report

import "slices"

// Output format names.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{FormatText, FormatTable, FormatJSON, FormatYAML, FormatTOML}

// IsValidFormat reports whether name is a known output format.
func IsValidFormat(name string) bool {
	return slices.Contains(ValidFormats, name)
}

// IsStructured reports whether format produces a machine-readable document.
func IsStructured(format string) bool {
	switch format {
	case FormatJSON, FormatYAML, FormatTOML:
		return true
	default:
		return false
	}
}
