package plugin

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/indaco/eclean/internal/core"
	"github.com/indaco/eclean/internal/version"
)

// versionPattern locates the start of the version in an entry name. Only the
// three numeric fields are anchored; everything after the underscore belongs
// to the version expression.
var versionPattern = regexp.MustCompile(`_\d+\.\d+\.\d+`)

// Entry is one installed plugin artifact.
type Entry struct {
	Path    string
	Name    string
	Version version.Version
	IsDir   bool
}

// String renders the entry as name(version).
func (e Entry) String() string {
	return e.Name + "(" + e.Version.String() + ")"
}

// SplitName splits a raw entry name at the first "_<major>.<minor>.<patch>".
// When no such pattern exists ok is false and name is raw unchanged.
func SplitName(raw string) (name, versionExpr string, ok bool) {
	loc := versionPattern.FindStringIndex(raw)
	if loc == nil {
		return raw, "", false
	}
	return raw[:loc[0]], raw[loc[0]+1:], true
}

// ParseEntry builds an Entry from the filesystem entry at path.
//
// Regular files contribute their stem (last extension stripped), directories
// their full name. Names without a version pattern get version 0.0.0.
func ParseEntry(ctx context.Context, fsys core.FileSystem, path string) (Entry, error) {
	info, err := fsys.Stat(ctx, path)
	if err != nil {
		return Entry{}, &UnreadableNameError{Path: path, Reason: "stat failed", Err: err}
	}

	var raw string
	switch {
	case info.Mode().IsRegular():
		raw = fileStem(filepath.Base(path))
	case info.IsDir():
		raw = filepath.Base(path)
	default:
		return Entry{}, &UnreadableNameError{Path: path, Reason: "not a regular file or directory"}
	}

	if raw == "" || raw == "." || raw == string(filepath.Separator) {
		return Entry{}, &UnreadableNameError{Path: path, Reason: "empty name"}
	}
	if !utf8.ValidString(raw) {
		return Entry{}, &UnreadableNameError{Path: path, Reason: "name is not valid UTF-8"}
	}

	entry := Entry{Path: path, IsDir: info.IsDir()}

	name, expr, ok := SplitName(raw)
	if !ok {
		entry.Name = name
		entry.Version = version.New(0, 0, 0)
		return entry, nil
	}

	v, err := version.Parse(expr)
	if err != nil {
		return Entry{}, &UnparsableVersionError{Path: path, VersionExpr: expr, Err: err}
	}
	entry.Name = name
	entry.Version = v
	return entry, nil
}

// fileStem strips the last extension. A name whose only dot is the leading
// one (".project") is returned unchanged.
func fileStem(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		return name
	}
	return stem
}
