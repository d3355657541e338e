package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/indaco/eclean/internal/core"
)

// Version is a plugin version of the form major.minor.patch[.build].
// It is immutable once constructed.
type Version struct {
	major    int
	minor    int
	patch    int
	build    string
	hasBuild bool
}

// ErrInvalidFormat matches every InvalidFormatError via errors.Is.
var ErrInvalidFormat = errors.New("invalid version format")

// InvalidFormatError reports a numeric field that is not a non-negative integer.
type InvalidFormatError struct {
	Input string // the whole version expression
	Field string // "major", "minor" or "patch"
	Token string // the offending token
	Err   error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid version format %q: %s %q is not a non-negative integer", e.Input, e.Field, e.Token)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// Kind implements core.KindedError.
func (e *InvalidFormatError) Kind() core.Kind {
	return core.KindInvalidVersionFormat
}

var fieldNames = [3]string{"major", "minor", "patch"}

// New returns a version without a build suffix.
func New(major, minor, patch int) Version {
	return Version{major: major, minor: minor, patch: patch}
}

// NewWithBuild returns a version with the given build suffix. An empty build
// is still a present build and sorts after an absent one.
func NewWithBuild(major, minor, patch int, build string) Version {
	return Version{major: major, minor: minor, patch: patch, build: build, hasBuild: true}
}

// Parse parses a dotted version expression.
//
// The first three dot-separated tokens are major, minor and patch. Everything
// after the third dot is the build suffix, verbatim and including any further
// dots ("3.0.0.draft20060413_v201105210656", "1.0.0.a.b" -> build "a.b").
// Missing numeric tokens stay 0 ("1.2" -> 1.2.0). The input is not trimmed.
func Parse(s string) (Version, error) {
	var v Version
	for i, tok := range strings.SplitN(s, ".", 4) {
		if i == 3 {
			v.build = tok
			v.hasBuild = true
			break
		}
		n, err := strconv.ParseUint(tok, 10, strconv.IntSize-1)
		if err != nil {
			return Version{}, &InvalidFormatError{Input: s, Field: fieldNames[i], Token: tok, Err: err}
		}
		switch i {
		case 0:
			v.major = int(n)
		case 1:
			v.minor = int(n)
		case 2:
			v.patch = int(n)
		}
	}
	return v, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) Major() int { return v.major }
func (v Version) Minor() int { return v.minor }
func (v Version) Patch() int { return v.patch }

// Build returns the build suffix and whether one is present.
func (v Version) Build() (string, bool) {
	return v.build, v.hasBuild
}

// HasBuild reports whether a build suffix is present.
func (v Version) HasBuild() bool {
	return v.hasBuild
}

// String returns "major.minor.patch" or "major.minor.patch.build".
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(16 + len(v.build))
	sb.WriteString(strconv.Itoa(v.major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.patch))
	if v.hasBuild {
		sb.WriteByte('.')
		sb.WriteString(v.build)
	}
	return sb.String()
}

// Compare returns -1, 0 or +1.
//
// Ordering is major, then minor, then build (absent before present, then
// byte-wise). Patch is NOT compared: 1.0.0 and 1.0.7 are equal. Which plugin
// is kept during cleanup depends on this exact rule, so it must not be
// turned into a field-wise comparison.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.major, other.major); c != 0 {
		return c
	}
	if c := compareInt(v.minor, other.minor); c != 0 {
		return c
	}
	switch {
	case !v.hasBuild && !other.hasBuild:
		return 0
	case !v.hasBuild:
		return -1
	case !other.hasBuild:
		return 1
	default:
		return strings.Compare(v.build, other.build)
	}
}

// Equal reports whether Compare returns 0. Fields may still differ.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
