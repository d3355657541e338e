package version

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// smallVersion draws versions from a narrow range so that ties are common.
func smallVersion() *rapid.Generator[Version] {
	return rapid.Custom(func(t *rapid.T) Version {
		major := rapid.IntRange(0, 3).Draw(t, "major")
		minor := rapid.IntRange(0, 3).Draw(t, "minor")
		patch := rapid.IntRange(0, 3).Draw(t, "patch")
		if rapid.Bool().Draw(t, "hasBuild") {
			build := rapid.SampledFrom([]string{"", "a", "b", "v1", "v10", "a.b"}).Draw(t, "build")
			return NewWithBuild(major, minor, patch, build)
		}
		return New(major, minor, patch)
	})
}

func TestProperty_RoundTripThreeFields(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		major := rapid.IntRange(0, 1<<30).Draw(t, "major")
		minor := rapid.IntRange(0, 1<<30).Draw(t, "minor")
		patch := rapid.IntRange(0, 1<<30).Draw(t, "patch")
		s := fmt.Sprintf("%d.%d.%d", major, minor, patch)

		v, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if v.HasBuild() {
			t.Fatalf("Parse(%q) unexpectedly has a build", s)
		}
		if got := v.String(); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	})
}

func TestProperty_RoundTripWithBuild(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		major := rapid.IntRange(0, 9999).Draw(t, "major")
		minor := rapid.IntRange(0, 9999).Draw(t, "minor")
		patch := rapid.IntRange(0, 9999).Draw(t, "patch")
		build := rapid.StringMatching(`[A-Za-z0-9_.\-]{0,24}`).Draw(t, "build")
		s := fmt.Sprintf("%d.%d.%d.%s", major, minor, patch, build)

		v, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got, _ := v.Build(); got != build {
			t.Fatalf("Parse(%q).Build() = %q, want %q", s, got, build)
		}
		if got := v.String(); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	})
}

func TestProperty_CompareIsTotalOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := smallVersion().Draw(t, "a")
		b := smallVersion().Draw(t, "b")
		c := smallVersion().Draw(t, "c")

		if a.Compare(a) != 0 {
			t.Fatalf("not reflexive: %s", a)
		}
		if a.Compare(b) != -b.Compare(a) {
			t.Fatalf("not antisymmetric: %s vs %s", a, b)
		}
		if a.Compare(b) <= 0 && b.Compare(c) <= 0 && a.Compare(c) > 0 {
			t.Fatalf("not transitive: %s <= %s <= %s but %s > %s", a, b, c, a, c)
		}
	})
}

func TestProperty_PatchNeverAffectsOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := smallVersion().Draw(t, "v")
		patch := rapid.IntRange(0, 1000).Draw(t, "otherPatch")

		var other Version
		if build, ok := v.Build(); ok {
			other = NewWithBuild(v.Major(), v.Minor(), patch, build)
		} else {
			other = New(v.Major(), v.Minor(), patch)
		}
		if v.Compare(other) != 0 {
			t.Fatalf("%s and %s differ only in patch but Compare = %d", v, other, v.Compare(other))
		}
	})
}
