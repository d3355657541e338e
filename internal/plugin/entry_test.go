package plugin

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/indaco/eclean/internal/core"
	"github.com/indaco/eclean/internal/version"
)

/* ------------------------------------------------------------------------- */
/* SPLIT NAME                                                                */
/* ------------------------------------------------------------------------- */

func TestSplitName(t *testing.T) {
	tests := []struct {
		raw      string
		wantName string
		wantExpr string
		wantOK   bool
	}{
		{"javax.xml.rpc_1.1.0.v201209140446", "javax.xml.rpc", "1.1.0.v201209140446", true},
		{"org.eclipse.cdt.core.win32.x86_64_6.0.0.202008310002", "org.eclipse.cdt.core.win32.x86_64", "6.0.0.202008310002", true},
		{"a_1.2.3_4.5.6", "a", "1.2.3_4.5.6", true},
		{"plain_name", "plain_name", "", false},
		{"foo_1.2", "foo_1.2", "", false},
		{"_1.0.0", "", "1.0.0", true},
		{"", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, expr, ok := SplitName(tt.raw)
			if name != tt.wantName || expr != tt.wantExpr || ok != tt.wantOK {
				t.Errorf("SplitName(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.raw, name, expr, ok, tt.wantName, tt.wantExpr, tt.wantOK)
			}
		})
	}
}

/* ------------------------------------------------------------------------- */
/* PARSE ENTRY                                                               */
/* ------------------------------------------------------------------------- */

func TestParseEntry_RealFilesystem(t *testing.T) {
	tmp := t.TempDir()
	fsys := core.NewOSFileSystem()

	tests := []struct {
		name        string
		entry       string
		isDir       bool
		wantName    string
		wantVersion string
	}{
		{"directory with build", "javax.xml.rpc_1.1.0.v201209140446", true, "javax.xml.rpc", "1.1.0.v201209140446"},
		{"jar with dashed build", "org.apache.commons.codec_1.13.0.v20200108-0001.jar", false, "org.apache.commons.codec", "1.13.0.v20200108-0001"},
		{"jar with underscore in build", "org.w3c.dom.events_3.0.0.draft20060413_v201105210656.jar", false, "org.w3c.dom.events", "3.0.0.draft20060413_v201105210656"},
		{"underscore digits inside name", "org.eclipse.cdt.core.win32.x86_64_6.0.0.202008310002", true, "org.eclipse.cdt.core.win32.x86_64", "6.0.0.202008310002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmp, tt.entry)
			if tt.isDir {
				if err := os.Mkdir(path, 0o755); err != nil {
					t.Fatal(err)
				}
			} else {
				if err := os.WriteFile(path, []byte("jar"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			e, err := ParseEntry(context.Background(), fsys, path)
			if err != nil {
				t.Fatalf("ParseEntry(%q) unexpected error: %v", tt.entry, err)
			}
			if e.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", e.Name, tt.wantName)
			}
			if !e.Version.Equal(version.MustParse(tt.wantVersion)) || e.Version.String() != tt.wantVersion {
				t.Errorf("Version = %s, want %s", e.Version, tt.wantVersion)
			}
			if e.IsDir != tt.isDir {
				t.Errorf("IsDir = %v, want %v", e.IsDir, tt.isDir)
			}
			if e.Path != path {
				t.Errorf("Path = %q, want %q", e.Path, path)
			}
		})
	}
}

func TestParseEntry_Unversioned(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/eclipse/plugins/readme.txt")
	fsys.SetDir("/eclipse/plugins/org.example.tools")

	tests := []struct {
		path     string
		wantName string
	}{
		{"/eclipse/plugins/readme.txt", "readme"},
		{"/eclipse/plugins/org.example.tools", "org.example.tools"},
	}
	for _, tt := range tests {
		e, err := ParseEntry(context.Background(), fsys, tt.path)
		if err != nil {
			t.Fatalf("ParseEntry(%q) unexpected error: %v", tt.path, err)
		}
		if e.Name != tt.wantName {
			t.Errorf("Name = %q, want %q", e.Name, tt.wantName)
		}
		if e.Version.String() != "0.0.0" || e.Version.HasBuild() {
			t.Errorf("Version = %s, want default 0.0.0", e.Version)
		}
	}
}

// A file without an extension still loses its last dotted segment, so the
// version pattern can no longer match.
func TestParseEntry_FileStemStripsLastSegment(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/p/foo_1.2.3")
	fsys.SetDir("/p/bar_1.2.3")

	file, err := ParseEntry(context.Background(), fsys, "/p/foo_1.2.3")
	if err != nil {
		t.Fatal(err)
	}
	if file.Name != "foo_1.2" || file.Version.String() != "0.0.0" {
		t.Errorf("file entry = %s, want foo_1.2(0.0.0)", file)
	}

	dir, err := ParseEntry(context.Background(), fsys, "/p/bar_1.2.3")
	if err != nil {
		t.Fatal(err)
	}
	if dir.Name != "bar" || dir.Version.String() != "1.2.3" {
		t.Errorf("dir entry = %s, want bar(1.2.3)", dir)
	}
}

func TestParseEntry_HiddenFileKeepsName(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/p/.eclipseproduct")

	e, err := ParseEntry(context.Background(), fsys, "/p/.eclipseproduct")
	if err != nil {
		t.Fatal(err)
	}
	if e.Name != ".eclipseproduct" {
		t.Errorf("Name = %q, want %q", e.Name, ".eclipseproduct")
	}
}

func TestParseEntry_Errors(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetDir("/p")
	fsys.SetSpecial("/p/fifo_1.0.0")
	fsys.SetFile("/p/broken_1.2.3x.jar")
	fsys.SetDir("/p/locked_1.0.0")
	fsys.StatErr["/p/locked_1.0.0"] = os.ErrPermission

	tests := []struct {
		name     string
		path     string
		wantKind core.Kind
	}{
		{"vanished entry", "/p/gone_1.0.0", core.KindUnreadableEntryName},
		{"special file", "/p/fifo_1.0.0", core.KindUnreadableEntryName},
		{"stat failure", "/p/locked_1.0.0", core.KindUnreadableEntryName},
		{"bad patch", "/p/broken_1.2.3x.jar", core.KindUnparsablePluginVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntry(context.Background(), fsys, tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := core.KindOf(err); got != tt.wantKind {
				t.Errorf("KindOf = %v, want %v (err: %v)", got, tt.wantKind, err)
			}
		})
	}
}

func TestParseEntry_UnparsableWrapsInvalidFormat(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/p/broken_1.2.3x.jar")

	_, err := ParseEntry(context.Background(), fsys, "/p/broken_1.2.3x.jar")

	var uv *UnparsableVersionError
	if !errors.As(err, &uv) {
		t.Fatalf("expected *UnparsableVersionError, got %T", err)
	}
	if uv.VersionExpr != "1.2.3x" {
		t.Errorf("VersionExpr = %q, want %q", uv.VersionExpr, "1.2.3x")
	}
	if !errors.Is(err, version.ErrInvalidFormat) {
		t.Error("expected the error chain to contain version.ErrInvalidFormat")
	}
}

func TestParseEntry_CancelledContext(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/p/a_1.0.0.jar")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseEntry(ctx, fsys, "/p/a_1.0.0.jar")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEntry_String(t *testing.T) {
	e := Entry{Name: "javax.xml.rpc", Version: version.NewWithBuild(1, 1, 0, "v2012")}
	if got := e.String(); got != "javax.xml.rpc(1.1.0.v2012)" {
		t.Errorf("String() = %q", got)
	}
}
