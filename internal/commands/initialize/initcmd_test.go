package initialize

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/eclean/internal/config"
	"github.com/indaco/eclean/internal/core"
	"github.com/indaco/eclean/internal/printer"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := printer.Out
	t.Cleanup(func() { printer.Out = orig })
	printer.Out = &buf
	return &buf
}

func TestGenerateConfigWithComments(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{".eclean.yaml", "plugins-dir: plugins"},
		{".eclean.toml", "plugins-dir = "},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			data, err := GenerateConfigWithComments(config.Default(), tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			s := string(data)
			if !strings.HasPrefix(s, "# eclean configuration file") {
				t.Error("expected header comment")
			}
			if !strings.Contains(s, tt.want) {
				t.Errorf("expected %q in:\n%s", tt.want, s)
			}
		})
	}
}

func TestRunInitCmd_WritesLoadableConfig(t *testing.T) {
	for _, name := range []string{".eclean.yaml", ".eclean.toml"} {
		t.Run(name, func(t *testing.T) {
			out := captureOut(t)
			path := filepath.Join(t.TempDir(), name)

			if err := runInitCmd(path, false); err != nil {
				t.Fatalf("runInitCmd: %v", err)
			}
			if !strings.Contains(out.String(), "Created") {
				t.Errorf("expected success message, got %q", out.String())
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if info.Mode().Perm() != config.ConfigFilePerm {
				t.Errorf("perm = %v, want %v", info.Mode().Perm(), config.ConfigFilePerm)
			}

			cfg, err := config.LoadFile(path)
			if err != nil {
				t.Fatalf("generated config does not load: %v", err)
			}
			if *cfg != *config.Default() {
				t.Errorf("loaded %+v, want defaults", cfg)
			}
		})
	}
}

func TestRunInitCmd_ExistingFile(t *testing.T) {
	captureOut(t)
	path := filepath.Join(t.TempDir(), ".eclean.yaml")
	if err := os.WriteFile(path, []byte("format: json\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := runInitCmd(path, false)
	if !core.IsUsageError(err) {
		t.Fatalf("expected usage error, got %v", err)
	}

	if err := runInitCmd(path, true); err != nil {
		t.Fatalf("force overwrite failed: %v", err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want text after overwrite", cfg.Format)
	}
}
