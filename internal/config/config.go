package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/eclean/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// Default file names, looked up in the working directory.
const (
	DefaultYAMLFile = ".eclean.yaml"
	DefaultTOMLFile = ".eclean.toml"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "ECLEAN_CONFIG"
)

// Config is the main configuration structure for eclean.
type Config struct {
	// PluginsDir is the subdirectory of the installation root that is scanned.
	PluginsDir string `yaml:"plugins-dir" toml:"plugins-dir"`

	// BackupSubdir is the subdirectory of the backup root that receives
	// relocated plugins.
	BackupSubdir string `yaml:"backup-subdir" toml:"backup-subdir"`

	// Format is the default output format (text, table, json, yaml, toml).
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`

	// Theme is the prompt theme name.
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty"`

	// Force skips the confirmation prompt.
	Force bool `yaml:"force,omitempty" toml:"force,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		PluginsDir:   "plugins",
		BackupSubdir: "plugins",
		Format:       "text",
		Theme:        "eclean",
	}
}

// applyDefaults fills empty fields from Default.
func (c *Config) applyDefaults() {
	def := Default()
	if c.PluginsDir == "" {
		c.PluginsDir = def.PluginsDir
	}
	if c.BackupSubdir == "" {
		c.BackupSubdir = def.BackupSubdir
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
}

// LoadConfigFn is a test seam for the config lookup used by the CLI.
var LoadConfigFn = loadConfig

// loadConfig resolves the config file: ECLEAN_CONFIG first, then .eclean.yaml,
// then .eclean.toml. It returns (nil, nil) when none exists.
func loadConfig() (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvConfigPath)
		}
		return LoadFile(cleanPath)
	}

	for _, name := range []string{DefaultYAMLFile, DefaultTOMLFile} {
		if _, err := os.Stat(name); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		return LoadFile(name)
	}

	return nil, nil
}

// LoadFile reads a YAML or TOML config file; the format is chosen by extension.
// Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// tomlMarshaler is the core.Marshaler for .toml config files.
type tomlMarshaler struct{}

func (m *tomlMarshaler) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

// MarshalerFor returns the marshaler matching the extension of path.
func MarshalerFor(path string) core.Marshaler {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return &tomlMarshaler{}
	}
	return &yamlMarshaler{}
}

// ConfigSaver writes configuration files.
type ConfigSaver struct {
	marshaler core.Marshaler
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// NewConfigSaver creates a ConfigSaver. A nil marshaler means YAML.
func NewConfigSaver(marshaler core.Marshaler) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	return &ConfigSaver{
		marshaler: marshaler,
		writeFile: os.WriteFile,
	}
}

// SaveTo writes cfg to configFile with owner-only permissions.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}
	if err := s.writeFile(configFile, data, ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}
	return nil
}

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW
