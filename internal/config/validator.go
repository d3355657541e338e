package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/indaco/eclean/internal/report"
	"github.com/indaco/eclean/internal/tui"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validated setting (e.g., "plugins-dir", "format").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator validates a loaded configuration.
type Validator struct {
	cfg         *Config
	validations []ValidationResult
}

// NewValidator creates a new configuration validator.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate() []ValidationResult {
	v.validations = make([]ValidationResult, 0)

	v.validateSubdir("plugins-dir", v.cfg.PluginsDir)
	v.validateSubdir("backup-subdir", v.cfg.BackupSubdir)

	if report.IsValidFormat(v.cfg.Format) {
		v.addValidation("format", true, fmt.Sprintf("output format %q", v.cfg.Format), false)
	} else {
		v.addValidation("format", false,
			fmt.Sprintf("unknown format %q (valid: %s)", v.cfg.Format, strings.Join(report.ValidFormats, ", ")), false)
	}

	if tui.IsValidTheme(v.cfg.Theme) {
		v.addValidation("theme", true, fmt.Sprintf("theme %q", v.cfg.Theme), false)
	} else {
		v.addValidation("theme", false,
			fmt.Sprintf("unknown theme %q (valid: %s)", v.cfg.Theme, strings.Join(tui.ValidThemes, ", ")), false)
	}

	if v.cfg.Force {
		v.addValidation("force", false, "force is enabled: duplicates are moved without confirmation", true)
	}

	return v.validations
}

// validateSubdir requires a relative path that stays inside its root.
func (v *Validator) validateSubdir(category, dir string) {
	switch {
	case dir == "":
		v.addValidation(category, false, "must not be empty", false)
	case filepath.IsAbs(dir):
		v.addValidation(category, false, fmt.Sprintf("%q must be relative to its root directory", dir), false)
	case strings.Contains(filepath.Clean(dir), ".."):
		v.addValidation(category, false, fmt.Sprintf("%q: path traversal not allowed", dir), false)
	default:
		v.addValidation(category, true, fmt.Sprintf("%q", dir), false)
	}
}

// addValidation adds a validation result to the list.
func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	for _, r := range results {
		if !r.Passed && !r.Warning {
			return true
		}
	}
	return false
}

// FirstError returns the first failed validation as an error, or nil.
func FirstError(results []ValidationResult) error {
	for _, r := range results {
		if !r.Passed && !r.Warning {
			return fmt.Errorf("invalid config: %s: %s", r.Category, r.Message)
		}
	}
	return nil
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}
