package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestEcleanTheme(t *testing.T) {
	theme := ecleanTheme()
	if theme == nil {
		t.Fatal("ecleanTheme() returned nil")
	}

	t.Run("focused base has rounded border", func(t *testing.T) {
		if theme.Focused.Base.GetBorderStyle() != lipgloss.RoundedBorder() {
			t.Error("Focused.Base should have rounded border")
		}
	})

	t.Run("buttons share padding", func(t *testing.T) {
		_, fRight, _, fLeft := theme.Focused.FocusedButton.GetPadding()
		_, bRight, _, bLeft := theme.Focused.BlurredButton.GetPadding()
		if fLeft != 1 || fRight != 1 {
			t.Errorf("FocusedButton padding = %d/%d, want 1/1", fLeft, fRight)
		}
		if fLeft != bLeft || fRight != bRight {
			t.Error("FocusedButton and BlurredButton should have consistent padding")
		}
	})

	t.Run("focused title is bold", func(t *testing.T) {
		if !theme.Focused.Title.GetBold() {
			t.Error("Focused.Title should be bold")
		}
	})
}

func TestEcleanThemeColors(t *testing.T) {
	colors := map[string]lipgloss.AdaptiveColor{
		"ecleanPurplePrimary": ecleanPurplePrimary,
		"ecleanPurpleBright":  ecleanPurpleBright,
		"ecleanAmberAccent":   ecleanAmberAccent,
		"ecleanTextNormal":    ecleanTextNormal,
		"ecleanTextMuted":     ecleanTextMuted,
		"ecleanBorderFocused": ecleanBorderFocused,
		"ecleanButtonBg":      ecleanButtonBg,
		"ecleanButtonBgDim":   ecleanButtonBgDim,
		"ecleanButtonText":    ecleanButtonText,
		"ecleanButtonTextDim": ecleanButtonTextDim,
	}
	for name, c := range colors {
		t.Run(name, func(t *testing.T) {
			if !isValidHexColor(c.Light) || !isValidHexColor(c.Dark) {
				t.Errorf("%s has invalid colors: light=%q dark=%q", name, c.Light, c.Dark)
			}
		})
	}
}

func TestIsValidTheme(t *testing.T) {
	tests := []struct {
		theme string
		want  bool
	}{
		{"eclean", true},
		{"base", true},
		{"base16", true},
		{"catppuccin", true},
		{"charm", true},
		{"dracula", true},
		{"", false},
		{"unknown", false},
		{"ECLEAN", false},
	}
	for _, tt := range tests {
		if got := IsValidTheme(tt.theme); got != tt.want {
			t.Errorf("IsValidTheme(%q) = %v, want %v", tt.theme, got, tt.want)
		}
	}
}

func TestGetTheme_MatchesValidThemes(t *testing.T) {
	for _, name := range ValidThemes {
		if GetTheme(name) == nil {
			t.Errorf("GetTheme(%q) returned nil for a valid theme", name)
		}
	}
	if len(themeBuilders) != len(ValidThemes) {
		t.Errorf("themeBuilders has %d entries, ValidThemes has %d", len(themeBuilders), len(ValidThemes))
	}
	if GetTheme("nope") != nil {
		t.Error("GetTheme(nope) should return nil")
	}
}

func TestSetTheme(t *testing.T) {
	defer resetTheme()

	SetTheme("dracula")
	if currentTheme == nil {
		t.Error("SetTheme(dracula) left currentTheme nil")
	}

	SetTheme("invalid-theme")
	if currentTheme != nil {
		t.Error("SetTheme with an invalid name should fall back to the default")
	}
	if currentThemeOrDefault() == nil {
		t.Error("currentThemeOrDefault() returned nil")
	}
}

// isValidHexColor checks if a string is a valid hex color (e.g., "#4b2c85").
func isValidHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
