package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// eclean palette: eclipse purple with amber accents.
var (
	ecleanPurplePrimary = lipgloss.AdaptiveColor{Light: "#4b2c85", Dark: "#a88be0"}
	ecleanPurpleBright  = lipgloss.AdaptiveColor{Light: "#2c1561", Dark: "#c9b3f5"}
	ecleanAmberAccent   = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"}
	ecleanTextNormal    = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ecleanTextMuted     = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ecleanBorderFocused = lipgloss.AdaptiveColor{Light: "#4b2c85", Dark: "#a88be0"}
	ecleanButtonBg      = lipgloss.AdaptiveColor{Light: "#4b2c85", Dark: "#7c5cc4"}
	ecleanButtonBgDim   = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}
	ecleanButtonText    = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"}
	ecleanButtonTextDim = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"}
)

// currentTheme holds the configured theme. Nil means ecleanTheme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Empty or unknown names select the eclean theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return ecleanTheme()
	}
	return currentTheme
}

// resetTheme resets the current theme to the default (eclean).
func resetTheme() {
	currentTheme = nil
}

func ecleanTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ecleanBorderFocused)
	t.Focused.Title = t.Focused.Title.Foreground(ecleanPurpleBright).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ecleanTextMuted)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(ecleanButtonText).
		Background(ecleanButtonBg).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(ecleanButtonTextDim).
		Background(ecleanButtonBgDim).
		Padding(0, 1)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ecleanAmberAccent)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(ecleanPurplePrimary).Bold(false)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(ecleanAmberAccent)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(ecleanTextNormal)
	t.Help.FullKey = t.Help.FullKey.Foreground(ecleanAmberAccent)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(ecleanTextNormal)

	return t
}

// themeBuilders maps theme names to their constructors.
var themeBuilders = map[string]func() *huh.Theme{
	"eclean":     ecleanTheme,
	"base":       huh.ThemeBase,
	"base16":     huh.ThemeBase16,
	"catppuccin": huh.ThemeCatppuccin,
	"charm":      huh.ThemeCharm,
	"dracula":    huh.ThemeDracula,
}

// ValidThemes lists the accepted theme names, default first.
var ValidThemes = []string{"eclean", "base", "base16", "catppuccin", "charm", "dracula"}

// IsValidTheme reports whether name is a known theme. Names are case sensitive.
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// GetTheme returns the theme for name, or nil if it is not recognized.
func GetTheme(name string) *huh.Theme {
	build, ok := themeBuilders[name]
	if !ok {
		return nil
	}
	return build()
}
