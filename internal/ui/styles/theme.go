// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the application. It detects the
// terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App    lipgloss.Style
	Header lipgloss.Style
	Title  lipgloss.Style
	Brand  lipgloss.Style

	// ==========================================================================
	// MENU AND LIST STYLES
	// ==========================================================================

	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	ListHeader   lipgloss.Style
	ListRow      lipgloss.Style
	ListDim      lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	Label        lipgloss.Style
	InputFocused lipgloss.Style
	InputBlurred lipgloss.Style

	// ==========================================================================
	// FEEDBACK STYLES
	// ==========================================================================

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// ==========================================================================
	// QUIZ PLAYER STYLES
	// ==========================================================================

	Question       lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style
	Correct        lipgloss.Style
	Incorrect      lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// Palette colors. Adaptive pairs pick the right variant for light and dark
// backgrounds.
var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	colorText    = lipgloss.AdaptiveColor{Light: "#1A1A2E", Dark: "#E6E6F0"}
	colorSubtle  = lipgloss.AdaptiveColor{Light: "#6E6E85", Dark: "#8F8FA3"}
	colorGood    = lipgloss.AdaptiveColor{Light: "#107040", Dark: "#35C27E"}
	colorBad     = lipgloss.AdaptiveColor{Light: "#C22E2E", Dark: "#F26D6D"}
	colorWarn    = lipgloss.AdaptiveColor{Light: "#A86500", Dark: "#F2B35C"}
	colorSurface = lipgloss.AdaptiveColor{Light: "#EFEFF7", Dark: "#24243A"}
)

// NewTheme builds the theme for the current terminal. The mode argument is
// "auto", "dark", or "light"; auto follows the terminal background.
func NewTheme(mode string) *Theme {
	profile := termenv.ColorProfile()

	isDark := termenv.HasDarkBackground()
	switch mode {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	}

	t := &Theme{
		IsDark:       isDark,
		ColorProfile: profile,
	}

	t.App = lipgloss.NewStyle().Padding(1, 2)
	t.Header = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 2)
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	t.Brand = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	t.MenuItem = lipgloss.NewStyle().Foreground(colorText).Padding(0, 2)
	t.MenuSelected = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true).
		Padding(0, 1)
	t.ListHeader = lipgloss.NewStyle().Bold(true).Foreground(colorSubtle).Underline(true)
	t.ListRow = lipgloss.NewStyle().Foreground(colorText)
	t.ListDim = lipgloss.NewStyle().Foreground(colorSubtle)

	t.Label = lipgloss.NewStyle().Foreground(colorSubtle)
	t.InputFocused = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorAccent)
	t.InputBlurred = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorSubtle)

	t.Error = lipgloss.NewStyle().Foreground(colorBad).Bold(true)
	t.Success = lipgloss.NewStyle().Foreground(colorGood).Bold(true)
	t.Warning = lipgloss.NewStyle().Foreground(colorWarn)

	t.Question = lipgloss.NewStyle().
		Foreground(colorText).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(0, 1)
	t.Option = lipgloss.NewStyle().Foreground(colorText).Padding(0, 2)
	t.OptionSelected = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true).
		Background(colorSurface).
		Padding(0, 2)
	t.Correct = lipgloss.NewStyle().Foreground(colorGood).Bold(true)
	t.Incorrect = lipgloss.NewStyle().Foreground(colorBad).Bold(true)

	t.StatusBar = lipgloss.NewStyle().Foreground(colorSubtle)
	t.ShortcutKey = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().Foreground(colorSubtle)

	return t
}

// Shortcuts renders a status-bar line of key/description pairs.
func (t *Theme) Shortcuts(pairs ...string) string {
	var line string
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			line += t.ShortcutDesc.Render("  ·  ")
		}
		line += t.ShortcutKey.Render(pairs[i]) + t.ShortcutDesc.Render(" "+pairs[i+1])
	}
	return t.StatusBar.Render(line)
}
