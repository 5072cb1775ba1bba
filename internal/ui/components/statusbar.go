package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcum42/sagemodels/internal/i18n"
	"github.com/arcum42/sagemodels/internal/theme"
)

// StatusBar renders the bottom status bar with key hints.
type StatusBar struct {
	Width int
}

// Render returns the status bar: separator + key hints.
func (s StatusBar) Render() string {
	sep := theme.MutedStyle.Render(strings.Repeat("─", max(s.Width, 1)))
	return sep + "\n" + s.renderKeyHints()
}

// Hints cycle through the palette in order.
var keyColors = []lipgloss.Color{
	theme.ColorSkyBlue,
	theme.ColorLavender,
	theme.ColorMauve,
	theme.ColorPeach,
	theme.ColorGold,
}

func (s StatusBar) renderKeyHints() string {
	hints := []struct{ key, desc string }{
		{"?", i18n.T("status_help")},
		{"s", i18n.T("status_sort")},
		{"S", i18n.T("status_reverse")},
		{"t", i18n.T("status_type")},
		{"r", i18n.T("status_refresh")},
		{"q", i18n.T("status_quit")},
	}

	var parts []string
	for i, h := range hints {
		keyStyle := lipgloss.NewStyle().Foreground(keyColors[i%len(keyColors)]).Bold(true)
		parts = append(parts, keyStyle.Render(h.key)+" "+theme.MutedStyle.Render(h.desc))
	}
	return "  " + strings.Join(parts, "  ")
}

// HelpFooter renders muted help text with standard indentation.
func HelpFooter(text string) string {
	return theme.MutedStyle.Render("  " + text)
}
