package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcum42/sagemodels/internal/i18n"
	"github.com/arcum42/sagemodels/internal/theme"
)

var (
	badgeKeyStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMutedText).
			Padding(0, 1)

	badgeValueStyle = lipgloss.NewStyle().
			Foreground(theme.ColorGold).
			Background(theme.ColorElevatedBg).
			Bold(true).
			Padding(0, 1)
)

// HeaderBar renders the title line with the active sort and type filter,
// followed by a separator.
type HeaderBar struct {
	Title  string
	Sort   string
	Filter string // empty = all types
	Width  int
}

func (h HeaderBar) Render() string {
	filter := h.Filter
	if filter == "" {
		filter = i18n.T("all_types")
	}
	title := theme.GradientText(h.Title, string(theme.ColorSkyBlue), string(theme.ColorMauve))
	badges := badgeKeyStyle.Render(i18n.T("sort_label")) + badgeValueStyle.Render(h.Sort) +
		badgeKeyStyle.Render(i18n.T("filter_label")) + badgeValueStyle.Render(filter)

	gap := max(h.Width-2-lipgloss.Width(title)-lipgloss.Width(badges), 1)
	line := " " + title + strings.Repeat(" ", gap) + badges

	return line + "\n" + theme.MutedStyle.Render(strings.Repeat("─", max(h.Width, 1)))
}
