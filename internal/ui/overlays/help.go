package overlays

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcum42/sagemodels/internal/i18n"
	"github.com/arcum42/sagemodels/internal/theme"
)

type binding struct {
	key  string
	desc string
}

type HelpOverlay struct{}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

func helpSections() []struct {
	title    string
	bindings []binding
} {
	return []struct {
		title    string
		bindings []binding
	}{
		{i18n.T("help_nav"), []binding{
			{"j / k / Down / Up", i18n.T("help_up_down")},
			{"g / G", i18n.T("help_top_end")},
			{"PgUp / PgDn", i18n.T("help_page")},
		}},
		{i18n.T("help_view"), []binding{
			{"s", i18n.T("help_sort")},
			{"S", i18n.T("help_reverse")},
			{"t", i18n.T("help_type")},
			{"r", i18n.T("help_reload")},
		}},
		{i18n.T("help_general"), []binding{
			{"?", i18n.T("help_help")},
			{"o", i18n.T("help_settings")},
			{"q / Ctrl+C", i18n.T("help_quit")},
		}},
	}
}

func (h *HelpOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.GradientText(i18n.T("help_title"), string(theme.ColorSkyBlue), string(theme.ColorMauve))

	sections := helpSections()
	maxKeyLen := 0
	for _, s := range sections {
		for _, b := range s.bindings {
			maxKeyLen = max(maxKeyLen, len(b.key))
		}
	}

	sectionStyle := lipgloss.NewStyle().Foreground(theme.ColorLavender).Bold(true).Background(bg)
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)

	var rows []string
	for i, s := range sections {
		if i > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, sectionStyle.Render(s.title))
		for _, b := range s.bindings {
			rows = append(rows, fmt.Sprintf("  %s%s",
				keyStyle.Render(fmt.Sprintf("%-*s", maxKeyLen, b.key)),
				descStyle.Render("  "+b.desc),
			))
		}
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(i18n.T("help_close"))

	boxWidth := 56
	if width < boxWidth+4 {
		boxWidth = width - 4
	}
	return theme.CardStyle.Width(boxWidth).Render(content)
}
