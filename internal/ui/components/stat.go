package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arcum42/sagemodels/internal/report"
	"github.com/arcum42/sagemodels/internal/theme"
)

var (
	statValueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true)
	statLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText)
)

// StatCard renders a big value over a small label.
type StatCard struct {
	Value string
	Label string
	Width int
	Color lipgloss.Color // optional value color
}

func (s StatCard) Render() string {
	w := max(s.Width, 8)
	style := statValueStyle
	if s.Color != "" {
		style = style.Foreground(s.Color)
	}
	return CenterText(style.Render(s.Value), w) + "\n" + CenterText(statLabelStyle.Render(s.Label), w)
}

// RenderStatRow renders cards side by side separated by gap spaces.
func RenderStatRow(cards []StatCard, gap int) string {
	blocks := make([]string, 0, 2*len(cards))
	spacer := lipgloss.NewStyle().Width(gap).Render("")
	for i, c := range cards {
		if i > 0 && gap > 0 {
			blocks = append(blocks, spacer)
		}
		blocks = append(blocks, c.Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// SummaryCards returns the stat row shown above the model list.
func SummaryCards(st report.Stats, width int) []StatCard {
	cards := []StatCard{
		{Value: FormatCount(st.Filtered), Label: "models", Color: theme.ColorSkyBlue},
		{Value: FormatCount(st.Duplicates), Label: "duplicates", Color: theme.ColorLavender},
		{Value: FormatCount(st.Groups), Label: "groups", Color: theme.ColorMauve},
		{Value: FormatSize(st.TotalBytes), Label: "on disk", Color: theme.ColorGold},
		{Value: FormatCount(st.UpdatesAvailable), Label: "updates", Color: theme.ColorPeach},
	}
	w := max(width/len(cards)-1, 8)
	for i := range cards {
		cards[i].Width = w
	}
	return cards
}
