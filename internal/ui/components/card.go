package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcum42/sagemodels/internal/theme"
)

var cardBorderStyle = lipgloss.NewStyle().Foreground(theme.ColorBorder)

// Card wraps content in a rounded box with the title set into the top
// border. Compact drops the box for a title and separator line.
type Card struct {
	Title   string // may be pre-styled
	Width   int    // total outer width
	Content string
	Compact bool
}

// InnerWidth returns the usable content width inside the card.
func (c Card) InnerWidth() int {
	if c.Compact {
		return c.Width - 2
	}
	return c.Width - 4 // border + padding on each side
}

func (c Card) Render() string {
	if c.Compact {
		sep := theme.MutedStyle.Render("  " + strings.Repeat("─", max(c.Width-4, 1)))
		if c.Content == "" {
			return c.Title + "\n" + sep
		}
		return c.Title + "\n" + sep + "\n" + c.Content
	}

	inner := c.Width - 2
	title := ""
	if c.Title != "" {
		title = " " + c.Title + " "
	}
	fillTop := max(inner-1-lipgloss.Width(title), 0)
	lines := []string{
		cardBorderStyle.Render("╭─") + title + cardBorderStyle.Render(strings.Repeat("─", fillTop)+"╮"),
	}

	bar := cardBorderStyle.Render("│")
	for _, line := range strings.Split(c.Content, "\n") {
		lines = append(lines, bar+" "+PadRight(line, inner-2)+" "+bar)
	}
	lines = append(lines, cardBorderStyle.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(lines, "\n")
}
