package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcum42/sagemodels/internal/i18n"
	"github.com/arcum42/sagemodels/internal/report"
	"github.com/arcum42/sagemodels/internal/theme"
)

var (
	rowEvenStyle = lipgloss.NewStyle()
	rowOddStyle  = lipgloss.NewStyle().Background(theme.ColorElevatedBg)
	cursorStyle  = lipgloss.NewStyle().Foreground(theme.ColorGold)
	cursorActive = cursorStyle.Render("▶ ")
	cursorBlank  = "  "
	badgeStyle   = theme.WarningStyle
)

// Fixed column widths of a model row; the name takes the rest.
const (
	typeColWidth  = 12
	sizeColWidth  = 9
	usedColWidth  = 14
	badgeColWidth = 7
	rowChrome     = 2 + 2 + 4*1 // cursor, gutter, column gaps
)

// RowBackground returns a subtle background style for alternating rows.
func RowBackground(index int) lipgloss.Style {
	if index%2 == 1 {
		return rowOddStyle
	}
	return rowEvenStyle
}

// CursorIndicator returns "▶ " in Gold if selected, "  " otherwise.
func CursorIndicator(selected bool) string {
	if selected {
		return cursorActive
	}
	return cursorBlank
}

// GroupGutter returns the styled group bracket for a row.
func GroupGutter(row report.Row) string {
	return theme.GutterStyle.Render(row.Gutter()) + " "
}

// ModelRow renders one report row at the given width.
func ModelRow(row report.Row, width int, selected bool, now time.Time) string {
	nameW := max(width-rowChrome-typeColWidth-sizeColWidth-usedColWidth-badgeColWidth, 8)

	badge := ""
	if row.ShowUpdate {
		badge = i18n.T("update_badge")
	}
	nameStyle := theme.BodyStyle
	if selected {
		nameStyle = theme.HeaderStyle
	}
	cols := []string{
		nameStyle.Render(Fit(row.Name, nameW)),
		lipgloss.NewStyle().Foreground(theme.TypeColor(row.Type)).Render(Fit(FormatType(row.Type), typeColWidth)),
		theme.BodyStyle.Render(Fit(FormatSize(row.Size), sizeColWidth)),
		theme.MutedStyle.Render(Fit(FormatLastUsed(row.LastUsed, now), usedColWidth)),
		badgeStyle.Render(Fit(badge, badgeColWidth)),
	}
	return CursorIndicator(selected) + GroupGutter(row) + strings.Join(cols, " ")
}
