package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/arcum42/sagemodels/internal/i18n"
	"github.com/arcum42/sagemodels/internal/theme"
)

const (
	minNameWidth = 12
	colGap       = "  "
)

var (
	sizeStyle   = lipgloss.NewStyle().Foreground(theme.ColorBodyText)
	updateStyle = theme.WarningStyle
)

type column struct {
	title string
	width int
	right bool
}

// WriteTable renders rep as an aligned terminal table with a group gutter.
// A positive width narrows the name column to fit.
func WriteTable(w io.Writer, rep Report, width int) error {
	cols := []column{
		{title: i18n.T("col_name")},
		{title: i18n.T("col_type")},
		{title: i18n.T("col_size"), right: true},
		{title: i18n.T("col_last_used")},
		{title: i18n.T("col_update")},
	}
	cells := make([][]string, len(rep.Rows))
	for i, row := range rep.Rows {
		cells[i] = tableCells(row)
	}
	for c := range cols {
		cols[c].width = runewidth.StringWidth(cols[c].title)
		for _, rc := range cells {
			cols[c].width = max(cols[c].width, runewidth.StringWidth(rc[c]))
		}
	}
	if width > 0 {
		fixed := 2 // gutter + space
		for _, c := range cols[1:] {
			fixed += c.width + len(colGap)
		}
		if avail := width - fixed - len(colGap); avail < cols[0].width {
			cols[0].width = max(avail, minNameWidth)
		}
	}

	var sb strings.Builder
	header := make([]string, len(cols))
	for c, col := range cols {
		header[c] = theme.HeaderStyle.Render(fill(col.title, col))
	}
	sb.WriteString("  " + strings.Join(header, colGap) + "\n")

	for i, row := range rep.Rows {
		sb.WriteString(theme.GutterStyle.Render(row.Gutter()) + " ")
		rc := cells[i]
		parts := []string{
			theme.BodyStyle.Render(fill(rc[0], cols[0])),
			lipgloss.NewStyle().Foreground(theme.TypeColor(row.Type)).Render(fill(rc[1], cols[1])),
			sizeStyle.Render(fill(rc[2], cols[2])),
			theme.MutedStyle.Render(fill(rc[3], cols[3])),
			updateStyle.Render(fill(rc[4], cols[4])),
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, colGap), " ") + "\n")
	}

	sb.WriteString("\n" + theme.MutedStyle.Render(Summary(rep)) + "\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func tableCells(row Row) []string {
	typ := row.Type
	if typ == "" {
		typ = i18n.T("unknown_type")
	}
	size := row.SizeHuman
	if size == "" {
		size = "-"
	}
	lastUsed := i18n.T("never_used")
	if row.LastUsed != nil {
		lastUsed = row.LastUsed.Format("2006-01-02")
	}
	update := ""
	if row.ShowUpdate {
		update = i18n.T("update_badge")
	}
	return []string{row.Name, typ, size, lastUsed, update}
}

func fill(s string, col column) string {
	if runewidth.StringWidth(s) > col.width {
		s = runewidth.Truncate(s, col.width, "…")
	}
	if col.right {
		return runewidth.FillLeft(s, col.width)
	}
	return runewidth.FillRight(s, col.width)
}

// Summary returns the one-line footer for rep.
func Summary(rep Report) string {
	st := rep.Stats
	s := i18n.Tf("stats_summary", st.Filtered, st.Duplicates, st.Groups, humanize.Bytes(uint64(st.TotalBytes)))
	if st.Filtered != st.Unique {
		s += ", " + i18n.Tf("stats_filtered", st.Filtered, st.Unique)
	}
	if st.UpdatesAvailable > 0 {
		s += ", " + i18n.Tf("stats_updates", st.UpdatesAvailable)
	}
	return s
}
