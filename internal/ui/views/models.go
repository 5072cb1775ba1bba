package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcum42/sagemodels/internal/i18n"
	"github.com/arcum42/sagemodels/internal/report"
	"github.com/arcum42/sagemodels/internal/theme"
	"github.com/arcum42/sagemodels/internal/ui/components"
)

// detailLines is the height of the selected-model pane below the list.
const detailLines = 4

// ModelsView is the scrollable list of report rows.
type ModelsView struct {
	rows   []report.Row
	cursor int
	scroll int
	page   int // rows per page from the last Render
	detail bool
	now    func() time.Time
}

func NewModelsView() *ModelsView {
	return &ModelsView{page: 10, now: time.Now}
}

// SetRows replaces the list and keeps the cursor in range.
func (v *ModelsView) SetRows(rows []report.Row) {
	v.rows = rows
	if v.cursor >= len(rows) {
		v.cursor = max(0, len(rows)-1)
	}
	if v.scroll > v.cursor {
		v.scroll = v.cursor
	}
}

// Cursor returns the index of the selected row.
func (v *ModelsView) Cursor() int { return v.cursor }

// Selected returns the row under the cursor, if any.
func (v *ModelsView) Selected() (report.Row, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return report.Row{}, false
	}
	return v.rows[v.cursor], true
}

func (v *ModelsView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	last := len(v.rows) - 1
	switch km.String() {
	case "j", "down":
		if v.cursor < last {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g", "home":
		v.cursor = 0
	case "G", "end":
		v.cursor = max(last, 0)
	case "pgdown", "ctrl+d":
		v.cursor = max(min(v.cursor+v.page, last), 0)
	case "pgup", "ctrl+u":
		v.cursor = max(v.cursor-v.page, 0)
	case "enter":
		v.detail = !v.detail
	default:
		return nil
	}
	return KeyHandledCmd
}

// Render draws the list into width x height cells.
func (v *ModelsView) Render(width, height int) string {
	if len(v.rows) == 0 {
		return "\n" + components.CenterText(theme.MutedStyle.Render(i18n.T("no_models")), width)
	}

	visible := height
	if v.detail {
		visible -= detailLines + 1
	}
	visible = max(visible, 1)
	v.page = visible

	if v.cursor < v.scroll {
		v.scroll = v.cursor
	}
	if v.cursor >= v.scroll+visible {
		v.scroll = v.cursor - visible + 1
	}

	now := v.now()
	end := min(v.scroll+visible, len(v.rows))
	lines := make([]string, 0, visible+detailLines+1)
	for i := v.scroll; i < end; i++ {
		line := components.ModelRow(v.rows[i], width, i == v.cursor, now)
		lines = append(lines, components.RowBackground(i).Render(line))
	}

	if v.detail {
		for len(lines) < visible {
			lines = append(lines, "")
		}
		lines = append(lines, theme.MutedStyle.Render(strings.Repeat("─", max(width, 1))))
		lines = append(lines, v.renderDetail(width)...)
	}
	return strings.Join(lines, "\n")
}

func (v *ModelsView) renderDetail(width int) []string {
	row, ok := v.Selected()
	if !ok {
		return nil
	}
	field := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return "  " + theme.AccentStyle.Render(components.Fit(label, 10)) +
			theme.BodyStyle.Render(components.Truncate(value, width-14))
	}
	group := "-"
	if row.IsGroupMember {
		group = fmt.Sprintf("%s (%d)", row.ModelID, row.GroupSize)
	}
	return []string{
		field(i18n.T("col_path"), row.FilePath),
		field(i18n.T("col_hash"), row.Hash),
		field(i18n.T("col_model_id"), row.ModelID),
		field(i18n.T("col_group"), group),
	}
}
