package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arcum42/sagemodels/internal/i18n"
	"github.com/arcum42/sagemodels/internal/theme"
	"github.com/arcum42/sagemodels/internal/ui/components"
)

// Rows taken by everything but the list: header 2, stats 2 + gap, status 2.
const chromeHeight = 7

func (a App) View() string {
	if !a.ready {
		return i18n.T("loading")
	}

	if a.width < minWidth || a.height < minHeight {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ColorPeach).Render(
				i18n.T("terminal_too_small")+"\n"+
					i18n.Tf("current_size", a.width, a.height),
			),
		)
	}

	if a.overlay != OverlayNone {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			a.renderOverlay(),
			lipgloss.WithWhitespaceBackground(theme.ColorOverlayBg),
		)
	}

	header := components.HeaderBar{
		Title:  i18n.T("title"),
		Sort:   a.sortKey.String(),
		Filter: a.filterLabel(),
		Width:  a.width,
	}.Render()
	stats := components.RenderStatRow(components.SummaryCards(a.report.Stats, a.width), 1)

	listHeight := max(a.height-chromeHeight, 1)
	var list string
	if a.loading && !a.loaded {
		list = "\n" + components.CenterText(theme.MutedStyle.Render(i18n.T("loading")), a.width)
	} else {
		list = a.modelsView.Render(a.width, listHeight)
	}
	list = lipgloss.NewStyle().
		Width(a.width).
		Height(listHeight).
		MaxHeight(listHeight).
		Render(list)

	footer := components.StatusBar{Width: a.width}.Render()
	if banner := a.notifications.RenderBanner(a.width); banner != "" {
		footer = theme.MutedStyle.Render(components.Fit("", a.width)) + "\n" + banner
	}

	return header + "\n" + stats + "\n\n" + list + "\n" + footer
}

func (a App) renderOverlay() string {
	switch a.overlay {
	case OverlayHelp:
		return a.helpOverlay.Render(a.width, a.height)
	case OverlaySettings:
		if a.settingsOverlay != nil {
			return a.settingsOverlay.Render(a.width, a.height)
		}
	}
	return ""
}
