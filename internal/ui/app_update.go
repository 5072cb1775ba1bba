package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/arcum42/sagemodels/internal/i18n"
	"github.com/arcum42/sagemodels/internal/ui/overlays"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		if a.overlay != OverlayNone {
			return a.updateOverlay(msg)
		}
		return a.handleGlobalKey(msg)

	case tickMsg:
		a.notifications.Expire()
		return a, doTick()

	case dataLoadedMsg:
		a.applyLoad(msg)
		return a, nil

	case cacheChangedMsg:
		a.logger.Debug("cache changed", zap.Strings("files", msg.files))
		a.notifications.SetMessage(i18n.T("notify_changed"))
		a.loading = true
		return a, tea.Batch(a.loadData, a.waitForChange)

	case overlays.ConfigChangedMsg:
		if msg.Err != nil {
			a.logger.Warn("save settings", zap.Error(msg.Err))
			a.notifications.SetError(msg.Err.Error())
		}
		a.Config = msg.Config
		i18n.SetLanguage(a.Config.General.Language)
		a.sortKey = a.Config.SortKey()
		if msg.Err == nil {
			a.savedSort = a.sortKey
		}
		a.rebuild()
		return a, nil
	}

	return a, nil
}

func (a App) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd := a.modelsView.Update(msg); cmd != nil {
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		if err := a.SaveSortIfChanged(); err != nil {
			a.logger.Warn("save sort", zap.Error(err))
		}
		return a, tea.Quit
	case "?":
		a.overlay = OverlayHelp
	case "o":
		a.settingsOverlay = overlays.NewSettingsOverlay(a.Config, a.ConfigPath)
		a.overlay = OverlaySettings
	case "s":
		a.sortKey = a.sortKey.Next()
		a.rebuild()
	case "S":
		a.sortKey = a.sortKey.Reverse()
		a.rebuild()
	case "t":
		a.cycleType()
	case "r":
		a.loading = true
		return a, a.loadData
	}
	return a, nil
}

func (a App) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.overlay {
	case OverlayHelp:
		switch msg.String() {
		case "esc", "?":
			a.overlay = OverlayNone
		}
	case OverlaySettings:
		if a.settingsOverlay != nil {
			closed, cmd := a.settingsOverlay.Update(msg)
			if closed {
				a.overlay = OverlayNone
			}
			return a, cmd
		}
	}
	return a, nil
}
