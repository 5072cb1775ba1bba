package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/arcum42/sagemodels/internal/config"
	"github.com/arcum42/sagemodels/internal/domain"
	"github.com/arcum42/sagemodels/internal/i18n"
	"github.com/arcum42/sagemodels/internal/parser"
	"github.com/arcum42/sagemodels/internal/report"
	"github.com/arcum42/sagemodels/internal/ui/overlays"
	"github.com/arcum42/sagemodels/internal/ui/views"
)

type OverlayType int

const (
	OverlayNone OverlayType = iota
	OverlayHelp
	OverlaySettings
)

// Minimum terminal size for the browser.
const (
	minWidth  = 60
	minHeight = 12
)

// tickMsg drives notification expiry.
type tickMsg time.Time

// dataLoadedMsg carries a finished cache load.
type dataLoadedMsg struct {
	result parser.LoadResult
	err    error
}

// cacheChangedMsg carries the cache files the watcher saw change.
type cacheChangedMsg struct {
	files []string
}

type App struct {
	overlay OverlayType

	modelsView      *views.ModelsView
	helpOverlay     *overlays.HelpOverlay
	settingsOverlay *overlays.SettingsOverlay

	Config     config.Config
	ConfigPath string

	// Changes receives cache file changes; nil disables live reload.
	Changes <-chan []string

	loader  *parser.Loader
	logger  *zap.Logger
	records []domain.ModelRecord
	report  report.Report

	sortKey   domain.SortKey
	savedSort domain.SortKey // last persisted sort
	types     []string       // active type filter; empty = all
	typeIndex int            // position in report.Types while cycling, 0 = all

	notifications *NotificationManager

	width  int
	height int

	loading bool
	loaded  bool
	ready   bool
}

func NewApp(cfg config.Config, cfgPath string, logger *zap.Logger) App {
	i18n.SetLanguage(cfg.General.Language)
	if logger == nil {
		logger = zap.NewNop()
	}
	key := cfg.SortKey()
	return App{
		overlay:       OverlayNone,
		Config:        cfg,
		ConfigPath:    cfgPath,
		loader:        parser.NewLoader(logger, 0),
		logger:        logger,
		sortKey:       key,
		savedSort:     key,
		types:         cfg.General.Types,
		modelsView:    views.NewModelsView(),
		helpOverlay:   overlays.NewHelpOverlay(),
		notifications: NewNotificationManager(),
		loading:       true,
	}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("sagemodels"),
		a.loadData,
		doTick(),
	}
	if a.Changes != nil {
		cmds = append(cmds, a.waitForChange)
	}
	return tea.Batch(cmds...)
}

func doTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Report returns the report currently on screen.
func (a App) Report() report.Report { return a.report }

// SortKey returns the active sort.
func (a App) SortKey() domain.SortKey { return a.sortKey }
