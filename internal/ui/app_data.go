package ui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/arcum42/sagemodels/internal/config"
	"github.com/arcum42/sagemodels/internal/i18n"
	"github.com/arcum42/sagemodels/internal/report"
)

// loadData reads every cache file under the configured directories.
func (a App) loadData() tea.Msg {
	res, err := a.loader.Load(context.Background(), a.Config.General.CacheDirs)
	return dataLoadedMsg{result: res, err: err}
}

// waitForChange blocks until the watcher reports changed cache files.
func (a App) waitForChange() tea.Msg {
	files, ok := <-a.Changes
	if !ok {
		return nil
	}
	return cacheChangedMsg{files: files}
}

// failedFiles counts the cache files named in a load error.
func failedFiles(err error) int {
	if err == nil {
		return 0
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return len(merr.Errors)
	}
	return 1
}

func (a *App) applyLoad(msg dataLoadedMsg) {
	a.loading = false
	a.records = msg.result.Records
	a.rebuild()

	if n := failedFiles(msg.err); n > 0 {
		a.logger.Warn("cache load incomplete", zap.Int("failed", n), zap.Error(msg.err))
		a.notifications.SetError(i18n.Tf("notify_errors", n))
	} else if a.loaded {
		a.notifications.SetMessage(i18n.Tf("notify_reloaded", a.report.Stats.Unique))
	}
	a.loaded = true
}

// rebuild reruns the pipeline over the loaded records with the current
// sort and filter.
func (a *App) rebuild() {
	a.report = report.Build(a.records, report.Options{
		Sort:      a.sortKey,
		Types:     a.types,
		HasUpdate: a.Config.UpdatePredicate(),
	})
	a.modelsView.SetRows(a.report.Rows)
}

// cycleType steps the filter through all, then each category present.
func (a *App) cycleType() {
	options := a.report.Types
	a.typeIndex = (a.typeIndex + 1) % (len(options) + 1)
	if a.typeIndex == 0 {
		a.types = nil
	} else {
		a.types = []string{options[a.typeIndex-1]}
	}
	a.rebuild()
}

// filterLabel names the active type filter, empty when showing all.
func (a App) filterLabel() string {
	return strings.Join(a.types, ",")
}

// SaveSortIfChanged writes the active sort to the config file when it
// differs from the one last saved. Only general.sort changes on disk;
// command-line overrides held in a.Config are not persisted.
func (a *App) SaveSortIfChanged() error {
	if a.sortKey == a.savedSort || a.ConfigPath == "" {
		return nil
	}
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	cfg.General.Sort = a.sortKey.String()
	if err := config.Save(cfg, a.ConfigPath); err != nil {
		return err
	}
	a.Config.General.Sort = cfg.General.Sort
	a.savedSort = a.sortKey
	return nil
}
