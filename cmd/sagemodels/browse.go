package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arcum42/sagemodels/internal/ui"
	"github.com/arcum42/sagemodels/internal/watcher"
)

func newBrowseCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:         "browse",
		Short:       "Browse the model cache interactively (default)",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runBrowse(cmd)
		},
	}
}

func (s *state) runBrowse(cmd *cobra.Command) error {
	app := ui.NewApp(s.cfg, s.configPath, s.logger)

	if s.cfg.Watch.Enabled {
		changes := make(chan []string, 1)
		wt := watcher.New(s.cfg.General.CacheDirs, time.Duration(s.cfg.Watch.Interval)*time.Second, func(files []string) {
			select {
			case changes <- files:
			default:
			}
		}).WithLogger(s.logger)
		if _, err := wt.InitialScan(); err != nil {
			return err
		}
		if err := wt.Start(); err != nil {
			return err
		}
		defer wt.Stop()
		app.Changes = changes
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err := p.Run()
	return err
}
