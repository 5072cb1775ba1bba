package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcum42/sagemodels/internal/report"
	"github.com/arcum42/sagemodels/internal/watcher"
)

func newListCmd(s *state) *cobra.Command {
	var (
		watch bool
		width int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the model report",
		Long:  "Print the deduplicated, grouped model report as a table, JSON or YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(s.cfg.Output.Format)
			if err != nil {
				return err
			}
			if f == report.FormatXLSX {
				return fmt.Errorf("xlsx output needs a file: use sagemodels export")
			}
			if cmd.Flags().Changed("width") {
				s.cfg.Output.Width = width
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			if err := s.printReport(ctx, out, f); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return s.watchReport(ctx, out, f)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-print the report whenever a cache file changes")
	cmd.Flags().IntVar(&width, "width", 0, "table width (0 = terminal width)")
	return cmd
}

func (s *state) printReport(ctx context.Context, w io.Writer, f report.Format) error {
	rep, err := s.buildReport(ctx)
	if err != nil {
		return err
	}
	return report.Write(w, rep, f, s.tableWidth())
}

// watchReport re-prints the report on every cache change until ctx ends.
func (s *state) watchReport(ctx context.Context, w io.Writer, f report.Format) error {
	changes := make(chan []string, 1)
	wt := watcher.New(s.cfg.General.CacheDirs, time.Duration(s.cfg.Watch.Interval)*time.Second, func(files []string) {
		select {
		case changes <- files:
		default: // a reload is already pending
		}
	}).WithLogger(s.logger)

	if _, err := wt.InitialScan(); err != nil {
		return fmt.Errorf("scan cache dirs: %w", err)
	}
	if err := wt.Start(); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer wt.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case files := <-changes:
			s.logger.Info("cache changed", zap.Int("files", len(files)))
			fmt.Fprintln(w)
			if err := s.printReport(ctx, w, f); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}
