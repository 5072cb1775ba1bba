package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcum42/sagemodels/internal/report"
)

func newExportCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the model report to a file",
		Long: "Write the model report to a file, or stdout when no file is given.\n" +
			"The format comes from --format, then the file extension, then defaults to xlsx.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			f, err := exportFormat(s.format, path)
			if err != nil {
				return err
			}
			if path == "" && f == report.FormatXLSX && isTerminal(os.Stdout) {
				return fmt.Errorf("refusing to write xlsx to a terminal; give a file name")
			}

			rep, err := s.buildReport(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path != "" {
				file, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create %s: %w", path, err)
				}
				defer file.Close()
				out = file
			}
			if err := report.Write(out, rep, f, s.cfg.Output.Width); err != nil {
				return err
			}
			if path != "" {
				s.logger.Info("report exported",
					zap.String("path", path),
					zap.String("format", string(f)),
					zap.Int("rows", len(rep.Rows)),
				)
			}
			return nil
		},
	}
}

// exportFormat picks the output format: an explicit flag wins, then the
// file extension, then xlsx.
func exportFormat(flag, path string) (report.Format, error) {
	if flag != "" {
		return report.ParseFormat(flag)
	}
	if f, ok := report.FormatForPath(path); ok {
		return f, nil
	}
	return report.FormatXLSX, nil
}
