package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcum42/sagemodels/internal/config"
	"github.com/arcum42/sagemodels/internal/logging"
	"github.com/arcum42/sagemodels/internal/parser"
	"github.com/arcum42/sagemodels/internal/report"
)

// tuiAnnotation marks commands that own the terminal; they build their own
// logger so nothing is written to stderr.
const tuiAnnotation = "tui"

// state is shared by every command of one invocation.
type state struct {
	configPath string
	cacheDirs  []string
	sort       string
	types      []string
	format     string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	s := &state{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "sagemodels",
		Short:         "Browse and report a SageUtils model cache",
		Long:          "sagemodels reads SageUtils model cache files, merges duplicate entries, groups versions of the same model and shows or exports the result.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   map[string]string{tuiAnnotation: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = s.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runBrowse(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&s.configPath, "config", config.DefaultPath(), "config file path")
	f.StringArrayVar(&s.cacheDirs, "cache-dir", nil, "cache directory to read (repeatable)")
	f.StringVar(&s.sort, "sort", "", "sort mode: name, lastused, size, type, optionally with -desc")
	f.StringArrayVar(&s.types, "type", nil, "only show models of this type (repeatable)")
	f.StringVar(&s.format, "format", "", "output format: table, json, yaml or xlsx")
	f.BoolVarP(&s.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newListCmd(s),
		newExportCmd(s),
		newBrowseCmd(s),
		newVersionCmd(),
	)
	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (s *state) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	if len(s.cacheDirs) > 0 {
		cfg.General.CacheDirs = s.cacheDirs
	}
	if s.sort != "" {
		cfg.General.Sort = s.sort
	}
	if len(s.types) > 0 {
		cfg.General.Types = s.types
	}
	if s.format != "" {
		cfg.Output.Format = s.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg

	if cmd.Annotations[tuiAnnotation] == "true" {
		s.logger, err = logging.NewForTUI(cfg.Logging, s.verbose)
	} else {
		s.logger, err = logging.New(cfg.Logging, s.verbose)
	}
	return err
}

// buildReport loads every cache file and runs the pipeline. Files that fail
// to load are logged and left out.
func (s *state) buildReport(ctx context.Context) (report.Report, error) {
	loader := parser.NewLoader(s.logger, 0)
	res, err := loader.Load(ctx, s.cfg.General.CacheDirs)
	if err != nil {
		var merr *multierror.Error
		if !errors.As(err, &merr) {
			return report.Report{}, err
		}
		s.logger.Warn("some cache files could not be read", zap.Int("failed", len(merr.Errors)))
	}
	s.logger.Debug("cache loaded",
		zap.Int("files", res.Files),
		zap.Int("records", len(res.Records)),
		zap.Int("skipped", res.SkipCount),
		zap.Int("errors", res.ErrorCount),
	)

	return report.Build(res.Records, report.Options{
		Sort:      s.cfg.SortKey(),
		Types:     s.cfg.General.Types,
		HasUpdate: s.cfg.UpdatePredicate(),
	}), nil
}

// tableWidth is output.width, or the terminal width when that is 0 and
// stdout is a terminal.
func (s *state) tableWidth() int {
	if s.cfg.Output.Width > 0 {
		return s.cfg.Output.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 0
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}
