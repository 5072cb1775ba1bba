package parser

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arcum42/sagemodels/internal/domain"
)

const defaultWorkers = 4

// LoadResult is the combined output of every cache file under the scanned
// directories, in file walk order.
type LoadResult struct {
	Records    []domain.ModelRecord
	Files      int
	SkipCount  int
	ErrorCount int
}

// Loader reads cache files concurrently.
type Loader struct {
	Logger  *zap.Logger
	Workers int
}

func NewLoader(logger *zap.Logger, workers int) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Loader{Logger: logger, Workers: workers}
}

// IsCacheFile reports whether path has a cache file extension.
func IsCacheFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonl":
		return true
	}
	return false
}

// CacheFiles walks dirs and returns every cache file. Unreadable entries
// and missing directories are skipped.
func CacheFiles(dirs []string) []string {
	var paths []string
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !IsCacheFile(path) {
				return nil
			}
			paths = append(paths, path)
			return nil
		})
	}
	return paths
}

// Load decodes every cache file under dirs. A file that fails to open or
// decode does not abort the batch: its error is collected and returned
// alongside everything that did load. A cancelled context stops the scan
// and returns the context error.
func (l *Loader) Load(ctx context.Context, dirs []string) (LoadResult, error) {
	files := CacheFiles(dirs)
	results := make([]ParseResult, len(files))

	var (
		mu   sync.Mutex
		errs *multierror.Error
	)
	workers := l.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := l.loadFile(path)
			if err != nil {
				log.Warn("skipping cache file", zap.String("path", path), zap.Error(err))
				mu.Lock()
				errs = multierror.Append(errs, err)
				mu.Unlock()
				return nil
			}
			log.Debug("loaded cache file",
				zap.String("path", path),
				zap.Int("records", len(res.Records)),
				zap.Int("skipped", res.SkipCount),
				zap.Int("errors", res.ErrorCount))
			results[i] = res
			return nil
		})
	}
	waitErr := g.Wait()

	out := LoadResult{Files: len(files)}
	for _, res := range results {
		out.Records = append(out.Records, res.Records...)
		out.SkipCount += res.SkipCount
		out.ErrorCount += res.ErrorCount
	}
	if waitErr != nil {
		return out, fmt.Errorf("load cache: %w", waitErr)
	}
	return out, errs.ErrorOrNil()
}

func (l *Loader) loadFile(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return ParseReader(f), nil
	}
	return DecodeJSON(f, path)
}
