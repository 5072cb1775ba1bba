package watcher

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/arcum42/sagemodels/internal/parser"
)

// fingerprint identifies one version of a cache file.
type fingerprint struct {
	size    int64
	modTime int64
}

// Watcher reports cache files that were created, modified or removed under
// a set of directories.
type Watcher struct {
	dirs         []string
	prints       map[string]fingerprint
	mu           sync.Mutex
	scanMu       sync.Mutex // serializes scan between fsnotify and polling
	pollInterval time.Duration
	onChange     func([]string)
	logger       *zap.Logger
	stop         chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
}

func New(dirs []string, pollInterval time.Duration, onChange func([]string)) *Watcher {
	return &Watcher{
		dirs:         dirs,
		prints:       make(map[string]fingerprint),
		pollInterval: pollInterval,
		onChange:     onChange,
		logger:       zap.NewNop(),
		stop:         make(chan struct{}),
	}
}

// WithLogger sets the logger used for watch errors.
func (w *Watcher) WithLogger(l *zap.Logger) *Watcher {
	if l != nil {
		w.logger = l
	}
	return w
}

// InitialScan records the current state of every cache file and returns
// their paths. Later changes are reported relative to this state.
func (w *Watcher) InitialScan() ([]string, error) {
	current := snapshot(w.dirs)

	w.mu.Lock()
	w.prints = current
	w.mu.Unlock()

	files := make([]string, 0, len(current))
	for p := range current {
		files = append(files, p)
	}
	sort.Strings(files)
	return files, nil
}

// Start begins watching with fsnotify + polling fallback.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		for _, dir := range w.dirs {
			addTree(fsw, dir)
		}

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			defer fsw.Close()
			for {
				select {
				case event, ok := <-fsw.Events:
					if !ok {
						return
					}
					if event.Op.Has(fsnotify.Create) {
						if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
							addTree(fsw, event.Name)
						}
					}
					if parser.IsCacheFile(event.Name) {
						w.scan()
					}
				case err, ok := <-fsw.Errors:
					if !ok {
						return
					}
					w.logger.Warn("fsnotify error", zap.Error(err))
				case <-w.stop:
					return
				}
			}
		}()
	} else {
		w.logger.Warn("fsnotify unavailable, polling only", zap.Error(err))
	}

	// Polling fallback (always runs as safety net)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.scan()
			case <-w.stop:
				return
			}
		}
	}()

	return nil
}

// Stop signals goroutines to exit and waits for them to finish. It is safe
// to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *Watcher) scan() {
	w.scanMu.Lock()
	defer w.scanMu.Unlock()

	current := snapshot(w.dirs)

	w.mu.Lock()
	var changed []string
	for p, fp := range current {
		if old, known := w.prints[p]; !known || old != fp {
			changed = append(changed, p)
		}
	}
	for p := range w.prints {
		if _, ok := current[p]; !ok {
			changed = append(changed, p)
		}
	}
	w.prints = current
	w.mu.Unlock()

	if len(changed) == 0 || w.onChange == nil {
		return
	}
	sort.Strings(changed)
	w.onChange(changed)
}

func snapshot(dirs []string) map[string]fingerprint {
	prints := make(map[string]fingerprint)
	for _, path := range parser.CacheFiles(dirs) {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		prints[path] = fingerprint{size: info.Size(), modTime: info.ModTime().UnixNano()}
	}
	return prints
}

func addTree(fsw *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err == nil && d.IsDir() {
			_ = fsw.Add(path)
		}
		return nil
	})
}
