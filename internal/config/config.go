package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/arcum42/sagemodels/internal/domain"
	"github.com/arcum42/sagemodels/internal/report"
)

type Config struct {
	General GeneralConfig `toml:"general"`
	Output  OutputConfig  `toml:"output"`
	Watch   WatchConfig   `toml:"watch"`
	Logging LoggingConfig `toml:"logging"`
	Updates UpdatesConfig `toml:"updates"`
}

type GeneralConfig struct {
	CacheDirs []string `toml:"cache_dirs"`
	Sort      string   `toml:"sort"`
	Types     []string `toml:"types"`
	Language  string   `toml:"language"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Width  int    `toml:"width"` // 0 = terminal width
}

type WatchConfig struct {
	Enabled  bool `toml:"enabled"`
	Interval int  `toml:"interval"` // seconds between polls
}

type LoggingConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
	File        string `toml:"file"`
}

type UpdatesConfig struct {
	// Fields are extra info keys read as update flags.
	Fields []string `toml:"fields"`
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			CacheDirs: []string{"."},
			Sort:      domain.DefaultSortKey.String(),
			Types:     []string{},
			Language:  "en",
		},
		Output: OutputConfig{
			Format: string(report.FormatTable),
		},
		Watch: WatchConfig{
			Interval: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Updates: UpdatesConfig{
			Fields: []string{},
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "sagemodels", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // use defaults
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if _, ok := domain.LookupSortKey(c.General.Sort); !ok {
		return fmt.Errorf("invalid sort %q (want one of %v)", c.General.Sort, domain.SortModes())
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}
	if c.Output.Width < 0 {
		return fmt.Errorf("invalid output width %d", c.Output.Width)
	}
	if c.Watch.Interval <= 0 {
		return fmt.Errorf("invalid watch interval %d: must be positive", c.Watch.Interval)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// SortKey returns the parsed general.sort setting.
func (c Config) SortKey() domain.SortKey {
	return domain.ParseSortKey(c.General.Sort)
}

// UpdatePredicate returns the update check configured by updates.fields.
func (c Config) UpdatePredicate() domain.UpdatePredicate {
	return domain.UpdateFlagPredicate(c.Updates.Fields)
}
