package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/xhit/go-str2duration/v2"
	"gopkg.in/yaml.v3"

	"swarm-utilization/internal/data"
	"swarm-utilization/internal/explore"
	"swarm-utilization/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Dataset   DatasetConfig   `yaml:"dataset"`
	Server    ServerConfig    `yaml:"server"`
	Selection SelectionConfig `yaml:"selection"`
	Palette   PaletteConfig   `yaml:"palette"`
	Log       LogConfig       `yaml:"log"`
}

type DatasetConfig struct {
	Path      string `yaml:"path"`
	Separator string `yaml:"separator"`
	Decimal   string `yaml:"decimal"`
	// CacheTTL accepts Go durations plus day/week units, e.g. "1d12h".
	// Empty or "0" keeps the dataset for the process lifetime.
	CacheTTL string `yaml:"cache_ttl"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	Env            string   `yaml:"env"`
	StaticDir      string   `yaml:"static_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SelectionConfig bounds the values the widgets may offer.
type SelectionConfig struct {
	GroupSizes []int `yaml:"group_sizes"`
	EnemyMin   int   `yaml:"enemy_min"`
	EnemyMax   int   `yaml:"enemy_max"`
}

type PaletteConfig struct {
	EnemyFirst string            `yaml:"enemy_first"`
	Friendly   string            `yaml:"friendly"`
	Enemy      string            `yaml:"enemy"`
	Default    string            `yaml:"default"`
	MetricHues map[string]string `yaml:"metric_hues"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Colored *bool  `yaml:"colored"`
	JSON    *bool  `yaml:"json"`
}

// UseJSON reports whether log lines are written as JSON. Unset means console output.
func (l LogConfig) UseJSON() bool {
	return l.JSON != nil && *l.JSON
}

// UseColor reports whether console output is colored; JSON output never is.
func (l LogConfig) UseColor() bool {
	if l.UseJSON() {
		return false
	}
	return l.Colored == nil || *l.Colored
}

// Default returns the dashboard defaults.
func Default() *Config {
	p := explore.DefaultPalette()
	return &Config{
		Dataset: DatasetConfig{
			Path:      "SwarmResults.csv",
			Separator: ";",
			Decimal:   ".",
		},
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			StaticDir:      "./web/dist",
			AllowedOrigins: []string{"*"},
		},
		Selection: SelectionConfig{
			GroupSizes: []int{1, 5, 20},
			EnemyMin:   1,
			EnemyMax:   10,
		},
		Palette: PaletteConfig{
			EnemyFirst: p.EnemyFirst,
			Friendly:   p.Friendly,
			Enemy:      p.Enemy,
			Default:    p.Default,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path, fills unset fields from Default, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// An empty path yields the defaults.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	merged := Merge(*c, fileCfg)

	// Relative dataset paths are resolved against the config file directory
	// when that file exists, otherwise against the working directory.
	if merged.Dataset.Path != "" && !filepath.IsAbs(merged.Dataset.Path) {
		cand := filepath.Join(filepath.Dir(path), merged.Dataset.Path)
		if _, err := os.Stat(cand); err == nil {
			merged.Dataset.Path = cand
		}
	}
	return &merged, nil
}

// ApplyEnv overlays DATASET_PATH, API_PORT, API_ENV and STATIC_DIR.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DATASET_PATH"); v != "" {
		c.Dataset.Path = v
	}
	if v := os.Getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Dataset.Path == "" {
		return errors.New("dataset.path is required")
	}
	if _, err := c.CSVOptions(); err != nil {
		return err
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	if len(c.Selection.GroupSizes) == 0 {
		return errors.New("selection.group_sizes must not be empty")
	}
	if c.Selection.EnemyMin < 1 {
		return fmt.Errorf("selection.enemy_min must be >= 1, got %d", c.Selection.EnemyMin)
	}
	if c.Selection.EnemyMax < c.Selection.EnemyMin {
		return fmt.Errorf("selection.enemy_max (%d) < enemy_min (%d)", c.Selection.EnemyMax, c.Selection.EnemyMin)
	}
	for k := range c.Palette.MetricHues {
		if _, ok := model.ParseMetricKind(k); !ok {
			return fmt.Errorf("palette.metric_hues: unknown metric %q", k)
		}
	}
	return nil
}

// Production reports whether the server runs in release mode.
func (c *Config) Production() bool {
	return c.Server.Env == "production"
}

// CSVOptions converts the separator settings into loader options.
func (c *Config) CSVOptions() (data.CSVOptions, error) {
	sep, err := singleRune("dataset.separator", c.Dataset.Separator)
	if err != nil {
		return data.CSVOptions{}, err
	}
	dec, err := singleRune("dataset.decimal", c.Dataset.Decimal)
	if err != nil {
		return data.CSVOptions{}, err
	}
	if sep == dec {
		return data.CSVOptions{}, fmt.Errorf("dataset.separator and dataset.decimal must differ, both are %q", sep)
	}
	return data.CSVOptions{Comma: sep, Decimal: dec}, nil
}

func (c *Config) CacheTTL() (time.Duration, error) {
	if c.Dataset.CacheTTL == "" || c.Dataset.CacheTTL == "0" {
		return 0, nil
	}
	d, err := str2duration.ParseDuration(c.Dataset.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("dataset.cache_ttl: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("dataset.cache_ttl must not be negative, got %s", c.Dataset.CacheTTL)
	}
	return d, nil
}

// ExplorePalette builds the bar palette; unset entries keep their defaults.
func (c *Config) ExplorePalette() explore.Palette {
	p := explore.DefaultPalette()
	if c.Palette.EnemyFirst != "" {
		p.EnemyFirst = c.Palette.EnemyFirst
	}
	if c.Palette.Friendly != "" {
		p.Friendly = c.Palette.Friendly
	}
	if c.Palette.Enemy != "" {
		p.Enemy = c.Palette.Enemy
	}
	if c.Palette.Default != "" {
		p.Default = c.Palette.Default
	}
	for k, v := range c.Palette.MetricHues {
		if kind, ok := model.ParseMetricKind(k); ok && v != "" {
			p.MetricHues[kind] = v
		}
	}
	return p
}

// AllowsGroupSize reports whether n is one of the configured group sizes.
func (s SelectionConfig) AllowsGroupSize(n int) bool {
	for _, g := range s.GroupSizes {
		if g == n {
			return true
		}
	}
	return false
}

func (s SelectionConfig) AllowsEnemyCount(n int) bool {
	return n >= s.EnemyMin && n <= s.EnemyMax
}

func singleRune(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Merge overlays non-zero fields from override onto base.
func Merge(base, override Config) Config {
	out := base
	if override.Dataset.Path != "" {
		out.Dataset.Path = override.Dataset.Path
	}
	if override.Dataset.Separator != "" {
		out.Dataset.Separator = override.Dataset.Separator
	}
	if override.Dataset.Decimal != "" {
		out.Dataset.Decimal = override.Dataset.Decimal
	}
	if override.Dataset.CacheTTL != "" {
		out.Dataset.CacheTTL = override.Dataset.CacheTTL
	}

	if override.Server.Port != "" {
		out.Server.Port = override.Server.Port
	}
	if override.Server.Env != "" {
		out.Server.Env = override.Server.Env
	}
	if override.Server.StaticDir != "" {
		out.Server.StaticDir = override.Server.StaticDir
	}
	if len(override.Server.AllowedOrigins) > 0 {
		out.Server.AllowedOrigins = override.Server.AllowedOrigins
	}

	if len(override.Selection.GroupSizes) > 0 {
		out.Selection.GroupSizes = override.Selection.GroupSizes
	}
	if override.Selection.EnemyMin != 0 {
		out.Selection.EnemyMin = override.Selection.EnemyMin
	}
	if override.Selection.EnemyMax != 0 {
		out.Selection.EnemyMax = override.Selection.EnemyMax
	}

	if override.Palette.EnemyFirst != "" {
		out.Palette.EnemyFirst = override.Palette.EnemyFirst
	}
	if override.Palette.Friendly != "" {
		out.Palette.Friendly = override.Palette.Friendly
	}
	if override.Palette.Enemy != "" {
		out.Palette.Enemy = override.Palette.Enemy
	}
	if override.Palette.Default != "" {
		out.Palette.Default = override.Palette.Default
	}
	if len(override.Palette.MetricHues) > 0 {
		out.Palette.MetricHues = override.Palette.MetricHues
	}

	if override.Log.Level != "" {
		out.Log.Level = override.Log.Level
	}
	if override.Log.Colored != nil {
		out.Log.Colored = override.Log.Colored
	}
	if override.Log.JSON != nil {
		out.Log.JSON = override.Log.JSON
	}
	return out
}
