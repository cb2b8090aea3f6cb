// internal/config/config.go
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

type Config struct {
	App struct {
		Port      int    `yaml:"port" json:"port"`
		DataDir   string `yaml:"data_dir" json:"data_dir"`
		StaticDir string `yaml:"static_dir" json:"static_dir"`
	} `yaml:"app" json:"app"`

	History struct {
		Path string `yaml:"path" json:"path"`
	} `yaml:"history" json:"history"`

	Catalogue struct {
		Path string `yaml:"path" json:"path"`
	} `yaml:"catalogue" json:"catalogue"`

	Profile struct {
		Path      string `yaml:"path" json:"path"`
		Signature string `yaml:"signature" json:"signature"`
	} `yaml:"profile" json:"profile"`

	Recommend struct {
		WindowDays     int    `yaml:"window_days" json:"window_days"`
		MaxOfficial    int    `yaml:"max_official" json:"max_official"`
		MaxSpeculative int    `yaml:"max_speculative" json:"max_speculative"`
		Seed           uint64 `yaml:"seed" json:"seed"`
	} `yaml:"recommend" json:"recommend"`

	Import struct {
		MaxUploadMB int     `yaml:"max_upload_mb" json:"max_upload_mb"`
		PerMinute   float64 `yaml:"per_minute" json:"per_minute"`
		Burst       int     `yaml:"burst" json:"burst"`
	} `yaml:"import" json:"import"`

	Export struct {
		Command        []string `yaml:"command" json:"command"`
		TimeoutSeconds int      `yaml:"timeout_seconds" json:"timeout_seconds"`
	} `yaml:"export" json:"export"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("config: embedded default.yml: " + err.Error())
	}
	return cfg
}

// Load reads path over the defaults, so keys missing from the file keep
// their default values, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// ApplyEnv overrides settings from JOBHUNT_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("JOBHUNT_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
	if v := os.Getenv("JOBHUNT_DATA_DIR"); v != "" {
		cfg.App.DataDir = v
	}
	if v := os.Getenv("JOBHUNT_SEED"); v != "" {
		if s, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Recommend.Seed = s
		}
	}
}

// Resolve makes p absolute against the data dir. Empty stays empty.
func (c Config) Resolve(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	dir := c.App.DataDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, p)
}

func (c Config) HistoryPath() string   { return c.Resolve(c.History.Path) }
func (c Config) CataloguePath() string { return c.Resolve(c.Catalogue.Path) }
func (c Config) ProfilePath() string   { return c.Resolve(c.Profile.Path) }
func (c Config) StaticDir() string     { return c.Resolve(c.App.StaticDir) }

func (c Config) MaxUploadBytes() int64 {
	return int64(c.Import.MaxUploadMB) << 20
}

func (c Config) ExportTimeout() time.Duration {
	return time.Duration(c.Export.TimeoutSeconds) * time.Second
}
