// Package config loads tracalorie settings from ~/.tracalorie/config.yaml,
// then environment overrides. Flags are applied on top by the CLI before
// Validate is called.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

const (
	dirName        = ".tracalorie"
	configFileName = "config.yaml"

	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	// SQLiteFileName is the database file created inside DataDir.
	SQLiteFileName = "tracalorie.db"
)

// Environment overrides, checked before the config file values are kept.
const (
	EnvDataDir = "TRACALORIE_DATA_DIR"
	EnvBackend = "TRACALORIE_BACKEND"
	EnvTheme   = "TRACALORIE_THEME"
	EnvGoal    = "TRACALORIE_GOAL"
)

//go:embed schema.cue
var schemaCUE string

type Config struct {
	DataDir   string `yaml:"data_dir" json:"data_dir"`
	Backend   string `yaml:"backend" json:"backend"`
	Theme     string `yaml:"theme" json:"theme"`
	DailyGoal int    `yaml:"daily_goal" json:"daily_goal"` // 0 hides the goal bar
}

// Dir is ~/.tracalorie.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath is ~/.tracalorie/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func Default() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DataDir:   dir,
		Backend:   BackendJSON,
		Theme:     "classic",
		DailyGoal: 2000,
	}, nil
}

// Load reads path (DefaultPath when empty) over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return Config{}, err
		}
	}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.DataDir, err = expandHome(cfg.DataDir)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvDataDir)); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBackend)); v != "" {
		c.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		c.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvGoal)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: not a number: %s", EnvGoal, v)
		}
		c.DailyGoal = n
	}
	return nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

// Validate checks the merged configuration against the embedded CUE schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SQLitePath is the database location for the sqlite backend.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, SQLiteFileName)
}
