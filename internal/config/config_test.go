package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{EnvDataDir, EnvBackend, EnvTheme, EnvGoal} {
		t.Setenv(k, "")
	}
	return home
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".tracalorie"), cfg.DataDir)
	assert.Equal(t, BackendJSON, cfg.Backend)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, 2000, cfg.DailyGoal)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: sqlite\ndaily_goal: 1800\ndata_dir: ~/food\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, 1800, cfg.DailyGoal)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, filepath.Join(home, "food"), cfg.DataDir)
	assert.Equal(t, filepath.Join(home, "food", "tracalorie.db"), cfg.SQLitePath())
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: sqlite\ntheme: neon\n"), 0o644))
	t.Setenv(EnvBackend, "JSON")
	t.Setenv(EnvGoal, "2500")
	t.Setenv(EnvDataDir, "/tmp/tracalorie-data")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendJSON, cfg.Backend)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, 2500, cfg.DailyGoal)
	assert.Equal(t, "/tmp/tracalorie-data", cfg.DataDir)
}

func TestLoad_BadGoalEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvGoal, "lots")

	_, err := Load("")
	assert.ErrorContains(t, err, EnvGoal)
}

func TestLoad_BadYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("daily_goal: [1, 2"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	valid := Config{DataDir: "/data", Backend: BackendJSON, Theme: "mono", DailyGoal: 0}
	require.NoError(t, valid.Validate())

	cases := map[string]func(*Config){
		"backend":  func(c *Config) { c.Backend = "postgres" },
		"theme":    func(c *Config) { c.Theme = "pastel" },
		"goal":     func(c *Config) { c.DailyGoal = -1 },
		"data_dir": func(c *Config) { c.DataDir = "" },
	}
	for name, mutate := range cases {
		c := valid
		mutate(&c)
		assert.Error(t, c.Validate(), name)
	}
}
