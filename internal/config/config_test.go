package config

import (
	"os"
	"path/filepath"
	"testing"

	"concept-visualizer/internal/logger"
	"concept-visualizer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LOG_LEVEL", "DEBUG", EnvConfigPath, EnvCatalog, EnvOpener} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFileAndResolveCatalogPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
window:
  width: 1280
  height: 720
catalog_file: sims.yaml
opener: command
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, float32(1280), cfg.Window.Width)
	assert.Equal(t, filepath.Join(dir, "sims.yaml"), cfg.CatalogFile)
	assert.Equal(t, OpenerCommand, cfg.Opener)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("LOG_LEVEL wins over DEBUG", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_LEVEL", "error")
		t.Setenv("DEBUG", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("DEBUG enables debug level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DEBUG", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("catalog and opener", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvCatalog, "/tmp/sims.yaml")
		t.Setenv(EnvOpener, OpenerCommand)

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "/tmp/sims.yaml", cfg.CatalogFile)
		assert.Equal(t, OpenerCommand, cfg.Opener)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad opener", func(c *Config) { c.Opener = "telnet" }},
		{"tiny window", func(c *Config) { c.Window.Width = 100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadRejectsMalformedDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("KEY=\"unterminated\n"), 0644))
	t.Chdir(dir)

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env")
}

func TestLoadWithoutDotEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Log.Level, cfg.Log.Level)
}

func TestParseCatalog(t *testing.T) {
	catalog, table, err := ParseCatalog([]byte(`
simulations:
  - name: "Physics — Gravity Force Lab"
    url: https://phet.colorado.edu/sims/html/gravity-force-lab/latest/gravity-force-lab_en.html
    assessment:
      hint: Double the distance. By what factor does the force shrink?
      expected: 4
      tolerance: 0
  - name: "Math — Area Builder"
    url: https://phet.colorado.edu/sims/html/area-builder/latest/area-builder_en.html
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Physics — Gravity Force Lab", "Math — Area Builder"}, catalog.Names())
	assert.Equal(t, "Double the distance. By what factor does the force shrink?", table.Hint("Physics — Gravity Force Lab"))
	assert.Equal(t, models.DefaultHint, table.Hint("Math — Area Builder"))
	assert.True(t, table.CheckPrediction("Physics — Gravity Force Lab", "4").OK)
}

func TestParseCatalogErrors(t *testing.T) {
	_, _, err := ParseCatalog([]byte("simulations: []"))
	assert.Error(t, err)

	_, _, err = ParseCatalog([]byte(`
simulations:
  - name: A
    url: not a url
`))
	assert.ErrorIs(t, err, models.ErrInvalidURL)

	_, _, err = ParseCatalog([]byte("simulations: [oops"))
	assert.Error(t, err)
}

func TestParseCatalogRejectsNegativeTolerance(t *testing.T) {
	for _, tolerance := range []string{"-1", ".nan"} {
		_, _, err := ParseCatalog([]byte(`
simulations:
  - name: "Physics — Gravity Force Lab"
    url: https://phet.colorado.edu/sims/html/gravity-force-lab/latest/gravity-force-lab_en.html
    assessment:
      hint: Double the distance.
      expected: 4
      tolerance: ` + tolerance + `
`))
		require.Error(t, err, tolerance)
		assert.Contains(t, err.Error(), "tolerance")
	}
}

func TestLoadCatalogDefault(t *testing.T) {
	catalog, table, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())
	assert.NoError(t, table.Validate(catalog))
}
