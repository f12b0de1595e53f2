package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"concept-visualizer/internal/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath = "CONCEPT_VISUALIZER_CONFIG"
	EnvCatalog    = "CONCEPT_VISUALIZER_CATALOG"
	EnvOpener     = "CONCEPT_VISUALIZER_OPENER"

	OpenerFyne    = "fyne"
	OpenerCommand = "command"
)

// Config holds all runtime configuration.
type Config struct {
	Log         LogConfig    `yaml:"log"`
	Window      WindowConfig `yaml:"window"`
	CatalogFile string       `yaml:"catalog_file,omitempty"`
	Opener      string       `yaml:"opener"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
	File   string `yaml:"file,omitempty"`
}

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Width:  1000,
			Height: 650,
		},
		Opener: OpenerFyne,
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// .env and environment overrides. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// .env is optional, but a malformed one is an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
			if cfg.CatalogFile != "" && !filepath.IsAbs(cfg.CatalogFile) {
				cfg.CatalogFile = filepath.Join(filepath.Dir(path), cfg.CatalogFile)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	} else if debug, _ := strconv.ParseBool(os.Getenv("DEBUG")); debug {
		c.Log.Level = "debug"
	}
	if path := os.Getenv(EnvCatalog); path != "" {
		c.CatalogFile = path
	}
	if opener := os.Getenv(EnvOpener); opener != "" {
		c.Opener = opener
	}
}

// Validate checks enumerations and window bounds.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format: unsupported format %q", c.Log.Format)
	}
	switch c.Opener {
	case OpenerFyne, OpenerCommand:
	default:
		return fmt.Errorf("opener: unsupported opener %q", c.Opener)
	}
	if c.Window.Width < 640 || c.Window.Height < 480 {
		return fmt.Errorf("window: %.0fx%.0f is below the 640x480 minimum", c.Window.Width, c.Window.Height)
	}
	return nil
}

// LogLevel returns the parsed level; Validate has already accepted it.
func (c *Config) LogLevel() logger.LogLevel {
	level, _ := logger.ParseLevel(c.Log.Level)
	return level
}

// NewLogger builds the logger described by the config. The returned
// close function releases the log file, if any.
func (c *Config) NewLogger() (logger.Logger, func() error, error) {
	level := c.LogLevel()
	if c.Log.File == "" {
		if c.Log.Format == "json" {
			return logger.NewFileLogger(level, os.Stdout), func() error { return nil }, nil
		}
		return logger.NewConsoleLogger(level), func() error { return nil }, nil
	}

	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger.NewFileLogger(level, f), f.Close, nil
}
