// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/bg3-checklist/internal/infrastructure/parsers"
)

const (
	// DefaultConfigDir is the directory name for checklist configuration.
	DefaultConfigDir = ".checklist"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDataDir is where generated catalog artifacts are written.
	DefaultDataDir = DefaultConfigDir + "/data"
	// DefaultBuildsFile is the build-equipment dataset path.
	DefaultBuildsFile = DefaultDataDir + "/builds-equipment.json"
	// DefaultSQLitePath is the state database used by the sqlite backend.
	DefaultSQLitePath = DefaultConfigDir + "/state.db"
	// DefaultStateDir is the state directory used by the file backend.
	DefaultStateDir = DefaultConfigDir + "/state"
	// DefaultPageSize is the number of items per page.
	DefaultPageSize = 15
	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// State backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Environment variable overrides.
const (
	EnvDataDir      = "CHECKLIST_DATA_DIR"
	EnvStateBackend = "CHECKLIST_STATE_BACKEND"
	EnvLogLevel     = "CHECKLIST_LOG_LEVEL"
)

// Config holds the checklist configuration (read-only after load).
type Config struct {
	Sheets         []SheetConfig `yaml:"sheets,omitempty"`
	DataDir        string        `yaml:"data_dir,omitempty"`
	BuildsFile     string        `yaml:"builds_file,omitempty"`
	CarryOverNames []string      `yaml:"carry_over_names,omitempty"`
	State          StateConfig   `yaml:"state,omitempty"`
	View           ViewConfig    `yaml:"view,omitempty"`
	LogLevel       string        `yaml:"log_level,omitempty"`
}

// StateConfig holds configuration for the persisted client state.
type StateConfig struct {
	// Backend is either "sqlite" or "file".
	Backend string `yaml:"backend,omitempty"`
	// Path is the database file for sqlite or the directory for file.
	// Empty selects the backend's default location.
	Path string `yaml:"path,omitempty"`
}

// ViewConfig holds list view defaults.
type ViewConfig struct {
	PageSize int `yaml:"page_size,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Sheets:         DefaultSheets(),
		DataDir:        DefaultDataDir,
		BuildsFile:     DefaultBuildsFile,
		CarryOverNames: slices.Clone(parsers.DefaultCarryOverNames),
		State: StateConfig{
			Backend: BackendSQLite,
		},
		View: ViewConfig{
			PageSize: DefaultPageSize,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load loads configuration from the .checklist directory in the given path.
// A .env file in basePath is read first when present.
func Load(basePath string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(basePath, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'checklist init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Acts missing from the file keep their default sheet.
	cfg.Sheets = mergeSheets(DefaultSheets(), cfg.Sheets)

	// Apply environment variable overrides
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.resolvePaths(basePath)
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.DataDir = dir
	}
	if backend := os.Getenv(EnvStateBackend); backend != "" {
		c.State.Backend = strings.ToLower(backend)
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	switch c.State.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("unknown state backend %q (want %s or %s)", c.State.Backend, BackendSQLite, BackendFile)
	}

	seen := make(map[int]bool, len(c.Sheets))
	for _, s := range c.Sheets {
		if s.Act < 1 || s.Act > 3 {
			return fmt.Errorf("sheet for unknown act %d", s.Act)
		}
		if seen[s.Act] {
			return fmt.Errorf("act %d has more than one sheet", s.Act)
		}
		if s.URL == "" && s.File == "" {
			return fmt.Errorf("sheet for act %d needs a url or a file", s.Act)
		}
		seen[s.Act] = true
	}
	for act := 1; act <= 3; act++ {
		if !seen[act] {
			return fmt.Errorf("no sheet configured for act %d", act)
		}
	}
	return nil
}

// StatePath returns the configured state location or the backend's default.
func (c *Config) StatePath() string {
	if c.State.Path != "" {
		return c.State.Path
	}
	if c.State.Backend == BackendFile {
		return DefaultStateDir
	}
	return DefaultSQLitePath
}

// resolvePaths makes relative paths relative to basePath.
func (c *Config) resolvePaths(basePath string) {
	c.DataDir = resolve(basePath, c.DataDir)
	c.BuildsFile = resolve(basePath, c.BuildsFile)
	c.State.Path = resolve(basePath, c.StatePath())
	for i := range c.Sheets {
		c.Sheets[i].File = resolve(basePath, c.Sheets[i].File)
	}
}

func resolve(basePath, p string) string {
	if p == "" || p == ":memory:" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(basePath, p)
}

// ConfigDir returns the path to the .checklist config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
