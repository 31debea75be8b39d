package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# BG3 Checklist Configuration

# Where each act's item sheet is read from. A local file wins over the url.
sheets:
  - act: 1
    url: ` + DefaultSheetBaseURL + `0
  - act: 2
    url: ` + DefaultSheetBaseURL + `1427789417
  - act: 3
    url: ` + DefaultSheetBaseURL + `309772712
    # file: sheets/act3.csv

# Generated catalog artifacts (or set CHECKLIST_DATA_DIR env var)
data_dir: .checklist/data
builds_file: .checklist/data/builds-equipment.json

# Items whose effect text carries over to the next item on the sheet
carry_over_names:
  - Sussur Greatsword
  - Sussur Dagger
  - Infernal Spear
  - Vicious Battleaxe
  - Dolor Amarus

state:
  backend: sqlite # or file (or set CHECKLIST_STATE_BACKEND env var)
  # path: .checklist/state.db

view:
  page_size: 15 # 10, 15, 20, 25 or 50

log_level: info # or set CHECKLIST_LOG_LEVEL env var
`

// WriteDefault creates the .checklist directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Write writes the given config to the config file.
func Write(basePath string, cfg *Config) error {
	configDir := ConfigDir(basePath)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a checklist config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
