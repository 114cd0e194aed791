// Package config handles loading taskdeck.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the taskdeck.toml configuration file.
type Config struct {
	Data Data `toml:"data"`
	List List `toml:"list"`
}

// Data contains storage-related configuration.
type Data struct {
	// Dir overrides the data directory holding the task collections.
	Dir string `toml:"dir"`
}

// List contains defaults for the list command.
type List struct {
	// Sort is the default sort option (for example "created_desc").
	Sort string `toml:"sort"`

	// Priority is the default priority applied to new tasks.
	Priority string `toml:"priority"`
}

// Load loads configuration from the working directory and the global
// config file. Project values win over global ones on a per-key basis.
// Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, "taskdeck.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "taskdeck", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	merged := Config{}
	merged.Data.Dir = mergeString(projectMeta.IsDefined("data", "dir"), projectCfg.Data.Dir, globalCfg.Data.Dir)
	merged.List.Sort = mergeString(projectMeta.IsDefined("list", "sort"), projectCfg.List.Sort, globalCfg.List.Sort)
	merged.List.Priority = mergeString(projectMeta.IsDefined("list", "priority"), projectCfg.List.Priority, globalCfg.List.Priority)
	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
