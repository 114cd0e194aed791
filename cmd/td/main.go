// Package main implements the td CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/category"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/paths"
	"github.com/taskdeck/taskdeck/internal/storage"
	"github.com/taskdeck/taskdeck/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "td",
	Short: "Taskdeck - track tasks from the command line",
}

var rootDataDir string

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDataDir, "data-dir", "", "Data directory (default $TASKDECK_DATA_DIR or ~/.local/share/taskdeck)")
}

// loadConfig loads taskdeck.toml from the working directory, merged with
// the global config file.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Load(cwd)
}

// resolveDataDir picks the data directory: the --data-dir flag wins, then
// the config file, then $TASKDECK_DATA_DIR or the default location.
func resolveDataDir(cfg *config.Config) (string, error) {
	if rootDataDir != "" {
		return rootDataDir, nil
	}
	if cfg.Data.Dir != "" {
		return cfg.Data.Dir, nil
	}
	return paths.DefaultDataDir()
}

func openStore() (*storage.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	dir, err := resolveDataDir(cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.Open(dir)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

func openTaskService() (*task.Service, *config.Config, error) {
	store, cfg, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return task.NewService(store), cfg, nil
}

func openCategoryService() (*category.Service, error) {
	store, _, err := openStore()
	if err != nil {
		return nil, err
	}
	return category.NewService(store), nil
}
