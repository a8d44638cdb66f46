// Package config loads application configuration from environment variables
// (prefix CLEANPRO) merged with an optional YAML file. Keys present in the
// file win over environment values; struct-tag defaults fill the rest.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix namespaces all environment variables, e.g. CLEANPRO_PATHS_DATA_DIR.
const envPrefix = "CLEANPRO"

// configFileEnv points at an optional YAML config file.
const configFileEnv = "CLEANPRO_CONFIG_FILE"

// Config is the complete application configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	History  HistoryConfig  `yaml:"history" envconfig:"HISTORY"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
}

// PathsConfig holds the data directories the service writes artifacts into.
type PathsConfig struct {
	DataDir      string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data" validate:"required"`
	RawDir       string `yaml:"raw_dir" envconfig:"RAW_DIR" default:"data/raw" validate:"required"`
	ProcessedDir string `yaml:"processed_dir" envconfig:"PROCESSED_DIR" default:"data/processed" validate:"required"`
	ReportsDir   string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"reports" validate:"required"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/cleanpro.log"`
}

// HistoryConfig controls the run-history store.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	Path    string `yaml:"path" envconfig:"PATH" default:"data/clean_runs.db"`
}

// CleaningConfig carries pipeline and batch defaults.
type CleaningConfig struct {
	DropDuplicates   bool `yaml:"drop_duplicates" envconfig:"DROP_DUPLICATES" default:"true"`
	BatchConcurrency int  `yaml:"batch_concurrency" envconfig:"BATCH_CONCURRENCY" default:"4" validate:"min=1,max=64"`
}

// Load builds the configuration in increasing precedence: struct-tag
// defaults, then environment variables, then the optional YAML file. Only
// keys present in the file override the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if path := configFilePath(); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// EnsureDirectories creates every configured data directory.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Paths.DataDir,
		c.Paths.RawDir,
		c.Paths.ProcessedDir,
		c.Paths.ReportsDir,
	}
	if c.Logging.Output != "stdout" {
		dirs = append(dirs, filepath.Dir(c.Logging.FilePath))
	}
	if c.History.Enabled {
		dirs = append(dirs, filepath.Dir(c.History.Path))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

func configFilePath() string {
	if path := os.Getenv(configFileEnv); path != "" {
		return path
	}
	for _, candidate := range []string{"cleanpro.yml", "cleanpro.yaml"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
