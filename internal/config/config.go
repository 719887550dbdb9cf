// Package config loads runtime configuration from environment variables
// and an optional YAML file, and carries the built-in report definitions
// that describe how each workbook sheet is laid out.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Target  TargetConfig  `yaml:"target" envconfig:"TARGET"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format      string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output      string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT" default:"false"`
}

// PathsConfig contains file system paths configuration.
type PathsConfig struct {
	WorkbookPath string `yaml:"workbook_path" envconfig:"WORKBOOK_PATH"`
	ReportsFile  string `yaml:"reports_file" envconfig:"REPORTS_FILE"`
	OutputDir    string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"out"`
	LogsDir      string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// TargetConfig names the reporting period to generate. Zero values mean
// "detect the latest period present in the workbook".
type TargetConfig struct {
	Year     int `yaml:"year" envconfig:"YEAR"`
	Quarter  int `yaml:"quarter" envconfig:"QUARTER"`
	TopCount int `yaml:"top_count" envconfig:"TOP_COUNT" default:"2"`
}

// Load loads configuration from environment variables and config file.
// Environment variables take precedence over the file.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("REGI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence).
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Paths.WorkbookPath == "" {
		envConfig.Paths.WorkbookPath = fileConfig.Paths.WorkbookPath
	}
	if envConfig.Paths.ReportsFile == "" {
		envConfig.Paths.ReportsFile = fileConfig.Paths.ReportsFile
	}
	if envConfig.Target.Year == 0 {
		envConfig.Target.Year = fileConfig.Target.Year
	}
	if envConfig.Target.Quarter == 0 {
		envConfig.Target.Quarter = fileConfig.Target.Quarter
	}
	return envConfig
}

// GetOutputDir returns the resolved output directory path.
func (c *Config) GetOutputDir() string {
	if filepath.IsAbs(c.Paths.OutputDir) {
		return c.Paths.OutputDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return c.Paths.OutputDir
	}
	return filepath.Join(wd, c.Paths.OutputDir)
}

// validate normalizes and checks the configuration.
func (c *Config) validate() error {
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output != "console" && c.Logging.Output != "file" && c.Logging.Output != "both" {
		c.Logging.Output = "console"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/app.log"
	}

	if c.Target.Year != 0 && (c.Target.Year < 2000 || c.Target.Year > 2100) {
		return fmt.Errorf("invalid target year: %d", c.Target.Year)
	}
	if c.Target.Quarter != 0 && (c.Target.Quarter < 1 || c.Target.Quarter > 4) {
		return fmt.Errorf("invalid target quarter: %d", c.Target.Quarter)
	}
	if c.Target.TopCount < 1 {
		c.Target.TopCount = 2
	}

	return nil
}

// getConfigFilePath returns the path to the config file.
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/app.log",
		},
		Paths: PathsConfig{
			OutputDir: "out",
			LogsDir:   "logs",
		},
		Target: TargetConfig{
			TopCount: 2,
		},
	}
}
