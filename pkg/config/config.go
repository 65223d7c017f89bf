package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the checkpoints plugin host
type Config struct {
	// Where the checkpoints file lives and how it is written
	Storage StorageConfig `yaml:"storage" json:"storage"`

	// Command registration
	Command CommandConfig `yaml:"command" json:"command"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// StorageConfig holds checkpoint file configuration
type StorageConfig struct {
	DataDir  string `yaml:"data_dir" json:"data_dir"`
	FileName string `yaml:"file_name" json:"file_name"`
	Indent   string `yaml:"indent" json:"indent"`
}

// CommandConfig holds command surface configuration
type CommandConfig struct {
	Name       string `yaml:"name" json:"name"`
	PlayerName string `yaml:"player_name" json:"player_name"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir:  defaultDataDir(),
			FileName: "checkpoints.json",
			Indent:   "  ",
		},
		Command: CommandConfig{
			Name:       "checkpoints",
			PlayerName: "console",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// CheckpointPath returns the full path of the checkpoints file
func (c *Config) CheckpointPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.FileName)
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if dataDir := os.Getenv("CHECKPOINTS_DATA_DIR"); dataDir != "" {
		c.Storage.DataDir = dataDir
	}
	if fileName := os.Getenv("CHECKPOINTS_FILE"); fileName != "" {
		c.Storage.FileName = fileName
	}
	if name := os.Getenv("CHECKPOINTS_COMMAND"); name != "" {
		c.Command.Name = name
	}
	if player := os.Getenv("CHECKPOINTS_PLAYER"); player != "" {
		c.Command.PlayerName = player
	}
	if logLevel := os.Getenv("CHECKPOINTS_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("CHECKPOINTS_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	home := os.Getenv("HOME")
	locations := []string{
		".checkpoints.yaml",
		".checkpoints.yml",
		filepath.Join(home, ".config", "checkpoints", "config.yaml"),
		filepath.Join(home, ".config", "checkpoints", "config.yml"),
		filepath.Join(home, ".checkpoints.yaml"),
		filepath.Join(home, ".checkpoints.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Storage.DataDir == "" {
		errs = append(errs, errors.New("data directory is required"))
	}
	if c.Storage.FileName == "" {
		errs = append(errs, errors.New("checkpoints file name is required"))
	}
	if strings.ContainsAny(c.Storage.FileName, `/\`) {
		errs = append(errs, errors.New("checkpoints file name must not contain path separators"))
	}
	if strings.Trim(c.Storage.Indent, " \t") != "" {
		errs = append(errs, errors.New("indent may only contain spaces and tabs"))
	}

	if c.Command.Name == "" {
		errs = append(errs, errors.New("command name is required"))
	}
	if strings.ContainsAny(c.Command.Name, " \t/") {
		errs = append(errs, errors.New("command name must be a single word"))
	}
	if c.Command.PlayerName == "" {
		errs = append(errs, errors.New("player name is required"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if dataDir, ok := flags["data-dir"].(string); ok && dataDir != "" {
		c.Storage.DataDir = dataDir
	}
	if fileName, ok := flags["file"].(string); ok && fileName != "" {
		c.Storage.FileName = fileName
	}
	if player, ok := flags["player"].(string); ok && player != "" {
		c.Command.PlayerName = player
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".checkpoints.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// defaultDataDir returns the platform data directory for the plugin, falling back
// to a local folder when it cannot be determined
func defaultDataDir() string {
	switch runtime.GOOS {
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support", "checkpoints")
		}
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "checkpoints")
		}
	default:
		if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
			return filepath.Join(xdgDataHome, "checkpoints")
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".local", "share", "checkpoints")
		}
	}
	return "plugins/checkpoints"
}
