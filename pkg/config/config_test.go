package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.Storage.DataDir)
	assert.Equal(t, "checkpoints.json", cfg.Storage.FileName)
	assert.Equal(t, "  ", cfg.Storage.Indent)
	assert.Equal(t, "checkpoints", cfg.Command.Name)
	assert.Equal(t, "console", cfg.Command.PlayerName)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)

	require.NoError(t, cfg.Validate())
}

func TestDefaultDataDirUsesXDG(t *testing.T) {
	if filepath.Separator != '/' || os.Getenv("APPDATA") != "" {
		t.Skip("XDG layout only applies to unix-like systems")
	}
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	cfg := DefaultConfig()
	if cfg.Storage.DataDir != filepath.Join("/tmp/xdg", "checkpoints") {
		t.Skipf("platform data dir in use: %s", cfg.Storage.DataDir)
	}
	assert.Equal(t, "/tmp/xdg/checkpoints/checkpoints.json", cfg.CheckpointPath())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHECKPOINTS_DATA_DIR", "/srv/plugins/checkpoints")
	t.Setenv("CHECKPOINTS_FILE", "spawn.json")
	t.Setenv("CHECKPOINTS_COMMAND", "cp")
	t.Setenv("CHECKPOINTS_PLAYER", "steve")
	t.Setenv("CHECKPOINTS_LOG_LEVEL", "debug")
	t.Setenv("CHECKPOINTS_LOG_FILE", "/var/log/checkpoints.log")

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromEnv())

	assert.Equal(t, "/srv/plugins/checkpoints", cfg.Storage.DataDir)
	assert.Equal(t, "spawn.json", cfg.Storage.FileName)
	assert.Equal(t, "cp", cfg.Command.Name)
	assert.Equal(t, "steve", cfg.Command.PlayerName)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/var/log/checkpoints.log", cfg.Logging.File)
	assert.Equal(t, filepath.Join("/srv/plugins/checkpoints", "spawn.json"), cfg.CheckpointPath())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Storage: StorageConfig{DataDir: "plugins/checkpoints", FileName: "checkpoints.json", Indent: "  "},
			Command: CommandConfig{Name: "checkpoints", PlayerName: "console"},
			Logging: LoggingConfig{Level: "info"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError bool
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "tab indent", mutate: func(c *Config) { c.Storage.Indent = "\t" }},
		{name: "compact output", mutate: func(c *Config) { c.Storage.Indent = "" }},
		{name: "missing data dir", mutate: func(c *Config) { c.Storage.DataDir = "" }, wantError: true},
		{name: "missing file name", mutate: func(c *Config) { c.Storage.FileName = "" }, wantError: true},
		{name: "file name with separator", mutate: func(c *Config) { c.Storage.FileName = "a/b.json" }, wantError: true},
		{name: "non whitespace indent", mutate: func(c *Config) { c.Storage.Indent = "--" }, wantError: true},
		{name: "missing command name", mutate: func(c *Config) { c.Command.Name = "" }, wantError: true},
		{name: "command name with space", mutate: func(c *Config) { c.Command.Name = "check points" }, wantError: true},
		{name: "missing player name", mutate: func(c *Config) { c.Command.PlayerName = "" }, wantError: true},
		{name: "invalid log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeCommandLineFlags(t *testing.T) {
	cfg := DefaultConfig()

	cfg.MergeCommandLineFlags(map[string]interface{}{
		"data-dir":  "/flag/data",
		"file":      "flag.json",
		"player":    "alex",
		"log-level": "error",
	})

	assert.Equal(t, "/flag/data", cfg.Storage.DataDir)
	assert.Equal(t, "flag.json", cfg.Storage.FileName)
	assert.Equal(t, "alex", cfg.Command.PlayerName)
	assert.Equal(t, "error", cfg.Logging.Level)

	// Empty and mistyped values are ignored
	cfg.MergeCommandLineFlags(map[string]interface{}{
		"data-dir":  "",
		"log-level": 3,
	})
	assert.Equal(t, "/flag/data", cfg.Storage.DataDir)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestSaveAndLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Storage.DataDir = "/srv/world/plugins/checkpoints"
	cfg.Storage.Indent = "\t"
	cfg.Command.Name = "cp"

	require.NoError(t, cfg.Save(configPath))

	loaded := DefaultConfig()
	require.NoError(t, loaded.LoadFromFile(configPath))

	assert.Equal(t, "/srv/world/plugins/checkpoints", loaded.Storage.DataDir)
	assert.Equal(t, "\t", loaded.Storage.Indent)
	assert.Equal(t, "cp", loaded.Command.Name)
	assert.Equal(t, "checkpoints.json", loaded.Storage.FileName)
}

func TestLoadFromFileErrors(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("storage: [unclosed"), 0644))
	assert.Error(t, cfg.LoadFromFile(bad))
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
storage:
  data_dir: /from/file
  file_name: file.json
logging:
  level: warn
`), 0644))

	t.Setenv("CHECKPOINTS_FILE", "env.json")
	t.Setenv("CHECKPOINTS_LOG_LEVEL", "")

	cfg, err := Load(configPath, map[string]interface{}{"data-dir": "/from/flag"})
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.Storage.DataDir)
	assert.Equal(t, "env.json", cfg.Storage.FileName)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: loud\n"), 0644))
	t.Setenv("CHECKPOINTS_LOG_LEVEL", "")

	_, err := Load(configPath, nil)
	assert.Error(t, err)
}
