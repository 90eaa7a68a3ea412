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
	assert.Equal(t, "> ", cfg.Prompt)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, 500, cfg.History.Limit)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("DEVCON_PROMPT", "")
	t.Setenv("DEVCON_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Prompt, cfg.Prompt)
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("DEVCON_PROMPT", "")
	t.Setenv("DEVCON_HISTORY_PATH", "")
	t.Setenv("DEVCON_LOG_LEVEL", "")
	t.Setenv("DEVCON_LOG_PATH", "")

	path := filepath.Join(t.TempDir(), "devcon.yaml")

	cfg := DefaultConfig()
	cfg.Prompt = "dev# "
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev# ", loaded.Prompt)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DEVCON_PROMPT", "env> ")
	t.Setenv("DEVCON_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env> ", cfg.Prompt)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devcon.yaml")
	require.NoError(t, writeFile(path, "prompt: [unterminated"))

	_, err := Load(path)
	assert.Error(t, err)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"history without path", func(c *Config) { c.History.Path = "" }, true},
		{"history zero limit", func(c *Config) { c.History.Limit = 0 }, true},
		{"history disabled ignores path", func(c *Config) {
			c.History.Enabled = false
			c.History.Path = ""
			c.History.Limit = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
