package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "diary.db", c.DatabasePath)
	assert.Equal(t, "export", c.ExportDir)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"diary"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "diary.db", cfg.DatabasePath)
	assert.Equal(t, "export", cfg.ExportDir)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"diary", "-d", "custom.db", "-e", "out"}

	cfg := LoadConfig()

	assert.Equal(t, "custom.db", cfg.DatabasePath)
	assert.Equal(t, "out", cfg.ExportDir)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"database_path":"json.db"}`), 0o600))

	os.Args = []string{"diary", "-c", file}

	cfg := LoadConfig()

	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, "export", cfg.ExportDir, "fields absent from JSON keep defaults")
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"database_path":"json.db"}`), 0o600))

	os.Args = []string{"diary", "-c", file, "-d", "flag.db"}

	cfg := LoadConfig()

	assert.Equal(t, "flag.db", cfg.DatabasePath, "flags take precedence over JSON")
}
