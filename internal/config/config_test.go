package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "configs", "config.toml")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "_processed", cfg.Extract.OutputSuffix)
	assert.Empty(t, cfg.Extract.Sheet)
	assert.Equal(t, "data/input", cfg.Batch.InputDirectory)
	assert.Equal(t, "data/output", cfg.Batch.OutputDirectory)
	assert.Equal(t, 8, cfg.UI.PreviewRows)

	// The default file is written so users can edit it
	_, err = os.Stat(configPath)
	require.NoError(t, err)
}

func TestLoadConfigReadsExisting(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
[extract]
output_suffix = "_slim"
sheet = "Data"

[batch]
input_directory = "in"
output_directory = "out"

[ui]
preview_rows = 4
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "_slim", cfg.Extract.OutputSuffix)
	assert.Equal(t, "Data", cfg.Extract.Sheet)
	assert.Equal(t, "in", cfg.Batch.InputDirectory)
	assert.Equal(t, "out", cfg.Batch.OutputDirectory)
	assert.Equal(t, 4, cfg.UI.PreviewRows)
}

func TestLoadConfigBackfillsMissingValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
[extract]
output_suffix = "_trimmed"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "_trimmed", cfg.Extract.OutputSuffix)
	assert.Equal(t, "data/input", cfg.Batch.InputDirectory)
	assert.Equal(t, "data/output", cfg.Batch.OutputDirectory)
	assert.Equal(t, 8, cfg.UI.PreviewRows)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("not [valid toml"), 0o644))

	_, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	saved := &Config{
		Extract: ExtractConfig{OutputSuffix: "_x", Sheet: "S"},
		Batch:   BatchConfig{InputDirectory: "a", OutputDirectory: "b"},
		UI:      UIConfig{PreviewRows: 3},
	}
	require.NoError(t, SaveConfig(configPath, saved))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}
