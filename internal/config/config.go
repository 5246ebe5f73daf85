package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sheetCut/internal/logger"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Extract ExtractConfig `toml:"extract"`
	Batch   BatchConfig   `toml:"batch"`
	UI      UIConfig      `toml:"ui"`
}

type ExtractConfig struct {
	OutputSuffix string `toml:"output_suffix"`
	Sheet        string `toml:"sheet"`
}

type BatchConfig struct {
	InputDirectory  string `toml:"input_directory"`
	OutputDirectory string `toml:"output_directory"`
}

type UIConfig struct {
	PreviewRows int `toml:"preview_rows"`
}

// LoadConfig loads configuration from the specified config file path
func LoadConfig(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Create configs directory if it doesn't exist
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %v", err)
		}

		// Create default config file
		defaultConfig := &Config{
			Extract: ExtractConfig{
				OutputSuffix: "_processed",
				Sheet:        "",
			},
			Batch: BatchConfig{
				InputDirectory:  "data/input",
				OutputDirectory: "data/output",
			},
			UI: UIConfig{
				PreviewRows: 8,
			},
		}

		err = SaveConfig(configPath, defaultConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create default config: %v", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	// Load existing config
	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %v", configPath, err)
	}

	// Set defaults if missing
	if config.Extract.OutputSuffix == "" {
		config.Extract.OutputSuffix = "_processed"
	}
	if config.Batch.InputDirectory == "" {
		config.Batch.InputDirectory = "data/input"
	}
	if config.Batch.OutputDirectory == "" {
		config.Batch.OutputDirectory = "data/output"
	}
	if config.UI.PreviewRows == 0 {
		config.UI.PreviewRows = 8
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	err = encoder.Encode(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
