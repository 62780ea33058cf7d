package config

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/aleister1102/siftview/internal/common/file"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	LogConfig     LogConfig     `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	StorageConfig StorageConfig `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	DiffConfig    DiffConfig    `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		LogConfig:     NewDefaultLogConfig(),
		StorageConfig: NewDefaultStorageConfig(),
		DiffConfig:    NewDefaultDiffConfig(),
	}
}

// LoadGlobalConfig resolves the config file with GetConfigPath and decodes
// it over the defaults, so absent keys keep their default values. An
// explicit path that does not exist is an error; finding no file at all
// is not.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	storage := file.NewStorage(logger)
	if providedPath != "" && !storage.Exists(providedPath) {
		return nil, common.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	cfg := NewDefaultGlobalConfig()
	path := GetConfigPath(providedPath)
	if path == "" {
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	opts := file.DefaultReadOptions()
	opts.MaxSize = MaxConfigFileSize
	content, err := storage.Read(context.Background(), path, opts)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := decodeConfig(content, path, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", path).Msg("Config file loaded")
	return cfg, nil
}

// decodeConfig picks YAML for .yaml/.yml files and JSON for anything else
func decodeConfig(content, path string, cfg *GlobalConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return common.NewError("failed to unmarshal YAML from '%s': %w", path, err)
		}
	default:
		if err := json.Unmarshal([]byte(content), cfg); err != nil {
			return common.NewError("failed to unmarshal JSON from '%s': %w", path, err)
		}
	}
	return nil
}
