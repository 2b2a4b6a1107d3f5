package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/discordhook/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	DiscordConfig    DiscordConfig    `json:"discord_config,omitempty" yaml:"discord_config,omitempty"`
	HTTPClientConfig HTTPClientConfig `json:"http_client_config,omitempty" yaml:"http_client_config,omitempty"`
	LogConfig        LogConfig        `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DiscordConfig:    NewDefaultDiscordConfig(),
		HTTPClientConfig: NewDefaultHTTPClientConfig(),
		LogConfig:        NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig builds the configuration from defaults, then the config
// file resolved by GetConfigPath, then environment overrides. YAML is used for
// .yaml and .yml files, JSON otherwise.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath != "" && !fileExists(providedPath) {
		return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	filePath := GetConfigPath(providedPath)
	if filePath != "" {
		data, err := loadConfigFileContent(filePath)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to load config file content")
		}

		if err := parseConfigContent(data, filePath, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse config content")
		}
		logger.Debug().Str("path", filePath).Msg("Loaded config file")
	}

	if err := ApplyEnvOverrides(cfg, ""); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadConfigFileContent(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigFileSize {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "config file exceeds 10MB")
	}
	return os.ReadFile(filePath)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	if isYAMLFile(filepath.Ext(filePath)) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// SaveGlobalConfig writes cfg to filePath, creating parent directories.
func SaveGlobalConfig(cfg *GlobalConfig, filePath string, logger zerolog.Logger) error {
	if cfg == nil {
		return errorwrapper.NewValidationError("config", cfg, "config cannot be nil")
	}
	if filePath == "" {
		filePath = "config.yaml"
	}

	var data []byte
	var err error

	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return errorwrapper.NewError("failed to marshal config to YAML: %w", err)
		}
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errorwrapper.NewError("failed to marshal config to JSON: %w", err)
		}
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errorwrapper.WrapError(err, "failed to create config directory")
		}
	}
	// The file may carry a webhook token.
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return errorwrapper.WrapError(err, "failed to write config file")
	}

	logger.Info().
		Str("path", filePath).
		Str("format", ext).
		Msg("Successfully saved config file")

	return nil
}
