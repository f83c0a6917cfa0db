package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// EnvPrefix starts the name of every environment override.
const EnvPrefix = "NODECLASS_"

// LoadConfig loads configuration from a YAML file at path on fsys.
// It applies default values, validates the configuration, and returns any errors.
// The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention NODECLASS_SECTION_FIELD (e.g., NODECLASS_LOGGING_LEVEL).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(fsys afero.Fs, path string) (*Config, error) {
	cfg, err := LoadConfig(fsys, path)
	if err != nil {
		return nil, err
	}

	return overrideAndValidate(cfg)
}

// LoadOptional behaves like LoadConfigWithEnvOverrides but starts from
// Default when no file exists at path.
func LoadOptional(fsys afero.Fs, path string) (*Config, error) {
	cfg, err := LoadConfig(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	return overrideAndValidate(cfg)
}

func overrideAndValidate(cfg *Config) (*Config, error) {
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Values that fail to parse are ignored.
func applyEnvOverrides(cfg *Config) {
	// Logging overrides
	envString(&cfg.Logging.Level, "LOGGING_LEVEL")
	envString(&cfg.Logging.Format, "LOGGING_FORMAT")
	envBool(&cfg.Logging.AddSource, "LOGGING_ADD_SOURCE")

	// Render overrides
	envString(&cfg.Render.Style, "RENDER_STYLE")
	envString(&cfg.Render.Separator, "RENDER_SEPARATOR")

	// Sample overrides
	envString(&cfg.Sample.RootName, "SAMPLE_ROOT_NAME")
	envInt(&cfg.Sample.Children, "SAMPLE_CHILDREN")
	envInt(&cfg.Sample.FirstBranch, "SAMPLE_FIRST_BRANCH")
	envInt(&cfg.Sample.SecondBranch, "SAMPLE_SECOND_BRANCH")
	envInt(&cfg.Sample.ChainLength, "SAMPLE_CHAIN_LENGTH")

	// Metrics overrides
	envBool(&cfg.Metrics.Enabled, "METRICS_ENABLED")
	envString(&cfg.Metrics.Namespace, "METRICS_NAMESPACE")
	envString(&cfg.Metrics.Subsystem, "METRICS_SUBSYSTEM")
}

func envString(dst *string, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		*dst = val
	}
}

func envInt(dst *int, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			*dst = i
		}
	}
}

func envBool(dst *bool, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*dst = b
		}
	}
}
