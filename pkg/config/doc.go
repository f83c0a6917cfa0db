// Package config provides configuration management for nodeclass.
//
// This package handles loading, validating, and defaulting configuration from
// YAML files with environment variable overrides. Files are read through an
// afero.Fs so callers and tests can substitute an in-memory filesystem.
//
// # Configuration Loading
//
// Configuration can be loaded in three ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig(afero.NewOsFs(), "nodeclass.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides(afero.NewOsFs(), "nodeclass.yaml")
//
//  3. As 2, falling back to defaults when the file does not exist:
//     cfg, err := config.LoadOptional(afero.NewOsFs(), config.DefaultPath)
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention NODECLASS_SECTION_FIELD.
// For example:
//
//   - NODECLASS_LOGGING_LEVEL overrides logging.level
//   - NODECLASS_RENDER_STYLE overrides render.style
//   - NODECLASS_SAMPLE_CHAIN_LENGTH overrides sample.chain_length
//
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Values from YAML file
//  2. Default values for fields the file left empty (defined in defaults.go)
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Validation
//
// Rules are declared as go-playground/validator struct tags on the
// configuration types. Failures are collected into a ValidationError whose
// FieldErrors name fields by their dotted yaml path, e.g. "render.style".
package config
