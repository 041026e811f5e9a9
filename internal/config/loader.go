package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of config.yaml files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new configuration loader. The logger is optional
// (can be nil).
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		logger: logger,
	}
}

// LoadResult contains the result of loading a configuration file.
type LoadResult struct {
	Config *Config
	Errors []error
}

// LoadFromFile loads configuration from a yaml file.
// If the file doesn't exist, returns default configuration with no error.
// Invalid yaml is recorded as a non-fatal error and defaults are kept: a
// broken config file must never prevent the shell from getting a prompt.
func (l *Loader) LoadFromFile(path string) (*LoadResult, error) {
	result := &LoadResult{
		Config: DefaultConfig(),
		Errors: []error{},
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return l.LoadFromBytes(content)
}

// LoadFromBytes loads configuration from raw yaml.
func (l *Loader) LoadFromBytes(content []byte) (*LoadResult, error) {
	result := &LoadResult{
		Config: DefaultConfig(),
		Errors: []error{},
	}

	// Unmarshal over the defaults so omitted keys keep their default
	// values and provided keys override them.
	if err := yaml.Unmarshal(content, result.Config); err != nil {
		l.logger.Warn("invalid config file, using defaults", zap.Error(err))
		result.Config = DefaultConfig()
		result.Errors = append(result.Errors, fmt.Errorf("parse error: %w", err))
		return result, nil
	}

	if result.Config.Exports == nil {
		result.Config.Exports = make(map[string]string)
	}
	if result.Config.Aliases == nil {
		result.Config.Aliases = make(map[string]string)
	}

	return result, nil
}
