// Package config provides configuration management for shellfig.
// It handles loading and parsing of the config.yaml file and supplies
// defaults when configuration is missing or partially invalid.
package config

// Config holds all shellfig configuration.
type Config struct {
	// LogLevel controls logging verbosity.
	LogLevel string `yaml:"logLevel"`

	// Prompt customizes the rendered prompt characters.
	Prompt PromptConfig `yaml:"prompt"`

	// Exports are environment variables the init script exports.
	Exports map[string]string `yaml:"exports"`

	// Aliases are command aliases the init script defines.
	Aliases map[string]string `yaml:"aliases"`

	// Agent controls the SSH/GPG agent bootstrap.
	Agent AgentConfig `yaml:"agent"`
}

// PromptConfig customizes the prompt characters.
type PromptConfig struct {
	// Symbol is the primary prompt character shown on the second line.
	Symbol string `yaml:"symbol"`

	// Continuation is the character shown while a multi-line command is
	// still being entered.
	Continuation string `yaml:"continuation"`
}

// AgentConfig toggles agent bootstrapping in the init script.
type AgentConfig struct {
	SSH bool `yaml:"ssh"`
	GPG bool `yaml:"gpg"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Prompt: PromptConfig{
			Symbol:       "+",
			Continuation: "|",
		},
		Exports: make(map[string]string),
		Aliases: make(map[string]string),
		Agent: AgentConfig{
			SSH: true,
			GPG: false,
		},
	}
}
