package config

import (
	"os"

	"github.com/litebms/bms/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records the winning value for a key and what it shadowed.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveStringOptions contains the candidate values for one key.
type ResolveStringOptions struct {
	// Key is the config key, e.g. "installRoot".
	Key string
	// FlagValue is the flag value (empty if not set).
	FlagValue string
	// EnvVar is the environment variable consulted for the key.
	EnvVar string
	// ConfigValue is the value from the loaded config (empty if not set).
	ConfigValue string
	// DefaultValue is the built-in default.
	DefaultValue string
}

// ResolveString resolves a string setting using precedence:
// (1) flag, (2) env, (3) config file, (4) default.
//
// The loaded config already has env applied, so a config value equal to the
// env value is not reported as shadowed.
func ResolveString(opts ResolveStringOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	var envValue string
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}
	configValue := opts.ConfigValue
	if configValue == envValue || configValue == opts.DefaultValue {
		configValue = ""
	}

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
	default:
		result.Value = opts.DefaultValue
		result.Source = SourceDefault
	}

	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) BMS_CONFIG env, (3) ~/.bms/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return ResolveString(ResolveStringOptions{
		Key:          "config",
		FlagValue:    opts.FlagValue,
		EnvVar:       "BMS_CONFIG",
		DefaultValue: paths.ConfigFile,
	}), nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
