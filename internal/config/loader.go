package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"
)

// Environment variable prefix for bms configuration.
const envPrefix = "BMS"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("installRoot", defaults.InstallRoot)
	v.SetDefault("dataRoot", defaults.DataRoot)
	v.SetDefault("device.type", defaults.Device.Type)
	v.SetDefault("device.sdkApiLevel", defaults.Device.SDKAPILevel)
	v.SetDefault("device.apiVersion", "")
	v.SetDefault("device.paramFile", "")
	v.SetDefault("features.parseMetadata", true)
	v.SetDefault("manifest.allowComments", false)
	v.SetDefault("workers", defaults.Workers)

	// No default: nil means "not configured" so the flag resolver can tell.
	_ = v.BindEnv("log.timestamps", "BMS_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// A missing file is fine; defaults and env still apply.
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// WriteConfig writes cfg as YAML to path, creating parent directories.
// An existing file is only replaced when force is set.
func WriteConfig(path string, cfg *Config, force bool) error {
	expandedPath, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if !force {
		exists, err := ConfigFileExists(expandedPath)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", expandedPath)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return os.WriteFile(expandedPath, data, 0o644)
}
