package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for bms.
type Paths struct {
	// ConfigFile is the path to the config file (~/.bms/config.yaml).
	ConfigFile string

	// ParamFile is the default device parameter file (~/.bms/device.yaml).
	ParamFile string

	// HomeDir is the bms home directory (~/.bms).
	HomeDir string
}

// DefaultPaths returns the default paths for bms.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	bmsHome := filepath.Join(homeDir, ".bms")

	return &Paths{
		ConfigFile: filepath.Join(bmsHome, "config.yaml"),
		ParamFile:  filepath.Join(bmsHome, "device.yaml"),
		HomeDir:    bmsHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If BMS_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("BMS_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
