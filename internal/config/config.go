// Package config provides configuration loading and management.
package config

// Built-in defaults.
const (
	DefaultInstallRoot = "/storage/app/run"
	DefaultDataRoot    = "/storage/app/data"
	DefaultDeviceType  = "liteWearable"
	DefaultSDKAPILevel = 3
	DefaultWorkers     = 4
)

// DeviceConfig describes the device the manifests are checked against.
type DeviceConfig struct {
	// Type is the running device type matched against module.deviceType.
	// Env: BMS_DEVICE_TYPE
	Type string `json:"type,omitempty" mapstructure:"type"`

	// SDKAPILevel is the compile-time SDK API level added to the device
	// API version in the API10 regime.
	SDKAPILevel int `json:"sdkApiLevel,omitempty" mapstructure:"sdkApiLevel"`

	// APIVersion is a static value for the device API version parameter.
	// Ignored when ParamFile is set.
	APIVersion string `json:"apiVersion,omitempty" mapstructure:"apiVersion"`

	// ParamFile is a YAML file holding device system parameters.
	ParamFile string `json:"paramFile,omitempty" mapstructure:"paramFile"`
}

// FeaturesConfig toggles optional parsing behavior.
type FeaturesConfig struct {
	// ParseMetadata copies metadata and skills into the ability record.
	// Default: true.
	ParseMetadata *bool `json:"parseMetadata,omitempty" mapstructure:"parseMetadata"`
}

// ManifestConfig controls manifest decoding.
type ManifestConfig struct {
	// AllowComments accepts JSONC manifests (comments, trailing commas).
	AllowComments bool `json:"allowComments,omitempty" mapstructure:"allowComments"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the bms configuration.
// Loaded from ~/.bms/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// InstallRoot is the prefix of every bundle install path.
	// Env: BMS_INSTALLROOT
	InstallRoot string `json:"installRoot,omitempty" mapstructure:"installRoot"`

	// DataRoot is the prefix of every per-app data path.
	// Env: BMS_DATAROOT
	DataRoot string `json:"dataRoot,omitempty" mapstructure:"dataRoot"`

	Device   DeviceConfig   `json:"device" mapstructure:"device"`
	Features FeaturesConfig `json:"features" mapstructure:"features"`
	Manifest ManifestConfig `json:"manifest" mapstructure:"manifest"`
	Log      LogConfig      `json:"log" mapstructure:"log"`

	// Workers bounds concurrent package parsing in batch mode.
	Workers int `json:"workers,omitempty" mapstructure:"workers"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `bms config init` to generate the initial config file.
func DefaultConfig() *Config {
	parseMetadata := true
	return &Config{
		InstallRoot: DefaultInstallRoot,
		DataRoot:    DefaultDataRoot,
		Device: DeviceConfig{
			Type:        DefaultDeviceType,
			SDKAPILevel: DefaultSDKAPILevel,
		},
		Features: FeaturesConfig{ParseMetadata: &parseMetadata},
		Workers:  DefaultWorkers,
	}
}

// MetadataEnabled reports whether ability records carry metadata and skills.
func (c *Config) MetadataEnabled() bool {
	return c.Features.ParseMetadata == nil || *c.Features.ParseMetadata
}

// WorkerCount returns the configured worker count, at least 1.
func (c *Config) WorkerCount() int {
	if c.Workers < 1 {
		return 1
	}
	return c.Workers
}
