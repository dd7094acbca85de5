package cmd

import (
	"github.com/spf13/cobra"

	"github.com/litebms/bms/internal/config"
	"github.com/litebms/bms/internal/output"
	"github.com/litebms/bms/internal/version"
)

// GlobalConfig holds CLI-wide configuration resolved during
// PersistentPreRunE. It is passed into every sub-command constructor.
type GlobalConfig struct {
	Config *config.Config

	// Resolved values, flag > env > config > default.
	ConfigPath  config.ResolvedValue
	InstallRoot config.ResolvedValue
	DataRoot    config.ResolvedValue
	DeviceType  config.ResolvedValue

	Verbose bool
}

// rootFlags are the raw persistent flag values.
type rootFlags struct {
	config      string
	verbose     bool
	timestamps  bool
	installRoot string
	dataRoot    string
	deviceType  string
}

// NewRootCmd creates the root command for the bms CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	gc := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "bms",
		Short: "Lite bundle manifest parser",
		Long: `bms validates the config.json manifest of HAP packages for lite devices
and shows the bundle record an install would produce.

It provides commands to:
  - Parse and validate packages, alone or in batches
  - Read the upgrade attributes of a package
  - Inspect a bundle already extracted on disk
  - Diff the records of two package versions`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, &flags, gc)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Path to config file (env: BMS_CONFIG)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	pf.StringVar(&flags.installRoot, "install-root", "", "Install root for code paths (env: BMS_INSTALLROOT)")
	pf.StringVar(&flags.dataRoot, "data-root", "", "Root for per-app data paths (env: BMS_DATAROOT)")
	pf.StringVar(&flags.deviceType, "device-type", "", "Device type to check packages against (env: BMS_DEVICE_TYPE)")

	rootCmd.AddCommand(NewParseCmd(gc))
	rootCmd.AddCommand(NewAttrCmd(gc))
	rootCmd.AddCommand(NewInspectCmd(gc))
	rootCmd.AddCommand(NewDiffCmd(gc))
	rootCmd.AddCommand(NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration, resolves the global values and sets
// up logging.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, gc *GlobalConfig) error {
	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: flags.config,
	})
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		// Commands like version and config init work without a config.
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}

	gc.Config = cfg
	gc.ConfigPath = configPath
	gc.Verbose = flags.verbose
	gc.InstallRoot = config.ResolveString(config.ResolveStringOptions{
		Key:          "installRoot",
		FlagValue:    flags.installRoot,
		EnvVar:       "BMS_INSTALLROOT",
		ConfigValue:  cfg.InstallRoot,
		DefaultValue: config.DefaultInstallRoot,
	})
	gc.DataRoot = config.ResolveString(config.ResolveStringOptions{
		Key:          "dataRoot",
		FlagValue:    flags.dataRoot,
		EnvVar:       "BMS_DATAROOT",
		ConfigValue:  cfg.DataRoot,
		DefaultValue: config.DefaultDataRoot,
	})
	gc.DeviceType = config.ResolveString(config.ResolveStringOptions{
		Key:          "device.type",
		FlagValue:    flags.deviceType,
		EnvVar:       "BMS_DEVICE_TYPE",
		ConfigValue:  cfg.Device.Type,
		DefaultValue: config.DefaultDeviceType,
	})

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	info := version.Get()
	output.Debug("bms started",
		"version", info.Version,
		"cue_sdk", info.CUESDKVersion,
		"workers", cfg.WorkerCount(),
	)
	config.LogResolvedValues([]config.ResolvedValue{
		gc.ConfigPath, gc.InstallRoot, gc.DataRoot, gc.DeviceType,
	})

	return nil
}
