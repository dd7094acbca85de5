package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/litebms/bms/internal/apiversion"
	"github.com/litebms/bms/internal/config"
	"github.com/litebms/bms/internal/device"
	"github.com/litebms/bms/internal/output"
	"github.com/litebms/bms/internal/parser"
	"github.com/litebms/bms/internal/resource"
)

// ManifestFlags holds flags common to commands that parse manifests
// (parse, attr, inspect, diff).
type ManifestFlags struct {
	AllowComments bool
	NoMetadata    bool
	ParamFile     string
}

// AddTo registers the manifest flags on the given cobra command.
func (f *ManifestFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.AllowComments, "allow-comments", false,
		"Accept comments and trailing commas in config.json")
	cmd.Flags().BoolVar(&f.NoMetadata, "no-metadata", false,
		"Leave ability skills and metadata out of the record")
	cmd.Flags().StringVar(&f.ParamFile, "param-file", "",
		"Device parameter file (default: from config, then ~/.bms/device.yaml)")
}

// parseFormat validates an --output value for document output.
func parseFormat(s string, allowTable bool) (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(s)
	if !ok || (format == output.FormatTable && !allowTable) {
		valid := output.ValidFormats()
		if !allowTable {
			valid = []string{string(output.FormatYAML), string(output.FormatJSON)}
		}
		return "", NewExitError(fmt.Errorf("invalid output format %q (valid: %s)", s, strings.Join(valid, ", ")), ExitGeneralError)
	}
	return format, nil
}

// newParser builds a Parser over the OS filesystem from the resolved globals
// and the command's manifest flags.
func newParser(gc *GlobalConfig, mf *ManifestFlags) (*parser.Parser, error) {
	dev, err := newDevice(gc, mf.ParamFile)
	if err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()
	return parser.New(fs, dev, resource.NewTableIndex(fs), parser.Options{
		InstallRoot:   gc.InstallRoot.Value,
		DataRoot:      gc.DataRoot.Value,
		ParseMetadata: gc.Config.MetadataEnabled() && !mf.NoMetadata,
		AllowComments: gc.Config.Manifest.AllowComments || mf.AllowComments,
	}), nil
}

// newDevice selects the device parameter source: an explicit parameter
// file, the configured one, the default one if present, and finally the
// static API version from config.
func newDevice(gc *GlobalConfig, paramFlag string) (device.Info, error) {
	cfg := gc.Config
	deviceType := gc.DeviceType.Value

	paramFile := paramFlag
	if paramFile == "" {
		paramFile = cfg.Device.ParamFile
	}
	if paramFile == "" {
		if paths, err := config.DefaultPaths(); err == nil {
			if _, err := os.Stat(paths.ParamFile); err == nil {
				paramFile = paths.ParamFile
			}
		}
	}

	if paramFile != "" {
		path, err := config.ExpandPath(paramFile)
		if err != nil {
			return nil, err
		}
		output.Debug("using device parameter file", "path", path)
		return device.LoadParamFile(path, deviceType, cfg.Device.SDKAPILevel)
	}

	params := map[string]string{}
	if cfg.Device.APIVersion != "" {
		params[apiversion.DeviceKey] = cfg.Device.APIVersion
	}
	return device.Static{
		Type:     deviceType,
		SDKLevel: cfg.Device.SDKAPILevel,
		Params:   params,
	}, nil
}
