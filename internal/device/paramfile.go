package device

import (
	"fmt"

	"github.com/spf13/viper"
)

// ParamFile is an Info whose system parameters come from a YAML file.
// Keys may be nested or written flat with dots, e.g.
//
//	const.product.os.dist.apiversion: "5"
type ParamFile struct {
	v        *viper.Viper
	typ      string
	sdkLevel int
}

var _ Info = (*ParamFile)(nil)

// LoadParamFile reads the parameter file at path.
func LoadParamFile(path, deviceType string, sdkLevel int) (*ParamFile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading device parameter file %s: %w", path, err)
	}

	return &ParamFile{v: v, typ: deviceType, sdkLevel: sdkLevel}, nil
}

// Parameter implements Info.
func (p *ParamFile) Parameter(key string) (string, error) {
	if !p.v.IsSet(key) {
		return "", fmt.Errorf("%s: %w", key, ErrParameterNotFound)
	}
	return p.v.GetString(key), nil
}

// DeviceType implements Info.
func (p *ParamFile) DeviceType() string { return p.typ }

// SDKAPILevel implements Info.
func (p *ParamFile) SDKAPILevel() int { return p.sdkLevel }
