// Package device exposes the read-only facts about the running device that
// manifest validation depends on.
package device

import (
	"errors"
	"fmt"
)

// DefaultType is the wildcard device type a manifest may declare.
const DefaultType = "default"

// ErrParameterNotFound is returned when a system parameter is not defined.
var ErrParameterNotFound = errors.New("parameter not found")

// Info answers device queries. Implementations must be safe for concurrent
// reads.
type Info interface {
	// Parameter returns the system parameter stored under key.
	Parameter(key string) (string, error)

	// DeviceType returns the running device type.
	DeviceType() string

	// SDKAPILevel returns the compile-time SDK API level.
	SDKAPILevel() int
}

// Static is an Info backed by fixed values.
type Static struct {
	Type     string
	SDKLevel int
	Params   map[string]string
}

var _ Info = Static{}

// Parameter implements Info.
func (s Static) Parameter(key string) (string, error) {
	v, ok := s.Params[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrParameterNotFound)
	}
	return v, nil
}

// DeviceType implements Info.
func (s Static) DeviceType() string { return s.Type }

// SDKAPILevel implements Info.
func (s Static) SDKAPILevel() int { return s.SDKLevel }
