// Package apiversion resolves a manifest's declared API compatibility window
// and checks it against the running device.
package apiversion

import (
	"fmt"
	"strconv"

	"github.com/litebms/bms/internal/device"
	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/manifest"
)

const (
	// Base is the window used when a manifest declares no apiVersion block.
	Base = 3

	// Mask separates the legacy regime from the API10 regime. In the API10
	// regime versions are written as major*Mask + sdkLevel.
	Mask = 1000

	// DeviceKey is the system parameter holding the device API major version.
	DeviceKey = "const.product.os.dist.apiversion"

	// deviceValueLen is the parameter buffer size; the value must fit with
	// its terminator.
	deviceValueLen = 16

	deviceValueMinLen = 1
)

// Window is a manifest's API compatibility window.
type Window struct {
	Min int `json:"compatibleApi"`
	Max int `json:"targetApi"`
}

// Resolve reads app.apiVersion and validates it against dev.
func Resolve(app manifest.Node, dev device.Info) (Window, error) {
	if !app.Has("apiVersion") {
		return Window{Min: Base, Max: Base}, nil
	}

	block := app.Tree("apiVersion")
	if !block.IsObject() {
		return Window{}, oerrors.New(oerrors.CodeAPIVersionMissing, "app.apiVersion", "apiVersion is not an object")
	}
	compatible, cp := block.LookupInt("compatible")
	target, tp := block.LookupInt("target")
	if cp != manifest.Present || tp != manifest.Present {
		return Window{}, oerrors.New(oerrors.CodeAPIVersionMissing, "app.apiVersion",
			"apiVersion requires integer compatible and target")
	}

	w := Window{Min: compatible, Max: target}
	if w.Max < w.Min {
		return Window{}, oerrors.Newf(oerrors.CodeAPIVersionRange, "app.apiVersion",
			"target %d is below compatible %d", w.Max, w.Min)
	}

	if w.Min >= Mask {
		if err := CheckAPI10(w.Min, dev); err != nil {
			return Window{}, err
		}
	}

	return w, nil
}

// DeviceVersion computes the device version in the API10 scheme from the
// device API parameter and the SDK API level.
func DeviceVersion(dev device.Info) (int, error) {
	value, err := dev.Parameter(DeviceKey)
	if err != nil {
		return 0, oerrors.WrapCode(oerrors.CodeAPIVersionDevice, DeviceKey, "reading device api version", err)
	}
	if len(value) < deviceValueMinLen || len(value) >= deviceValueLen {
		return 0, oerrors.Newf(oerrors.CodeAPIVersionDevice, DeviceKey,
			"device api version %q has invalid length", value)
	}
	major, err := strconv.Atoi(value)
	if err != nil {
		return 0, oerrors.WrapCode(oerrors.CodeAPIVersionDevice, DeviceKey,
			"device api version is not a decimal integer", err)
	}
	return major*Mask + dev.SDKAPILevel(), nil
}

// CheckAPI10 rejects a compatible version the device cannot satisfy.
func CheckAPI10(compatible int, dev device.Info) error {
	deviceVersion, err := DeviceVersion(dev)
	if err != nil {
		return err
	}
	if deviceVersion < compatible {
		return &oerrors.DetailError{
			Code:    oerrors.CodeAPIVersionDevice,
			Field:   "app.apiVersion.compatible",
			Message: fmt.Sprintf("device version %d is below compatible %d", deviceVersion, compatible),
			Hint:    "Install on a device with a newer API version",
		}
	}
	return nil
}
