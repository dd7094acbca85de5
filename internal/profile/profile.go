package profile

import (
	"strings"

	"github.com/litebms/bms/internal/apiversion"
	"github.com/litebms/bms/internal/device"
	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/manifest"
	"github.com/litebms/bms/internal/output"
)

// Parse validates a decoded manifest against dev. Stages run in order (app,
// api version, module) and the first failure is returned unchanged; no
// partial Profile is ever returned.
func Parse(root manifest.Node, dev device.Info) (*Profile, ResourceSelector, error) {
	var sel ResourceSelector

	app := root.Tree("app")
	module := root.Tree("module")
	if !app.IsObject() || !module.IsObject() {
		return nil, sel, oerrors.New(oerrors.CodeParseProfile, "", "manifest requires app and module objects")
	}

	p := &Profile{}
	if err := parseApp(app, p); err != nil {
		return nil, sel, err
	}

	window, err := apiversion.Resolve(app, dev)
	if err != nil {
		return nil, sel, err
	}
	p.API = window

	if err := parseModule(module, dev, p, &sel); err != nil {
		return nil, sel, err
	}

	output.Debug("profile parsed",
		"bundle", p.BundleName,
		"module", p.Module.Name,
		"abilities", len(p.Abilities),
	)
	return p, sel, nil
}

func parseApp(app manifest.Node, p *Profile) error {
	name, ok := app.Child("bundleName").AsString()
	if !ok {
		return oerrors.New(oerrors.CodeBundleNameMissing, "app.bundleName", "bundleName is required")
	}
	if len(name) < MinBundleNameLen || len(name) > MaxBundleNameLen {
		return oerrors.Newf(oerrors.CodeBundleNameLength, "app.bundleName",
			"length %d outside [%d, %d]", len(name), MinBundleNameLen, MaxBundleNameLen)
	}
	p.BundleName = name

	if app.Has("vendor") {
		vendor, ok := app.Child("vendor").AsString()
		if !ok {
			return oerrors.New(oerrors.CodeVendor, "app.vendor", "vendor is not a string")
		}
		p.Vendor = vendor
	}

	version := app.Tree("version")
	versionName, ok := version.Child("name").AsString()
	if !ok {
		return oerrors.New(oerrors.CodeVersionNameMissing, "app.version.name", "version name is required")
	}
	if len(versionName) > MaxVersionNameLen {
		return oerrors.Newf(oerrors.CodeVersionNameLength, "app.version.name",
			"length %d exceeds %d", len(versionName), MaxVersionNameLen)
	}

	code, presence := version.LookupInt("code")
	if presence != manifest.Present || code == -1 {
		return oerrors.New(oerrors.CodeVersionCode, "app.version.code", "version code is required")
	}

	p.Version = Version{Name: versionName, Code: code}
	return nil
}

func parseModule(module manifest.Node, dev device.Info, p *Profile, sel *ResourceSelector) error {
	if err := checkDeviceType(module.Child("deviceType"), dev.DeviceType()); err != nil {
		return err
	}

	distro := module.Tree("distro")
	if !distro.IsObject() {
		return oerrors.New(oerrors.CodeDistroMissing, "module.distro", "distro is required")
	}

	delivery, presence := distro.LookupBool("delivery")
	if presence != manifest.Present {
		return oerrors.New(oerrors.CodeDistroDelivery, "module.distro.delivery", "delivery must be a boolean")
	}
	p.Module.DeliveryWithInstall = delivery

	name, ok := distro.Child("moduleName").AsString()
	if !ok {
		return oerrors.New(oerrors.CodeModuleNameMissing, "module.distro.moduleName", "moduleName is required")
	}
	if strings.Contains(name, "../") {
		return &oerrors.DetailError{
			Code:    oerrors.CodeModuleNameTraversal,
			Field:   "module.distro.moduleName",
			Message: "module name must not contain ../",
			Context: map[string]string{"Value": name},
		}
	}
	p.Module.Name = name

	metadata, err := ParseMetadata(module, "module")
	if err != nil {
		return err
	}
	p.Module.Metadata = metadata

	moduleType, _ := distro.Child("moduleType").AsString()
	switch ModuleType(moduleType) {
	case ModuleEntry, ModuleFeature:
		p.Module.Type = ModuleType(moduleType)
	default:
		return &oerrors.DetailError{
			Code:    oerrors.CodeModuleType,
			Field:   "module.distro.moduleType",
			Message: "unknown module type",
			Context: map[string]string{"Value": moduleType},
			Hint:    "Use entry or feature",
		}
	}

	return parseAbilities(module, p, sel)
}

// checkDeviceType requires the declared list to name the running device or
// the wildcard default. A non-string entry ahead of any match rejects the
// whole list.
func checkDeviceType(node manifest.Node, running string) error {
	if !node.IsArray() {
		return oerrors.New(oerrors.CodeDeviceType, "module.deviceType", "deviceType is not an array")
	}
	for _, elem := range node.Elements() {
		s, ok := elem.AsString()
		if !ok {
			return oerrors.New(oerrors.CodeDeviceType, "module.deviceType", "deviceType entries must be strings")
		}
		if s == running || s == device.DefaultType {
			return nil
		}
	}
	return &oerrors.DetailError{
		Code:    oerrors.CodeDeviceType,
		Field:   "module.deviceType",
		Message: "device type not supported",
		Context: map[string]string{"Device": running},
	}
}
