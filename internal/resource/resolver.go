package resource

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/litebms/bms/internal/bundle"
	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/fsprobe"
	"github.com/litebms/bms/internal/output"
	"github.com/litebms/bms/internal/profile"
)

// Icon file names, in order of preference within each size.
const (
	IconName         = "icon.bin"
	SmallIconName    = "ic_small.bin"
	IconPNGName      = "icon.png"
	SmallIconPNGName = "ic_small.png"

	indexFileName = "resources.index"
)

// Resolver maps resource ids to label text and icon paths.
type Resolver struct {
	fs    afero.Fs
	index Index
}

// NewResolver returns a Resolver probing fs and looking ids up in index.
func NewResolver(fs afero.Fs, index Index) *Resolver {
	return &Resolver{fs: fs, index: index}
}

// IndexPath returns the resource index location of a module under root.
func IndexPath(root, moduleName string) string {
	return filepath.Join(root, "assets", moduleName, indexFileName)
}

// Resolve replaces rec's label and icon paths with the values sel refers to.
// A zero id leaves the corresponding field alone. rec is only modified when
// every lookup succeeds.
func (r *Resolver) Resolve(root string, sel profile.ResourceSelector, rec *bundle.Record) error {
	indexPath := IndexPath(root, rec.Module().ModuleName)
	if !fsprobe.IsRegularFile(r.fs, indexPath) {
		return &oerrors.DetailError{
			Code:     oerrors.CodeResourceIndexNotExists,
			Message:  "resource index not found",
			Location: indexPath,
		}
	}

	label := rec.Label
	if sel.LabelID != 0 {
		value, err := r.index.ValueByID(indexPath, sel.LabelID)
		if err != nil {
			return oerrors.WrapCode(oerrors.CodeLabelResource, "labelId",
				fmt.Sprintf("resolving label id %d", sel.LabelID), err)
		}
		label = value
	}

	bigIcon, smallIcon := rec.BigIconPath, rec.SmallIconPath
	if sel.IconID != 0 {
		var err error
		bigIcon, smallIcon, err = r.resolveIcons(indexPath, sel.IconID, rec.CodePath)
		if err != nil {
			return err
		}
	}

	rec.Label = label
	rec.BigIconPath = bigIcon
	rec.SmallIconPath = smallIcon

	output.Debug("resources resolved",
		"bundle", rec.BundleName,
		"label", label,
		"icon", bigIcon,
	)
	return nil
}

func (r *Resolver) resolveIcons(indexPath string, iconID int, codePath string) (string, string, error) {
	value, err := r.index.ValueByID(indexPath, iconID)
	if err != nil {
		return "", "", oerrors.WrapCode(oerrors.CodeIconResource, "iconId",
			fmt.Sprintf("resolving icon id %d", iconID), err)
	}

	slash := strings.LastIndex(value, "/")
	if slash < 0 {
		return "", "", oerrors.Newf(oerrors.CodeIconResource, "iconId",
			"icon resource %q has no directory", value)
	}
	dir := filepath.Join(codePath, "assets", value[:slash])

	big, okBig := r.pick(filepath.Join(dir, IconName), filepath.Join(dir, IconPNGName))
	small, okSmall := r.pick(filepath.Join(dir, SmallIconName), filepath.Join(dir, SmallIconPNGName))
	if !okBig || !okSmall {
		return "", "", &oerrors.DetailError{
			Code:     oerrors.CodeIconResource,
			Field:    "iconId",
			Message:  "icon files missing",
			Location: dir,
			Hint:     "Ship " + IconName + " or " + IconPNGName + " and " + SmallIconName + " or " + SmallIconPNGName,
		}
	}

	return big, small, nil
}

// pick returns the binary candidate when it exists, else the png one.
func (r *Resolver) pick(binary, png string) (string, bool) {
	if fsprobe.IsRegularFile(r.fs, binary) {
		return binary, true
	}
	if fsprobe.IsRegularFile(r.fs, png) {
		return png, true
	}
	return "", false
}
