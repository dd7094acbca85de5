package bundle

import (
	"slices"
	"strings"

	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/profile"
)

const (
	assetsDir  = "/assets/"
	jsEntryDir = "/assets/js/"
)

// Options controls record assembly.
type Options struct {
	// InstallRoot prefixes the code path: {InstallRoot}/{bundleName}.
	InstallRoot string

	// DataRoot prefixes the data path: {DataRoot}/{bundleName}.
	DataRoot string

	// CodePath replaces the derived code path when set, for bundles already
	// extracted elsewhere.
	CodePath string

	// ParseMetadata copies the first ability's skills and metadata into the
	// ability record.
	ParseMetadata bool
}

// Assemble builds a Record from p. A label that refers to the resource index
// (non-zero sel.LabelID) is left empty for the resource resolver. Either a
// complete Record or an error is returned.
func Assemble(p *profile.Profile, sel profile.ResourceSelector, opts Options) (*Record, error) {
	if p == nil {
		return nil, oerrors.New(oerrors.CodeInternal, "", "assemble called without a profile")
	}
	if opts.DataRoot == "" || (opts.InstallRoot == "" && opts.CodePath == "") {
		return nil, oerrors.New(oerrors.CodeInternal, "", "install and data roots are required")
	}

	codePath := opts.CodePath
	if codePath == "" {
		codePath = joinRoot(opts.InstallRoot, p.BundleName)
	}

	rec := &Record{
		BundleName:    p.BundleName,
		Vendor:        p.Vendor,
		VersionName:   p.Version.Name,
		VersionCode:   p.Version.Code,
		CompatibleAPI: p.API.Min,
		TargetAPI:     p.API.Max,
		CodePath:      codePath,
		DataPath:      joinRoot(opts.DataRoot, p.BundleName),
		Modules: []ModuleInfo{{
			ModuleName: p.Module.Name,
			Metadata:   cloneMetadata(p.Module.Metadata),
		}},
	}
	if sel.LabelID == 0 {
		rec.Label = p.Label
	}

	ability := AbilityInfo{
		BundleName: rec.BundleName,
		SrcPath:    EntryPath(codePath, p.SrcPath, p.HasSrcPath),
	}
	if opts.ParseMetadata && len(p.Abilities) > 0 {
		ability.Skills = cloneSkills(p.Abilities[0].Skills)
		ability.Metadata = cloneMetadata(p.Abilities[0].Metadata)
	}
	rec.Abilities = []AbilityInfo{ability}

	return rec, nil
}

// EntryPath derives the JavaScript entry path of the module.
func EntryPath(codePath, srcPath string, hasSrcPath bool) string {
	if !hasSrcPath {
		return codePath + jsEntryDir
	}
	return codePath + assetsDir + srcPath
}

func joinRoot(root, name string) string {
	return strings.TrimRight(root, "/") + "/" + name
}

func cloneMetadata(items []profile.MetaDataItem) []profile.MetaDataItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]profile.MetaDataItem, len(items))
	for i, it := range items {
		out[i] = profile.MetaDataItem{
			Name:  strings.Clone(it.Name),
			Value: strings.Clone(it.Value),
			Extra: strings.Clone(it.Extra),
		}
	}
	return out
}

func cloneSkills(skills []profile.Skill) []profile.Skill {
	if len(skills) == 0 {
		return nil
	}
	out := make([]profile.Skill, len(skills))
	for i, s := range skills {
		out[i] = profile.Skill{
			Entities: slices.Clone(s.Entities),
			Actions:  slices.Clone(s.Actions),
		}
	}
	return out
}
