// Package bundle assembles the persistent bundle record from a validated
// profile.
package bundle

import (
	"github.com/litebms/bms/internal/profile"
)

// ModuleInfo describes the bundle's single module.
type ModuleInfo struct {
	ModuleName string                 `json:"moduleName"`
	Metadata   []profile.MetaDataItem `json:"metadata,omitempty"`
}

// AbilityInfo is the launch record of the bundle's ability.
type AbilityInfo struct {
	BundleName string                 `json:"bundleName"`
	SrcPath    string                 `json:"srcPath"`
	Skills     []profile.Skill        `json:"skills,omitempty"`
	Metadata   []profile.MetaDataItem `json:"metadata,omitempty"`
}

// Record is the installed-bundle record. It owns all of its data; nothing in
// it refers back to the manifest tree or the profile.
type Record struct {
	BundleName    string        `json:"bundleName"`
	Vendor        string        `json:"vendor,omitempty"`
	Label         string        `json:"label,omitempty"`
	VersionName   string        `json:"versionName"`
	VersionCode   int           `json:"versionCode"`
	CompatibleAPI int           `json:"compatibleApi"`
	TargetAPI     int           `json:"targetApi"`
	CodePath      string        `json:"codePath"`
	DataPath      string        `json:"dataPath"`
	BigIconPath   string        `json:"bigIconPath,omitempty"`
	SmallIconPath string        `json:"smallIconPath,omitempty"`
	Modules       []ModuleInfo  `json:"moduleInfos"`
	Abilities     []AbilityInfo `json:"abilityInfos"`
}

// Module returns the bundle's module.
func (r *Record) Module() ModuleInfo {
	if len(r.Modules) == 0 {
		return ModuleInfo{}
	}
	return r.Modules[0]
}
