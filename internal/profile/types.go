// Package profile validates a decoded manifest into a Profile, the transient
// typed view the bundle record is assembled from.
package profile

import (
	"fmt"

	"github.com/litebms/bms/internal/apiversion"
)

// Limits enforced while parsing.
const (
	MinBundleNameLen  = 7
	MaxBundleNameLen  = 127
	MaxVersionNameLen = 127
	MaxLabelLen       = 255
	MaxMetadataName   = 255
	MaxMetadataValue  = 255

	MetadataSize  = 20
	SkillSize     = 3
	MaxSkillItem  = 10
	MaxAbilityNum = 16

	// Permission fields are stored in fixed buffers that keep a terminator,
	// so the longest accepted value is one byte shorter than the buffer.
	PermissionNameLen   = 64
	PermissionReasonLen = 128

	// DefaultIconSetting is the only icon value a manifest may declare.
	DefaultIconSetting = "$media:icon"

	// LabelReferencePrefix marks a label resolved through the resource index.
	LabelReferencePrefix = "$string:"
)

// ModuleType is the declared role of the module.
type ModuleType string

const (
	ModuleEntry   ModuleType = "entry"
	ModuleFeature ModuleType = "feature"
)

// Version is the declared bundle version.
type Version struct {
	Name string `json:"versionName"`
	Code int    `json:"versionCode"`
}

// MetaDataItem is one free-form metadata entry. Empty fields were omitted in
// the manifest.
type MetaDataItem struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
	Extra string `json:"extra,omitempty"`
}

// Skill is one intent-matching rule.
type Skill struct {
	Entities []string `json:"entities,omitempty"`
	Actions  []string `json:"actions,omitempty"`
}

// AbilityEntry holds what the parser keeps of one declared ability.
type AbilityEntry struct {
	BundleName string         `json:"bundleName"`
	Skills     []Skill        `json:"skills,omitempty"`
	Metadata   []MetaDataItem `json:"metadata,omitempty"`
}

// ModuleProfile holds the module's static facts.
type ModuleProfile struct {
	Name                string         `json:"moduleName"`
	Type                ModuleType     `json:"moduleType"`
	DeliveryWithInstall bool           `json:"deliveryWithInstall"`
	Metadata            []MetaDataItem `json:"metadata,omitempty"`
}

// Profile is a validated manifest. It is created per parse call and owned by
// the caller.
type Profile struct {
	BundleName string            `json:"bundleName"`
	Vendor     string            `json:"vendor,omitempty"`
	Version    Version           `json:"version"`
	API        apiversion.Window `json:"apiVersion"`
	Module     ModuleProfile     `json:"module"`

	// Label, IconPath and SrcPath come from the first ability.
	Label      string `json:"label,omitempty"`
	IconPath   string `json:"iconPath"`
	SrcPath    string `json:"srcPath,omitempty"`
	HasSrcPath bool   `json:"-"`

	Abilities []AbilityEntry `json:"abilities"`
}

// ResourceSelector carries the resource ids of the first ability. A zero id
// means the literal manifest value is used instead of a lookup.
type ResourceSelector struct {
	LabelID int `json:"labelId"`
	IconID  int `json:"iconId"`
}

// GrantTime says when a requested permission is granted.
type GrantTime uint8

const (
	GrantInUse GrantTime = iota
	GrantAlways
)

// String returns the manifest literal for the grant time.
func (g GrantTime) String() string {
	switch g {
	case GrantInUse:
		return "inuse"
	case GrantAlways:
		return "always"
	default:
		return fmt.Sprintf("GrantTime(%d)", uint8(g))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g GrantTime) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// PermissionRequest is one entry of module.reqPermissions.
type PermissionRequest struct {
	Name   string    `json:"name"`
	Reason string    `json:"reason"`
	When   GrantTime `json:"when"`
}
