package errors

import "fmt"

// Code is a stable numeric rejection code. Values never change once published.
type Code uint8

// Rejection codes, one per validation rule.
const (
	CodeOK Code = 0

	CodeParseProfile        Code = 1
	CodeBundleNameMissing   Code = 2
	CodeBundleNameLength    Code = 3
	CodeVendor              Code = 4
	CodeVersionNameMissing  Code = 5
	CodeVersionNameLength   Code = 6
	CodeVersionCode         Code = 7
	CodeAPIVersionMissing   Code = 8
	CodeAPIVersionRange     Code = 9
	CodeAPIVersionDevice    Code = 10
	CodeDeviceType          Code = 11
	CodeDistroMissing       Code = 12
	CodeDistroDelivery      Code = 13
	CodeModuleNameMissing   Code = 14
	CodeModuleNameTraversal Code = 15
	CodeModuleType          Code = 16
	CodeMetadata            Code = 17
	CodeMetadataCapacity    Code = 18
	CodeMetadataNameLength  Code = 19
	CodeMetadataValueLength Code = 20
	CodeAbilitiesMissing    Code = 21
	CodeAbilities           Code = 22
	CodeAbilitiesCapacity   Code = 23
	CodeAbilityLabel        Code = 24
	CodeAbilityLabelLength  Code = 25
	CodeAbilityIcon         Code = 26
	CodeAbilitySrcPath      Code = 27
	CodeSkills              Code = 28
	CodeSkillsCapacity      Code = 29
	CodeSkillItemCapacity   Code = 30
	CodeSkillEmpty          Code = 31
	CodePermissions         Code = 32
	CodePermissionField     Code = 33
	CodePermissionLength    Code = 34
	CodePermissionWhen      Code = 35

	CodeResourceIndexNotExists Code = 40
	CodeLabelResource          Code = 41
	CodeIconResource           Code = 42
	CodeExtractProfile         Code = 43

	CodeInternal Code = 60
)

type codeInfo struct {
	name     string
	category error
}

var codeTable = map[Code]codeInfo{
	CodeOK:                     {"ok", nil},
	CodeParseProfile:           {"parse profile", ErrInvalidType},
	CodeBundleNameMissing:      {"bundle name missing", ErrMissingField},
	CodeBundleNameLength:       {"bundle name length", ErrInvalidLength},
	CodeVendor:                 {"vendor", ErrInvalidType},
	CodeVersionNameMissing:     {"version name missing", ErrMissingField},
	CodeVersionNameLength:      {"version name length", ErrInvalidLength},
	CodeVersionCode:            {"version code missing", ErrMissingField},
	CodeAPIVersionMissing:      {"api version missing", ErrMissingField},
	CodeAPIVersionRange:        {"api version range", ErrAPIVersion},
	CodeAPIVersionDevice:       {"api version device", ErrAPIVersion},
	CodeDeviceType:             {"device type", ErrInvalidValue},
	CodeDistroMissing:          {"distro missing", ErrMissingField},
	CodeDistroDelivery:         {"distro delivery", ErrInvalidType},
	CodeModuleNameMissing:      {"module name missing", ErrMissingField},
	CodeModuleNameTraversal:    {"module name traversal", ErrPathTraversal},
	CodeModuleType:             {"module type", ErrInvalidValue},
	CodeMetadata:               {"metadata", ErrInvalidType},
	CodeMetadataCapacity:       {"metadata capacity", ErrCapacityExceeded},
	CodeMetadataNameLength:     {"metadata name length", ErrInvalidLength},
	CodeMetadataValueLength:    {"metadata value length", ErrInvalidLength},
	CodeAbilitiesMissing:       {"abilities missing", ErrMissingField},
	CodeAbilities:              {"abilities", ErrInvalidType},
	CodeAbilitiesCapacity:      {"abilities capacity", ErrCapacityExceeded},
	CodeAbilityLabel:           {"ability label", ErrInvalidType},
	CodeAbilityLabelLength:     {"ability label length", ErrInvalidLength},
	CodeAbilityIcon:            {"ability icon", ErrInvalidValue},
	CodeAbilitySrcPath:         {"ability src path", ErrInvalidType},
	CodeSkills:                 {"skills", ErrInvalidType},
	CodeSkillsCapacity:         {"skills capacity", ErrCapacityExceeded},
	CodeSkillItemCapacity:      {"skill item capacity", ErrCapacityExceeded},
	CodeSkillEmpty:             {"skill empty", ErrMissingField},
	CodePermissions:            {"permissions", ErrInvalidType},
	CodePermissionField:        {"permission field missing", ErrMissingField},
	CodePermissionLength:       {"permission field length", ErrInvalidLength},
	CodePermissionWhen:         {"permission grant time", ErrInvalidValue},
	CodeResourceIndexNotExists: {"resource index not exists", ErrResourceNotFound},
	CodeLabelResource:          {"label resource", ErrResourceNotFound},
	CodeIconResource:           {"icon resource", ErrResourceNotFound},
	CodeExtractProfile:         {"extract profile", ErrResourceNotFound},
	CodeInternal:               {"internal", ErrInternal},
}

// String returns the human-readable name of the code.
func (c Code) String() string {
	if info, ok := codeTable[c]; ok {
		return info.name
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// Category returns the sentinel the code belongs to, or nil for CodeOK
// and unknown codes.
func (c Code) Category() error {
	return codeTable[c].category
}

// IsValidation reports whether the code rejects the manifest content itself,
// as opposed to a missing resource or an internal failure.
func (c Code) IsValidation() bool {
	switch c.Category() {
	case nil, ErrResourceNotFound, ErrInternal:
		return false
	default:
		return true
	}
}
