package profile

import (
	"fmt"
	"strings"

	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/manifest"
)

const abilitiesField = "module.abilities"

// parseAbilities reads module.abilities into p. The first ability supplies
// the bundle label, icon and source path; every ability contributes skills
// and metadata.
func parseAbilities(module manifest.Node, p *Profile, sel *ResourceSelector) error {
	node := module.Child("abilities")
	if !node.Exists() || node.IsNull() {
		return oerrors.New(oerrors.CodeAbilitiesMissing, abilitiesField, "abilities is required")
	}
	if !node.IsArray() {
		return oerrors.New(oerrors.CodeAbilities, abilitiesField, "abilities is not an array")
	}

	elems := node.Elements()
	if len(elems) == 0 {
		return oerrors.New(oerrors.CodeAbilities, abilitiesField, "at least one ability is required")
	}
	if len(elems) > MaxAbilityNum {
		return oerrors.Newf(oerrors.CodeAbilitiesCapacity, abilitiesField,
			"%d abilities exceed the limit of %d", len(elems), MaxAbilityNum)
	}

	for i, elem := range elems {
		if !elem.IsObject() {
			return oerrors.New(oerrors.CodeAbilities, fmt.Sprintf("%s[%d]", abilitiesField, i), "ability is not an object")
		}
	}

	if err := parseFirstAbility(elems[0], p, sel); err != nil {
		return err
	}

	abilities := NewBounded[AbilityEntry](MaxAbilityNum)
	for i, elem := range elems {
		field := fmt.Sprintf("%s[%d]", abilitiesField, i)

		skills, err := ParseSkills(elem, field)
		if err != nil {
			return err
		}
		metadata, err := ParseMetadata(elem, field)
		if err != nil {
			return err
		}

		abilities.Append(AbilityEntry{
			BundleName: p.BundleName,
			Skills:     skills,
			Metadata:   metadata,
		})
	}
	p.Abilities = abilities.Items()

	return nil
}

func parseFirstAbility(first manifest.Node, p *Profile, sel *ResourceSelector) error {
	const field = abilitiesField + "[0]"

	if first.Has("label") {
		label, ok := first.Child("label").AsString()
		if !ok {
			return oerrors.New(oerrors.CodeAbilityLabel, field+".label", "label is not a string")
		}
		if strings.HasPrefix(label, LabelReferencePrefix) {
			id, presence := first.LookupInt("labelId")
			if presence != manifest.Present || id < 0 {
				return &oerrors.DetailError{
					Code:    oerrors.CodeAbilityLabel,
					Field:   field + ".labelId",
					Message: "a label reference needs a non-negative labelId",
					Context: map[string]string{"Label": label},
				}
			}
			sel.LabelID = id
		}
		if len(label) > MaxLabelLen {
			return oerrors.Newf(oerrors.CodeAbilityLabelLength, field+".label",
				"length %d exceeds %d", len(label), MaxLabelLen)
		}
		p.Label = label
	}

	icon, presence := first.LookupString("icon")
	if presence != manifest.Present || icon != DefaultIconSetting {
		return &oerrors.DetailError{
			Code:    oerrors.CodeAbilityIcon,
			Field:   field + ".icon",
			Message: "icon must reference the indexed icon resource",
			Hint:    fmt.Sprintf("Set icon to %q with an iconId", DefaultIconSetting),
		}
	}
	iconID, presence := first.LookupInt("iconId")
	if presence != manifest.Present || iconID < 0 {
		return oerrors.New(oerrors.CodeAbilityIcon, field+".iconId", "iconId must be a non-negative integer")
	}
	p.IconPath = icon
	sel.IconID = iconID

	if first.Has("srcPath") {
		src, ok := first.Child("srcPath").AsString()
		if !ok {
			return oerrors.New(oerrors.CodeAbilitySrcPath, field+".srcPath", "srcPath is not a string")
		}
		p.SrcPath = src
		p.HasSrcPath = true
	}

	return nil
}
