package profile

import (
	"fmt"

	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/manifest"
)

// ParseSkills reads ability.skills. A missing or null list yields no skills.
func ParseSkills(ability manifest.Node, field string) ([]Skill, error) {
	node := ability.Child("skills")
	if !node.Exists() || node.IsNull() {
		return nil, nil
	}
	field += ".skills"
	if !node.IsArray() {
		return nil, oerrors.New(oerrors.CodeSkills, field, "skills is not an array")
	}

	elems := node.Elements()
	if len(elems) > SkillSize {
		return nil, oerrors.Newf(oerrors.CodeSkillsCapacity, field,
			"%d skills exceed the limit of %d", len(elems), SkillSize)
	}

	skills := NewBounded[Skill](SkillSize)
	for i, elem := range elems {
		skill, err := parseSkill(elem, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			skills.Reset()
			return nil, err
		}
		skills.Append(skill)
	}

	return skills.Items(), nil
}

func parseSkill(elem manifest.Node, field string) (Skill, error) {
	if !elem.IsObject() {
		return Skill{}, oerrors.New(oerrors.CodeSkills, field, "skill is not an object")
	}

	hasEntities := elem.Has("entities") && !elem.Child("entities").IsNull()
	hasActions := elem.Has("actions") && !elem.Child("actions").IsNull()
	if !hasEntities && !hasActions {
		return Skill{}, oerrors.New(oerrors.CodeSkillEmpty, field, "skill declares neither entities nor actions")
	}

	var (
		skill Skill
		err   error
	)
	if hasEntities {
		if skill.Entities, err = parseSkillItems(elem.Child("entities"), field+".entities"); err != nil {
			return Skill{}, err
		}
	}
	if hasActions {
		if skill.Actions, err = parseSkillItems(elem.Child("actions"), field+".actions"); err != nil {
			return Skill{}, err
		}
	}

	return skill, nil
}

func parseSkillItems(node manifest.Node, field string) ([]string, error) {
	if !node.IsArray() {
		return nil, oerrors.New(oerrors.CodeSkills, field, "not an array")
	}

	elems := node.Elements()
	if len(elems) > MaxSkillItem {
		return nil, oerrors.Newf(oerrors.CodeSkillItemCapacity, field,
			"%d items exceed the limit of %d", len(elems), MaxSkillItem)
	}

	items := NewBounded[string](MaxSkillItem)
	for i, elem := range elems {
		s, ok := elem.AsString()
		if !ok {
			items.Reset()
			return nil, oerrors.New(oerrors.CodeSkills, fmt.Sprintf("%s[%d]", field, i), "a string is expected")
		}
		items.Append(s)
	}

	return items.Items(), nil
}
