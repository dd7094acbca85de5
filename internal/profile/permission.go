package profile

import (
	"fmt"

	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/manifest"
)

const permissionsField = "module.reqPermissions"

// ParsePermissions reads module.reqPermissions. A missing or null list yields
// no requests.
func ParsePermissions(module manifest.Node) ([]PermissionRequest, error) {
	node := module.Child("reqPermissions")
	if !node.Exists() || node.IsNull() {
		return nil, nil
	}
	if !node.IsArray() {
		return nil, oerrors.New(oerrors.CodePermissions, permissionsField, "reqPermissions is not an array")
	}

	elems := node.Elements()
	if len(elems) == 0 {
		return nil, nil
	}

	perms := make([]PermissionRequest, len(elems))
	for i, elem := range elems {
		if err := parsePermission(elem, fmt.Sprintf("%s[%d]", permissionsField, i), &perms[i]); err != nil {
			return nil, err
		}
	}

	return perms, nil
}

func parsePermission(elem manifest.Node, field string, out *PermissionRequest) error {
	name, np := elem.LookupString("name")
	reason, rp := elem.LookupString("reason")
	if np != manifest.Present {
		return oerrors.New(oerrors.CodePermissionField, field+".name", "name is required")
	}
	if rp != manifest.Present {
		return oerrors.New(oerrors.CodePermissionField, field+".reason", "reason is required")
	}
	if len(name) >= PermissionNameLen {
		return oerrors.Newf(oerrors.CodePermissionLength, field+".name",
			"length %d exceeds %d", len(name), PermissionNameLen-1)
	}
	if len(reason) >= PermissionReasonLen {
		return oerrors.Newf(oerrors.CodePermissionLength, field+".reason",
			"length %d exceeds %d", len(reason), PermissionReasonLen-1)
	}

	when, _ := elem.Tree("usedScene").LookupString("when")
	switch when {
	case GrantInUse.String():
		out.When = GrantInUse
	case GrantAlways.String():
		out.When = GrantAlways
	default:
		return &oerrors.DetailError{
			Code:    oerrors.CodePermissionWhen,
			Field:   field + ".usedScene.when",
			Message: fmt.Sprintf("unknown grant time %q", when),
			Hint:    "Use inuse or always",
		}
	}

	out.Name = name
	out.Reason = reason
	return nil
}
