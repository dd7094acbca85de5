package profile

import (
	"fmt"

	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/manifest"
)

// ParseMetadata reads owner.metadata.customizeData. A missing or null
// metadata block or customizeData list yields no items.
func ParseMetadata(owner manifest.Node, field string) ([]MetaDataItem, error) {
	md := owner.Child("metadata")
	if !md.Exists() || md.IsNull() {
		return nil, nil
	}
	field += ".metadata"
	if !md.IsObject() {
		return nil, oerrors.New(oerrors.CodeMetadata, field, "metadata is not an object")
	}

	data := md.Child("customizeData")
	if !data.Exists() || data.IsNull() {
		return nil, nil
	}
	field += ".customizeData"
	if !data.IsArray() {
		return nil, oerrors.New(oerrors.CodeMetadata, field, "customizeData is not an array")
	}

	elems := data.Elements()
	if len(elems) > MetadataSize {
		return nil, oerrors.Newf(oerrors.CodeMetadataCapacity, field,
			"%d items exceed the limit of %d", len(elems), MetadataSize)
	}

	items := NewBounded[MetaDataItem](MetadataSize)
	for i, elem := range elems {
		itemField := fmt.Sprintf("%s[%d]", field, i)
		item, err := parseMetaDataItem(elem, itemField)
		if err != nil {
			items.Reset()
			return nil, err
		}
		if !items.Append(item) {
			items.Reset()
			return nil, oerrors.Newf(oerrors.CodeMetadataCapacity, itemField,
				"more than %d items", items.Cap())
		}
	}

	return items.Items(), nil
}

func parseMetaDataItem(elem manifest.Node, field string) (MetaDataItem, error) {
	var item MetaDataItem
	if !elem.IsObject() {
		return item, oerrors.New(oerrors.CodeMetadata, field, "item is not an object")
	}

	var err error
	if item.Name, err = optionalString(elem, "name", field, MaxMetadataName, oerrors.CodeMetadataNameLength); err != nil {
		return item, err
	}
	if item.Value, err = optionalString(elem, "value", field, MaxMetadataValue, oerrors.CodeMetadataValueLength); err != nil {
		return item, err
	}
	if item.Extra, err = optionalString(elem, "extra", field, 0, oerrors.CodeOK); err != nil {
		return item, err
	}

	return item, nil
}

// optionalString reads an optional string member of a metadata item. A
// present value must be a string no longer than limit when limit > 0.
func optionalString(elem manifest.Node, key, field string, limit int, lengthCode oerrors.Code) (string, error) {
	if !elem.Has(key) {
		return "", nil
	}
	s, ok := elem.Child(key).AsString()
	if !ok {
		return "", oerrors.Newf(oerrors.CodeMetadata, field+"."+key, "%s is not a string", key)
	}
	if limit > 0 && len(s) > limit {
		return "", oerrors.Newf(lengthCode, field+"."+key,
			"length %d exceeds %d", len(s), limit)
	}
	return s, nil
}
