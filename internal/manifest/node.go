// Package manifest decodes manifest text into a read-only tree and provides
// typed, default-tolerant lookups over it.
package manifest

import (
	"math"

	"cuelang.org/go/cue"
)

// Presence distinguishes an omitted field from one of the wrong shape.
type Presence uint8

const (
	// Absent means the key is missing or holds null.
	Absent Presence = iota
	// Present means the key holds a value of the requested shape.
	Present
	// Mismatch means the key holds a value of another shape.
	Mismatch
)

// String returns the presence name.
func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Mismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Node is a position in a decoded manifest. The zero Node behaves like a
// missing value: every lookup on it yields the caller's default.
type Node struct {
	v cue.Value
}

// Exists reports whether the node refers to a value (null included).
func (n Node) Exists() bool {
	return n.v.Exists()
}

// IsNull reports whether the node holds an explicit JSON null.
func (n Node) IsNull() bool {
	return n.v.Exists() && n.v.Kind() == cue.NullKind
}

// IsObject reports whether the node is a JSON object.
func (n Node) IsObject() bool {
	return n.v.Exists() && n.v.Kind() == cue.StructKind
}

// IsArray reports whether the node is a JSON array.
func (n Node) IsArray() bool {
	return n.v.Exists() && n.v.Kind() == cue.ListKind
}

// IsString reports whether the node is a JSON string.
func (n Node) IsString() bool {
	return n.v.Exists() && n.v.Kind() == cue.StringKind
}

// Has reports whether key is present on an object node, null included.
func (n Node) Has(key string) bool {
	return n.Child(key).Exists()
}

// Child returns the value under key, or the zero Node when n is not an
// object or the key is missing.
func (n Node) Child(key string) Node {
	if !n.IsObject() {
		return Node{}
	}
	c := n.v.LookupPath(cue.MakePath(cue.Str(key)))
	if !c.Exists() {
		return Node{}
	}
	return Node{v: c}
}

// Elements returns the items of an array node in order, or nil otherwise.
func (n Node) Elements() []Node {
	if !n.IsArray() {
		return nil
	}
	iter, err := n.v.List()
	if err != nil {
		return nil
	}
	var out []Node
	for iter.Next() {
		out = append(out, Node{v: iter.Value()})
	}
	return out
}

// Len returns the element count of an array node, 0 otherwise.
func (n Node) Len() int {
	return len(n.Elements())
}

// AsString returns the node's string value.
func (n Node) AsString() (string, bool) {
	if !n.IsString() {
		return "", false
	}
	s, err := n.v.String()
	return s, err == nil
}

// AsInt returns the node's integer value. Whole-valued floats such as 1.0
// qualify. Fractional numbers and values outside the int range do not.
func (n Node) AsInt() (int, bool) {
	if !n.v.Exists() {
		return 0, false
	}
	switch n.v.Kind() {
	case cue.IntKind:
		i, err := n.v.Int64()
		if err != nil || int64(int(i)) != i {
			return 0, false
		}
		return int(i), true
	case cue.FloatKind:
		f, err := n.v.Float64()
		if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		i := int64(f)
		if int64(int(i)) != i {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// AsBool returns the node's boolean value.
func (n Node) AsBool() (bool, bool) {
	if !n.v.Exists() || n.v.Kind() != cue.BoolKind {
		return false, false
	}
	b, err := n.v.Bool()
	return b, err == nil
}

// String returns the string under key, or def when the key is missing or
// not a string.
func (n Node) String(key, def string) string {
	if s, ok := n.Child(key).AsString(); ok {
		return s
	}
	return def
}

// Int returns the integer under key, or def when the key is missing or not
// an integer.
func (n Node) Int(key string, def int) int {
	if i, ok := n.Child(key).AsInt(); ok {
		return i
	}
	return def
}

// Bool returns the boolean under key, or def when the key is missing or not
// a boolean.
func (n Node) Bool(key string, def bool) bool {
	if b, ok := n.Child(key).AsBool(); ok {
		return b
	}
	return def
}

// Tree returns the object or array under key, or the zero Node for any
// other shape.
func (n Node) Tree(key string) Node {
	c := n.Child(key)
	if c.IsObject() || c.IsArray() {
		return c
	}
	return Node{}
}

// LookupString returns the string under key with its presence.
func (n Node) LookupString(key string) (string, Presence) {
	c := n.Child(key)
	if !c.Exists() || c.IsNull() {
		return "", Absent
	}
	if s, ok := c.AsString(); ok {
		return s, Present
	}
	return "", Mismatch
}

// LookupInt returns the integer under key with its presence.
func (n Node) LookupInt(key string) (int, Presence) {
	c := n.Child(key)
	if !c.Exists() || c.IsNull() {
		return 0, Absent
	}
	if i, ok := c.AsInt(); ok {
		return i, Present
	}
	return 0, Mismatch
}

// LookupBool returns the boolean under key with its presence.
func (n Node) LookupBool(key string) (bool, Presence) {
	c := n.Child(key)
	if !c.Exists() || c.IsNull() {
		return false, Absent
	}
	if b, ok := c.AsBool(); ok {
		return b, Present
	}
	return false, Mismatch
}
