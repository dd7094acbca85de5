package bundle

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// Digest computes a deterministic SHA256 digest over the record's JSON
// encoding, formatted as "sha256:<hex>". Records with equal content share a
// digest.
func (r *Record) Digest() string {
	b, err := json.Marshal(r)
	if err != nil {
		// Record holds only strings, ints and slices of them.
		b = fmt.Appendf(nil, "%+v", *r)
	}

	return fmt.Sprintf("sha256:%x", sha256.Sum256(b))
}

// IsDowngrade reports whether next carries a lower version code than r.
func (r *Record) IsDowngrade(next *Record) bool {
	return next.VersionCode < r.VersionCode
}
