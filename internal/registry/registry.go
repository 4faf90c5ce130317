// Package registry defines the key→path slot mapping for one context.
package registry

import (
	"regexp"
	"sort"
)

var keyPattern = regexp.MustCompile(`^[0-9a-z]$`)

// ValidKey reports whether s is a well-formed slot key: exactly one
// lowercase alphanumeric character.
func ValidKey(s string) bool {
	return keyPattern.MatchString(s)
}

// Registry maps single-character slot keys to file paths.
// It is reloaded from the store at the start of every operation, never
// cached across operations.
type Registry map[string]string

// Add sets key to path, unconditionally overwriting any prior value.
// Key shape is not enforced here; callers validate (see menu.Validate
// for the same rule applied to edited lines).
func (r Registry) Add(key, path string) {
	r[key] = path
}

// Target returns the path stored under key, or ok=false when unset.
func (r Registry) Target(key string) (string, bool) {
	p, ok := r[key]
	return p, ok
}

// SortedKeys returns the keys in byte-value order.
func (r Registry) SortedKeys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
