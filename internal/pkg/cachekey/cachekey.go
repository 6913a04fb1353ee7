// internal/pkg/cachekey/cachekey.go

// Package cachekey derives deterministic cache keys from request parameters.
// Keys follow the convention "<namespace>:<field>:<value-or-'all'>:...", so
// semantically identical requests (absent filter vs empty string) always map
// to the same key.
package cachekey

import "strings"

// Namespace prefixes one family of cached reads.
type Namespace string

const (
	NamespaceOnhand        Namespace = "onhand"
	NamespaceUomConversion Namespace = "uomconv"
	NamespaceCustomer      Namespace = "customer"
)

// Wildcard is the token rendered for an absent or empty filter value.
const Wildcard = "all"

// Build derives a key from alternating field/value pairs. Empty values render
// as the wildcard token. A trailing field with no value is treated as empty.
func Build(ns Namespace, fieldValuePairs ...string) string {
	var b strings.Builder
	b.WriteString(string(ns))

	for i := 0; i < len(fieldValuePairs); i += 2 {
		b.WriteByte(':')
		b.WriteString(fieldValuePairs[i])
		b.WriteByte(':')

		value := ""
		if i+1 < len(fieldValuePairs) {
			value = fieldValuePairs[i+1]
		}
		if value == "" {
			value = Wildcard
		}
		b.WriteString(value)
	}

	return b.String()
}

// Pattern returns the glob matching every key in a namespace, for
// pattern-based invalidation.
func Pattern(ns Namespace) string {
	return string(ns) + ":*"
}
