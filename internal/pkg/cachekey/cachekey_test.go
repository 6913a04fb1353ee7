package cachekey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nojorono/meta-service-sub001/internal/pkg/cachekey"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		ns       cachekey.Namespace
		pairs    []string
		expected string
	}{
		{
			name:     "namespace_only",
			ns:       cachekey.NamespaceOnhand,
			pairs:    nil,
			expected: "onhand",
		},
		{
			name:     "renders_values_in_declaration_order",
			ns:       cachekey.NamespaceOnhand,
			pairs:    []string{"item", "CLM16", "sub", "GD-RK-PRE", "page", "1", "limit", "10"},
			expected: "onhand:item:CLM16:sub:GD-RK-PRE:page:1:limit:10",
		},
		{
			name:     "empty_value_renders_wildcard_token",
			ns:       cachekey.NamespaceOnhand,
			pairs:    []string{"item", "", "sub", "GD-RK-PRE"},
			expected: "onhand:item:all:sub:GD-RK-PRE",
		},
		{
			name:     "trailing_field_without_value_is_wildcard",
			ns:       cachekey.NamespaceUomConversion,
			pairs:    []string{"item"},
			expected: "uomconv:item:all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cachekey.Build(tt.ns, tt.pairs...))
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := cachekey.Build(cachekey.NamespaceCustomer, "name", "PT ABC", "city", "")
	b := cachekey.Build(cachekey.NamespaceCustomer, "name", "PT ABC", "city", "")
	assert.Equal(t, a, b)

	// absent and empty are the same request
	c := cachekey.Build(cachekey.NamespaceCustomer, "name", "PT ABC", "city")
	assert.Equal(t, a, c)

	// a different filter combination must not collide
	d := cachekey.Build(cachekey.NamespaceCustomer, "name", "", "city", "PT ABC")
	assert.NotEqual(t, a, d)
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "onhand:*", cachekey.Pattern(cachekey.NamespaceOnhand))
}
