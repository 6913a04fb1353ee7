package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nojorono/meta-service-sub001/internal/adapters/db"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
)

func TestBuildOnhandQuery(t *testing.T) {
	tests := []struct {
		name         string
		params       ports.OnhandListParams
		wantContains []string
		wantArgs     []interface{}
	}{
		{
			name:   "no_filters_applies_pagination_only",
			params: ports.OnhandListParams{Page: 1, Limit: 10},
			wantContains: []string{
				"FROM onhand_quantities",
				"ORDER BY subinventory_code, item_code",
				"LIMIT 10",
				"OFFSET 0",
			},
			wantArgs: nil,
		},
		{
			name:   "item_code_filter_is_exact_match",
			params: ports.OnhandListParams{ItemCode: "ITM-0001", Page: 1, Limit: 10},
			wantContains: []string{
				"item_code = $1",
			},
			wantArgs: []interface{}{"ITM-0001"},
		},
		{
			name:   "description_filter_uses_ilike_with_wildcards",
			params: ports.OnhandListParams{ItemDescription: "clove", Page: 1, Limit: 10},
			wantContains: []string{
				"item_description ILIKE $1",
			},
			wantArgs: []interface{}{"%clove%"},
		},
		{
			name: "all_filters_in_declaration_order",
			params: ports.OnhandListParams{
				ItemCode:        "ITM-0001",
				Subinventory:    "SUB001",
				ItemDescription: "clove",
				Page:            3,
				Limit:           25,
			},
			wantContains: []string{
				"item_code = $1",
				"subinventory_code = $2",
				"item_description ILIKE $3",
				"LIMIT 25",
				"OFFSET 50",
			},
			wantArgs: []interface{}{"ITM-0001", "SUB001", "%clove%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := db.BuildOnhandQuery(tt.params)
			require.NoError(t, err)

			for _, fragment := range tt.wantContains {
				assert.Contains(t, sql, fragment)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildOnhandCountQuery_SharesPredicatesWithListQuery(t *testing.T) {
	params := ports.OnhandListParams{
		ItemCode:        "ITM-0001",
		Subinventory:    "SUB001",
		ItemDescription: "clove",
		Page:            5,
		Limit:           50,
	}

	countSQL, countArgs, err := db.BuildOnhandCountQuery(params)
	require.NoError(t, err)

	_, listArgs, err := db.BuildOnhandQuery(params)
	require.NoError(t, err)

	// Count and list must agree on predicates; count never paginates
	assert.Equal(t, listArgs, countArgs)
	assert.Contains(t, countSQL, "COUNT(*)")
	assert.NotContains(t, countSQL, "LIMIT")
	assert.NotContains(t, countSQL, "OFFSET")
	assert.NotContains(t, countSQL, "ORDER BY")
}

func TestBuildConversionQuery(t *testing.T) {
	sql, args, err := db.BuildConversionQuery("ITM-0001", 1000, 0)
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM uom_conversions")
	assert.Contains(t, sql, "item_code = $1")
	assert.Contains(t, sql, "ORDER BY item_code, source_uom")
	assert.Contains(t, sql, "LIMIT 1000")
	assert.Contains(t, sql, "OFFSET 0")
	assert.Equal(t, []interface{}{"ITM-0001"}, args)
}

func TestBuildConversionQuery_SecondPageOffsets(t *testing.T) {
	sql, _, err := db.BuildConversionQuery("ITM-0001", 25, 25)
	require.NoError(t, err)

	assert.Contains(t, sql, "LIMIT 25")
	assert.Contains(t, sql, "OFFSET 25")
}

func TestBuildConversionQuery_EmptyItemFetchesAll(t *testing.T) {
	sql, args, err := db.BuildConversionQuery("", 500, 0)
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "LIMIT 500")
	assert.Nil(t, args)
}
