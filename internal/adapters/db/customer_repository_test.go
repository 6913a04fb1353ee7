package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nojorono/meta-service-sub001/internal/adapters/db"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
)

func TestBuildCustomerQuery(t *testing.T) {
	tests := []struct {
		name         string
		params       ports.CustomerListParams
		wantContains []string
		wantArgs     []interface{}
	}{
		{
			name:   "no_filters",
			params: ports.CustomerListParams{Page: 1, Limit: 10},
			wantContains: []string{
				"FROM customers",
				"ORDER BY customer_code",
				"LIMIT 10",
				"OFFSET 0",
			},
			wantArgs: nil,
		},
		{
			name:   "code_filter_is_exact",
			params: ports.CustomerListParams{CustomerCode: "CUST-001", Page: 1, Limit: 10},
			wantContains: []string{
				"customer_code = $1",
			},
			wantArgs: []interface{}{"CUST-001"},
		},
		{
			name:   "name_filter_is_substring",
			params: ports.CustomerListParams{CustomerName: "rejeki", Page: 1, Limit: 10},
			wantContains: []string{
				"customer_name ILIKE $1",
			},
			wantArgs: []interface{}{"%rejeki%"},
		},
		{
			name: "combined_filters_keep_declaration_order",
			params: ports.CustomerListParams{
				CustomerCode: "CUST-001",
				CustomerName: "toko",
				City:         "Surabaya",
				Page:         2,
				Limit:        20,
			},
			wantContains: []string{
				"customer_code = $1",
				"customer_name ILIKE $2",
				"city = $3",
				"LIMIT 20",
				"OFFSET 20",
			},
			wantArgs: []interface{}{"CUST-001", "%toko%", "Surabaya"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := db.BuildCustomerQuery(tt.params)
			require.NoError(t, err)

			for _, fragment := range tt.wantContains {
				assert.Contains(t, sql, fragment)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildCustomerCountQuery_SharesPredicatesWithListQuery(t *testing.T) {
	params := ports.CustomerListParams{
		CustomerName: "toko",
		City:         "Malang",
		Page:         4,
		Limit:        15,
	}

	countSQL, countArgs, err := db.BuildCustomerCountQuery(params)
	require.NoError(t, err)

	_, listArgs, err := db.BuildCustomerQuery(params)
	require.NoError(t, err)

	assert.Equal(t, listArgs, countArgs)
	assert.Contains(t, countSQL, "COUNT(*)")
	assert.NotContains(t, countSQL, "LIMIT")
	assert.NotContains(t, countSQL, "ORDER BY")
}
