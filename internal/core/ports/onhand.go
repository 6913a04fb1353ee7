// internal/core/ports/onhand.go
package ports

import (
	"context"

	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
)

// Pagination defaults applied when a caller omits page or limit.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// OnhandListParams holds the optional filter predicates for the on-hand read
// path. Field order here is the declaration order of the query predicates.
type OnhandListParams struct {
	ItemCode        string `json:"item_code,omitempty"`
	Subinventory    string `json:"subinventory,omitempty"`
	ItemDescription string `json:"item_description,omitempty"`
	Page            int    `json:"page"`
	Limit           int    `json:"limit"`
}

// Normalize applies pagination defaults.
func (p *OnhandListParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
}

// Offset derives the row offset from page and limit.
func (p OnhandListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OnhandListResult is the cached, paginated result of an on-hand read.
type OnhandListResult struct {
	Data       []domain.SubinventoryOnhand `json:"data"`
	Count      int64                       `json:"count"`
	Page       int                         `json:"page"`
	Limit      int                         `json:"limit"`
	TotalPages int                         `json:"total_pages"`
}

// ConversionListResult is a paginated set of UOM conversion rates.
type ConversionListResult struct {
	Data       []domain.ConversionRate `json:"data"`
	Count      int64                   `json:"count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
}

// OnhandRepository is the persistence port for the on-hand quantity view and
// the UOM conversion view. Implemented by the database adapter.
type OnhandRepository interface {
	FindOnhand(ctx context.Context, params OnhandListParams) ([]domain.OnhandRow, int64, error)
	FindConversionRates(ctx context.Context, itemCode string, limit, offset int) ([]domain.ConversionRate, error)
	CountConversionRates(ctx context.Context, itemCode string) (int64, error)
}

// TransactionRepository persists inventory movements.
type TransactionRepository interface {
	Insert(ctx context.Context, tx *domain.InventoryTransaction) error
}

// OnhandService is the application service port for on-hand reads.
type OnhandService interface {
	ListOnhand(ctx context.Context, params OnhandListParams) (*OnhandListResult, error)
	GetItemOnhand(ctx context.Context, itemCode string) ([]domain.SubinventoryOnhand, error)
	ListConversionRates(ctx context.Context, itemCode string, page, limit int) (*ConversionListResult, error)
	RecordTransaction(ctx context.Context, tx *domain.InventoryTransaction) error
	InvalidateOnhand(ctx context.Context) error
}
