// internal/core/ports/customer.go
package ports

import (
	"context"

	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
)

// CustomerListParams holds the optional filter predicates for the customer
// master-data read path.
type CustomerListParams struct {
	CustomerCode string `json:"customer_code,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	City         string `json:"city,omitempty"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
}

// Normalize applies pagination defaults.
func (p *CustomerListParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
}

// Offset derives the row offset from page and limit.
func (p CustomerListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// CustomerListResult is the cached, paginated result of a customer read.
type CustomerListResult struct {
	Data       []domain.Customer `json:"data"`
	Count      int64             `json:"count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// CustomerRepository is the persistence port for the customer view.
type CustomerRepository interface {
	FindAll(ctx context.Context, params CustomerListParams) ([]domain.Customer, int64, error)
	FindByCode(ctx context.Context, customerCode string) (*domain.Customer, error)
}

// CustomerService is the application service port for customer reads.
type CustomerService interface {
	List(ctx context.Context, params CustomerListParams) (*CustomerListResult, error)
	GetByCode(ctx context.Context, customerCode string) (*domain.Customer, error)
}
