// internal/core/domain/customer.go
package domain

import "time"

// Customer is a master-data record from the customer view.
type Customer struct {
	CustomerCode string    `json:"customer_code"`
	CustomerName string    `json:"customer_name"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Channel      string    `json:"channel,omitempty"`
	TermCode     string    `json:"term_code,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
