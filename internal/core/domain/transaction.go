// internal/core/domain/transaction.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies inventory movements.
type TransactionType string

const (
	TransactionReceipt  TransactionType = "RECEIPT"
	TransactionIssue    TransactionType = "ISSUE"
	TransactionTransfer TransactionType = "TRANSFER"
	TransactionAdjust   TransactionType = "ADJUSTMENT"
)

// InventoryTransaction is a single inventory movement recorded against a
// subinventory. Recording one stales every cached on-hand read.
type InventoryTransaction struct {
	TransactionID    uuid.UUID       `json:"transaction_id"`
	ItemCode         string          `json:"item_code"`
	SubinventoryCode string          `json:"subinventory_code"`
	Quantity         float64         `json:"quantity"`
	UomCode          string          `json:"uom_code"`
	TransactionType  TransactionType `json:"transaction_type"`
	TransactionDate  time.Time       `json:"transaction_date"`
	Reference        string          `json:"reference,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Validate checks required fields before the transaction is persisted.
func (t *InventoryTransaction) Validate() error {
	if t.ItemCode == "" {
		return fmt.Errorf("item_code is required")
	}
	if t.SubinventoryCode == "" {
		return fmt.Errorf("subinventory_code is required")
	}
	if t.Quantity == 0 {
		return fmt.Errorf("quantity must be non-zero")
	}
	if t.UomCode == "" {
		return fmt.Errorf("uom_code is required")
	}
	switch t.TransactionType {
	case TransactionReceipt, TransactionIssue, TransactionTransfer, TransactionAdjust:
	default:
		return fmt.Errorf("unknown transaction_type: %s", t.TransactionType)
	}
	return nil
}

// PrepareForStorage fills generated fields before insert.
func (t *InventoryTransaction) PrepareForStorage() {
	if t.TransactionID == uuid.Nil {
		t.TransactionID = uuid.New()
	}
	if t.TransactionDate.IsZero() {
		t.TransactionDate = time.Now()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
}
