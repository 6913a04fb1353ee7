// internal/adapters/db/transaction_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
)

// transactionRepository implements ports.TransactionRepository
type transactionRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewTransactionRepository creates a new inventory transaction repository
func NewTransactionRepository(db *Database, logger *slog.Logger) ports.TransactionRepository {
	return &transactionRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "transaction")),
	}
}

// Insert records a single inventory movement.
func (r *transactionRepository) Insert(ctx context.Context, tx *domain.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (
			transaction_id, item_code, subinventory_code, quantity,
			uom_code, transaction_type, transaction_date, reference, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		tx.TransactionID, tx.ItemCode, tx.SubinventoryCode, tx.Quantity,
		tx.UomCode, tx.TransactionType, tx.TransactionDate, tx.Reference, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert inventory transaction: %w", err)
	}

	r.logger.DebugContext(ctx, "inventory transaction recorded",
		slog.String("transaction_id", tx.TransactionID.String()),
		slog.String("item_code", tx.ItemCode),
		slog.String("subinventory", tx.SubinventoryCode))

	return nil
}
