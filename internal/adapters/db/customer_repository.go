// internal/adapters/db/customer_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
)

// customerRepository implements ports.CustomerRepository
type customerRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *Database, logger *slog.Logger) ports.CustomerRepository {
	return &customerRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "customer")),
	}
}

// applyCustomerFilters appends predicates in declaration order: customer
// code (exact), customer name (substring), city (exact).
func applyCustomerFilters(qb squirrel.SelectBuilder, params ports.CustomerListParams) squirrel.SelectBuilder {
	if params.CustomerCode != "" {
		qb = qb.Where(squirrel.Eq{"customer_code": params.CustomerCode})
	}
	if params.CustomerName != "" {
		qb = qb.Where(squirrel.ILike{"customer_name": "%" + params.CustomerName + "%"})
	}
	if params.City != "" {
		qb = qb.Where(squirrel.Eq{"city": params.City})
	}
	return qb
}

// BuildCustomerQuery renders the filtered, ordered, paginated customer query.
func BuildCustomerQuery(params ports.CustomerListParams) (string, []interface{}, error) {
	qb := squirrel.Select(
		"customer_code", "customer_name", "address", "city", "channel",
		"term_code", "active", "created_at", "updated_at",
	).From("customers").
		PlaceholderFormat(squirrel.Dollar)

	qb = applyCustomerFilters(qb, params)

	qb = qb.OrderBy("customer_code").
		Offset(uint64(params.Offset())).
		Limit(uint64(params.Limit))

	return qb.ToSql()
}

// BuildCustomerCountQuery renders the count variant with identical predicates.
func BuildCustomerCountQuery(params ports.CustomerListParams) (string, []interface{}, error) {
	qb := squirrel.Select("COUNT(*)").
		From("customers").
		PlaceholderFormat(squirrel.Dollar)

	qb = applyCustomerFilters(qb, params)

	return qb.ToSql()
}

// FindAll retrieves customers with filtering and pagination.
func (r *customerRepository) FindAll(ctx context.Context, params ports.CustomerListParams) ([]domain.Customer, int64, error) {
	countSQL, countArgs, err := BuildCustomerCountQuery(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	querySQL, args, err := BuildCustomerQuery(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return customers, totalCount, nil
}

// FindByCode retrieves one customer, or nil when not found.
func (r *customerRepository) FindByCode(ctx context.Context, customerCode string) (*domain.Customer, error) {
	query := `
		SELECT customer_code, customer_name, address, city, channel,
		       term_code, active, created_at, updated_at
		FROM customers
		WHERE customer_code = $1`

	row := r.db.QueryRow(ctx, query, customerCode)
	customer, err := scanCustomer(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &customer, nil
}

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var customer domain.Customer
	var address, city, channel, termCode sql.NullString

	err := row.Scan(
		&customer.CustomerCode, &customer.CustomerName, &address, &city,
		&channel, &termCode, &customer.Active,
		&customer.CreatedAt, &customer.UpdatedAt,
	)
	if err != nil {
		return domain.Customer{}, err
	}

	customer.Address = address.String
	customer.City = city.String
	customer.Channel = channel.String
	customer.TermCode = termCode.String

	return customer, nil
}
