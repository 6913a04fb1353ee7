// internal/adapters/db/onhand_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
)

// onhandRepository implements ports.OnhandRepository over the on-hand
// quantity and UOM conversion views.
type onhandRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewOnhandRepository creates a new on-hand repository
func NewOnhandRepository(db *Database, logger *slog.Logger) ports.OnhandRepository {
	return &onhandRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "onhand")),
	}
}

// applyOnhandFilters appends the filter predicates in declaration order:
// item code (exact), subinventory (exact), item description (substring).
// The list query and the count query share this function so both always
// carry the identical predicate set.
func applyOnhandFilters(qb squirrel.SelectBuilder, params ports.OnhandListParams) squirrel.SelectBuilder {
	if params.ItemCode != "" {
		qb = qb.Where(squirrel.Eq{"item_code": params.ItemCode})
	}
	if params.Subinventory != "" {
		qb = qb.Where(squirrel.Eq{"subinventory_code": params.Subinventory})
	}
	if params.ItemDescription != "" {
		qb = qb.Where(squirrel.ILike{"item_description": "%" + params.ItemDescription + "%"})
	}
	return qb
}

// BuildOnhandQuery renders the filtered, ordered, paginated row query.
func BuildOnhandQuery(params ports.OnhandListParams) (string, []interface{}, error) {
	qb := squirrel.Select(
		"subinventory_code", "item_code", "item_description", "quantity", "uom_code",
	).From("onhand_quantities").
		PlaceholderFormat(squirrel.Dollar)

	qb = applyOnhandFilters(qb, params)

	qb = qb.OrderBy("subinventory_code", "item_code").
		Offset(uint64(params.Offset())).
		Limit(uint64(params.Limit))

	return qb.ToSql()
}

// BuildOnhandCountQuery renders the count variant: same predicates, no
// ordering or pagination.
func BuildOnhandCountQuery(params ports.OnhandListParams) (string, []interface{}, error) {
	qb := squirrel.Select("COUNT(*)").
		From("onhand_quantities").
		PlaceholderFormat(squirrel.Dollar)

	qb = applyOnhandFilters(qb, params)

	return qb.ToSql()
}

// FindOnhand retrieves on-hand rows with filtering and pagination, plus the
// unpaginated count for the same filters.
func (r *onhandRepository) FindOnhand(ctx context.Context, params ports.OnhandListParams) ([]domain.OnhandRow, int64, error) {
	countSQL, countArgs, err := BuildOnhandCountQuery(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count on-hand rows: %w", err)
	}

	querySQL, args, err := BuildOnhandQuery(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query on-hand rows: %w", err)
	}
	defer rows.Close()

	var result []domain.OnhandRow
	for rows.Next() {
		var row domain.OnhandRow
		if err := rows.Scan(
			&row.SubinventoryCode, &row.ItemCode, &row.ItemDescription,
			&row.Quantity, &row.UomCode,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan on-hand row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	r.logger.DebugContext(ctx, "on-hand rows fetched",
		slog.Int("rows", len(result)),
		slog.Int64("total", totalCount))

	return result, totalCount, nil
}

// BuildConversionQuery renders the conversion-rate query for one item.
// An empty itemCode fetches all items (used by warmup).
func BuildConversionQuery(itemCode string, limit, offset int) (string, []interface{}, error) {
	qb := squirrel.Select("item_code", "source_uom", "base_uom", "conversion_rate").
		From("uom_conversions").
		PlaceholderFormat(squirrel.Dollar)

	if itemCode != "" {
		qb = qb.Where(squirrel.Eq{"item_code": itemCode})
	}

	qb = qb.OrderBy("item_code", "source_uom").
		Offset(uint64(offset)).
		Limit(uint64(limit))

	return qb.ToSql()
}

// FindConversionRates retrieves the UOM conversion rates for an item.
func (r *onhandRepository) FindConversionRates(ctx context.Context, itemCode string, limit, offset int) ([]domain.ConversionRate, error) {
	querySQL, args, err := BuildConversionQuery(itemCode, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to build conversion query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversion rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.ConversionRate
	for rows.Next() {
		var rate domain.ConversionRate
		if err := rows.Scan(&rate.ItemCode, &rate.SourceUom, &rate.BaseUom, &rate.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan conversion rate: %w", err)
		}
		rates = append(rates, rate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return rates, nil
}

// CountConversionRates returns how many conversion rates exist for an item.
func (r *onhandRepository) CountConversionRates(ctx context.Context, itemCode string) (int64, error) {
	qb := squirrel.Select("COUNT(*)").
		From("uom_conversions").
		PlaceholderFormat(squirrel.Dollar)

	if itemCode != "" {
		qb = qb.Where(squirrel.Eq{"item_code": itemCode})
	}

	countSQL, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build conversion count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&count); err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count conversion rates: %w", err)
	}

	return count, nil
}
