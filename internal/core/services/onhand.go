// internal/core/services/onhand.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
	"github.com/Nojorono/meta-service-sub001/internal/pkg/cachekey"
)

// conversionFetchLimit caps how many conversion rows a single per-item lookup
// pulls from the view.
const conversionFetchLimit = 1000

// itemFetchLimit bounds a single-item read across subinventories. One item
// never spans anywhere near this many subinventories.
const itemFetchLimit = 10000

// OnhandService serves cached, UOM-expanded on-hand reads and records
// inventory movements that invalidate them.
type OnhandService struct {
	repo   ports.OnhandRepository
	txRepo ports.TransactionRepository
	cache  ports.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

// Statically assert that *OnhandService implements the OnhandService interface.
var _ ports.OnhandService = (*OnhandService)(nil)

// NewOnhandService creates a new on-hand service
func NewOnhandService(repo ports.OnhandRepository, txRepo ports.TransactionRepository,
	cache ports.CacheRepository, ttl time.Duration, logger *slog.Logger) *OnhandService {
	return &OnhandService{
		repo:   repo,
		txRepo: txRepo,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("service", "onhand")),
	}
}

// ListOnhand returns on-hand quantities grouped by subinventory, each item
// expanded across its known UOM conversions. The whole result is cached per
// filter combination; a cache hit never touches the database.
func (s *OnhandService) ListOnhand(ctx context.Context, params ports.OnhandListParams) (*ports.OnhandListResult, error) {
	params.Normalize()

	key := cachekey.Build(cachekey.NamespaceOnhand,
		"item", params.ItemCode,
		"sub", params.Subinventory,
		"desc", params.ItemDescription,
		"page", strconv.Itoa(params.Page),
		"limit", strconv.Itoa(params.Limit),
	)

	var result ports.OnhandListResult
	err := s.cache.GetOrSet(ctx, key, &result, func() (interface{}, error) {
		return s.loadOnhand(ctx, params)
	}, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to list onhand: %w", err)
	}

	return &result, nil
}

// loadOnhand is the cache-miss path: query, group, expand.
func (s *OnhandService) loadOnhand(ctx context.Context, params ports.OnhandListParams) (*ports.OnhandListResult, error) {
	rows, totalCount, err := s.repo.FindOnhand(ctx, params)
	if err != nil {
		return nil, err
	}

	groups := domain.GroupOnhand(rows)
	for gi := range groups {
		for ii := range groups[gi].Items {
			item := &groups[gi].Items[ii]
			item.Conversions = s.expandUom(ctx, item.ItemCode, item.Quantity, item.BaseUom)
		}
	}

	return &ports.OnhandListResult{
		Data:       groups,
		Count:      totalCount,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages(totalCount, params.Limit),
	}, nil
}

// expandUom expands one item's base quantity across its conversion rates. The
// rates themselves are cached per item. A failed rate lookup degrades the item
// to its base UOM only instead of failing the whole read.
func (s *OnhandService) expandUom(ctx context.Context, itemCode string, baseQuantity float64, baseUom string) []domain.UomQuantity {
	key := cachekey.Build(cachekey.NamespaceUomConversion, "item", itemCode)

	var rates []domain.ConversionRate
	err := s.cache.GetOrSet(ctx, key, &rates, func() (interface{}, error) {
		fetched, err := s.repo.FindConversionRates(ctx, itemCode, conversionFetchLimit, 0)
		if err != nil {
			return nil, err
		}
		return fetched, nil
	}, s.ttl)
	if err != nil {
		s.logger.WarnContext(ctx, "conversion rate lookup failed, keeping base uom only",
			slog.String("item_code", itemCode),
			slog.String("error", err.Error()))
		rates = nil
	}

	return domain.ExpandConversions(baseQuantity, baseUom, rates)
}

// GetItemOnhand returns the on-hand positions of a single item across every
// subinventory holding it.
func (s *OnhandService) GetItemOnhand(ctx context.Context, itemCode string) ([]domain.SubinventoryOnhand, error) {
	if itemCode == "" {
		return nil, fmt.Errorf("item_code is required")
	}

	result, err := s.ListOnhand(ctx, ports.OnhandListParams{
		ItemCode: itemCode,
		Page:     ports.DefaultPage,
		Limit:    itemFetchLimit,
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ListConversionRates returns the raw conversion rows, paginated. This read
// bypasses the per-item rate cache: it is a reference-data listing, not part
// of the expansion path.
func (s *OnhandService) ListConversionRates(ctx context.Context, itemCode string, page, limit int) (*ports.ConversionListResult, error) {
	if page < 1 {
		page = ports.DefaultPage
	}
	if limit < 1 {
		limit = ports.DefaultLimit
	}

	key := cachekey.Build(cachekey.NamespaceUomConversion,
		"item", itemCode,
		"page", strconv.Itoa(page),
		"limit", strconv.Itoa(limit),
	)

	var result ports.ConversionListResult
	err := s.cache.GetOrSet(ctx, key, &result, func() (interface{}, error) {
		rates, err := s.repo.FindConversionRates(ctx, itemCode, limit, (page-1)*limit)
		if err != nil {
			return nil, err
		}
		totalCount, err := s.repo.CountConversionRates(ctx, itemCode)
		if err != nil {
			return nil, err
		}
		return &ports.ConversionListResult{
			Data:       rates,
			Count:      totalCount,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages(totalCount, limit),
		}, nil
	}, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversion rates: %w", err)
	}

	return &result, nil
}

// RecordTransaction persists an inventory movement and invalidates every
// cached on-hand read. Invalidation failure is logged, not returned: the
// movement is already durable and the cache entries expire on their own.
func (s *OnhandService) RecordTransaction(ctx context.Context, tx *domain.InventoryTransaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	tx.PrepareForStorage()

	if err := s.txRepo.Insert(ctx, tx); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	if err := s.cache.DeletePattern(ctx, cachekey.Pattern(cachekey.NamespaceOnhand)); err != nil {
		s.logger.WarnContext(ctx, "onhand cache invalidation failed",
			slog.String("transaction_id", tx.TransactionID.String()),
			slog.String("error", err.Error()))
	}

	s.logger.InfoContext(ctx, "recorded inventory transaction",
		slog.String("transaction_id", tx.TransactionID.String()),
		slog.String("item_code", tx.ItemCode),
		slog.String("type", string(tx.TransactionType)))

	return nil
}

// InvalidateOnhand drops every cached on-hand result and cached conversion
// rate set. The next read repopulates from the database.
func (s *OnhandService) InvalidateOnhand(ctx context.Context) error {
	if err := s.cache.DeletePattern(ctx, cachekey.Pattern(cachekey.NamespaceOnhand)); err != nil {
		return fmt.Errorf("failed to invalidate onhand cache: %w", err)
	}
	if err := s.cache.DeletePattern(ctx, cachekey.Pattern(cachekey.NamespaceUomConversion)); err != nil {
		return fmt.Errorf("failed to invalidate conversion cache: %w", err)
	}

	s.logger.InfoContext(ctx, "invalidated onhand caches")
	return nil
}

// totalPages is the ceiling of count divided by limit.
func totalPages(count int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(count) / limit
	if int(count)%limit > 0 {
		pages++
	}
	return pages
}
