// internal/core/services/customer.go
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

// CustomerService serves cached customer master-data reads.
type CustomerService struct {
	repo   ports.CustomerRepository
	cache  ports.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

// Statically assert that *CustomerService implements the CustomerService interface.
var _ ports.CustomerService = (*CustomerService)(nil)

// NewCustomerService creates a new customer service
func NewCustomerService(repo ports.CustomerRepository, cache ports.CacheRepository,
	ttl time.Duration, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("service", "customer")),
	}
}

// List returns customers matching the filter set, cached per combination.
func (s *CustomerService) List(ctx context.Context, params ports.CustomerListParams) (*ports.CustomerListResult, error) {
	params.Normalize()

	key := cachekey.Build(cachekey.NamespaceCustomer,
		"code", params.CustomerCode,
		"name", params.CustomerName,
		"city", params.City,
		"page", strconv.Itoa(params.Page),
		"limit", strconv.Itoa(params.Limit),
	)

	var result ports.CustomerListResult
	err := s.cache.GetOrSet(ctx, key, &result, func() (interface{}, error) {
		customers, totalCount, err := s.repo.FindAll(ctx, params)
		if err != nil {
			return nil, err
		}
		return &ports.CustomerListResult{
			Data:       customers,
			Count:      totalCount,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: totalPages(totalCount, params.Limit),
		}, nil
	}, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &result, nil
}

// GetByCode returns a single customer, or an error when the code is unknown.
func (s *CustomerService) GetByCode(ctx context.Context, customerCode string) (*domain.Customer, error) {
	if customerCode == "" {
		return nil, fmt.Errorf("customer_code is required")
	}

	key := cachekey.Build(cachekey.NamespaceCustomer, "code", customerCode)

	var customer domain.Customer
	err := s.cache.GetOrSet(ctx, key, &customer, func() (interface{}, error) {
		found, err := s.repo.FindByCode(ctx, customerCode)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, fmt.Errorf("customer not found: %s", customerCode)
		}
		return found, nil
	}, s.ttl)
	if err != nil {
		return nil, err
	}

	return &customer, nil
}
