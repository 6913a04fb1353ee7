//go:build integration
// +build integration

package db_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/Nojorono/meta-service-sub001/internal/adapters/db"
	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
	"github.com/Nojorono/meta-service-sub001/internal/core/ports"
	"github.com/Nojorono/meta-service-sub001/test/helpers"
)

type OnhandRepositorySuite struct {
	suite.Suite
	testDB *helpers.TestDB
	repo   ports.OnhandRepository
	txRepo ports.TransactionRepository
	ctx    context.Context
}

func (s *OnhandRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.repo = db.NewOnhandRepository(s.testDB.Database, helpers.TestLogger())
	s.txRepo = db.NewTransactionRepository(s.testDB.Database, helpers.TestLogger())
	s.ctx = context.Background()
}

func (s *OnhandRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.seedOnhand()
}

func (s *OnhandRepositorySuite) seedOnhand() {
	for _, row := range helpers.CreateTestOnhandRows() {
		_, err := s.testDB.PgxPool.Exec(s.ctx,
			`INSERT INTO onhand_quantities (subinventory_code, item_code, item_description, quantity, uom_code)
			 VALUES ($1, $2, $3, $4, $5)`,
			row.SubinventoryCode, row.ItemCode, row.ItemDescription, row.Quantity, row.UomCode)
		s.Require().NoError(err)
	}
	for _, rate := range helpers.CreateTestConversionRates() {
		_, err := s.testDB.PgxPool.Exec(s.ctx,
			`INSERT INTO uom_conversions (item_code, source_uom, base_uom, conversion_rate)
			 VALUES ($1, $2, $3, $4)`,
			rate.ItemCode, rate.SourceUom, rate.BaseUom, rate.Rate)
		s.Require().NoError(err)
	}
}

func (s *OnhandRepositorySuite) TestFindOnhand_NoFilters() {
	rows, count, err := s.repo.FindOnhand(s.ctx, ports.OnhandListParams{Page: 1, Limit: 10})
	s.NoError(err)
	s.Equal(int64(3), count)
	s.Len(rows, 3)

	// Ordered by subinventory then item
	s.Equal("SUB001", rows[0].SubinventoryCode)
	s.Equal("ITM-0001", rows[0].ItemCode)
	s.Equal("SUB002", rows[2].SubinventoryCode)
}

func (s *OnhandRepositorySuite) TestFindOnhand_ItemFilter() {
	rows, count, err := s.repo.FindOnhand(s.ctx, ports.OnhandListParams{
		ItemCode: "ITM-0001", Page: 1, Limit: 10,
	})
	s.NoError(err)
	s.Equal(int64(2), count)
	s.Len(rows, 2)
	for _, row := range rows {
		s.Equal("ITM-0001", row.ItemCode)
	}
}

func (s *OnhandRepositorySuite) TestFindOnhand_DescriptionFilterIsCaseInsensitive() {
	rows, count, err := s.repo.FindOnhand(s.ctx, ports.OnhandListParams{
		ItemDescription: "CLOVE", Page: 1, Limit: 10,
	})
	s.NoError(err)
	s.Equal(int64(3), count)
	s.Len(rows, 3)
}

func (s *OnhandRepositorySuite) TestFindOnhand_PaginationCountsAllMatches() {
	rows, count, err := s.repo.FindOnhand(s.ctx, ports.OnhandListParams{Page: 1, Limit: 2})
	s.NoError(err)
	s.Equal(int64(3), count)
	s.Len(rows, 2)

	rows, count, err = s.repo.FindOnhand(s.ctx, ports.OnhandListParams{Page: 2, Limit: 2})
	s.NoError(err)
	s.Equal(int64(3), count)
	s.Len(rows, 1)
}

func (s *OnhandRepositorySuite) TestFindConversionRates() {
	rates, err := s.repo.FindConversionRates(s.ctx, "ITM-0001", 1000, 0)
	s.NoError(err)
	s.Len(rates, 2)
	s.Equal("DUS", rates[0].SourceUom)
	s.Equal("BAL", rates[0].BaseUom)

	count, err := s.repo.CountConversionRates(s.ctx, "ITM-0001")
	s.NoError(err)
	s.Equal(int64(2), count)
}

func (s *OnhandRepositorySuite) TestFindConversionRates_OffsetSkipsRows() {
	all, err := s.repo.FindConversionRates(s.ctx, "ITM-0001", 1000, 0)
	s.NoError(err)
	s.Require().Len(all, 2)

	rest, err := s.repo.FindConversionRates(s.ctx, "ITM-0001", 1, 1)
	s.NoError(err)
	s.Require().Len(rest, 1)
	s.Equal(all[1], rest[0])
}

func (s *OnhandRepositorySuite) TestFindConversionRates_UnknownItem() {
	rates, err := s.repo.FindConversionRates(s.ctx, "ITM-9999", 1000, 0)
	s.NoError(err)
	s.Empty(rates)
}

func (s *OnhandRepositorySuite) TestInsertTransaction() {
	tx := helpers.CreateTestTransaction()
	tx.PrepareForStorage()

	s.NoError(s.txRepo.Insert(s.ctx, tx))
	s.NotEqual(uuid.Nil, tx.TransactionID)

	var got domain.InventoryTransaction
	err := s.testDB.PgxPool.QueryRow(s.ctx,
		`SELECT transaction_id, item_code, subinventory_code, quantity, uom_code, transaction_type, reference
		 FROM inventory_transactions WHERE transaction_id = $1`, tx.TransactionID).
		Scan(&got.TransactionID, &got.ItemCode, &got.SubinventoryCode,
			&got.Quantity, &got.UomCode, &got.TransactionType, &got.Reference)
	s.NoError(err)
	s.Equal(tx.ItemCode, got.ItemCode)
	s.Equal(tx.Quantity, got.Quantity)
	s.Equal(tx.TransactionType, got.TransactionType)
}

func TestOnhandRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OnhandRepositorySuite))
}
