// cmd/seeder/main.go
//
// Seeds the master-data tables with development fixtures. Onhand rows can
// optionally be loaded from an Excel workbook instead of the built-in set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tealeg/xlsx/v3"
)

type onhandRow struct {
	Subinventory    string
	ItemCode        string
	ItemDescription string
	Quantity        float64
	UomCode         string
}

type conversionRow struct {
	ItemCode  string
	SourceUom string
	BaseUom   string
	Rate      float64
}

type customerRow struct {
	Code    string
	Name    string
	Address string
	City    string
	Channel string
	Term    string
}

var sampleOnhand = []onhandRow{
	{"SUB001", "ITM-0001", "Clove Cigarette 12s", 1440, "BAL"},
	{"SUB001", "ITM-0002", "Clove Cigarette 16s", 960, "BAL"},
	{"SUB001", "ITM-0003", "Filter Cigarette 20s", 2400, "BAL"},
	{"SUB002", "ITM-0001", "Clove Cigarette 12s", 320, "BAL"},
	{"SUB002", "ITM-0004", "Lighter Refill", 75, "PCS"},
	{"SUB003", "ITM-0003", "Filter Cigarette 20s", 180, "BAL"},
}

var sampleConversions = []conversionRow{
	{"ITM-0001", "DUS", "BAL", 0.05},
	{"ITM-0001", "SLOP", "BAL", 10},
	{"ITM-0002", "DUS", "BAL", 0.05},
	{"ITM-0002", "SLOP", "BAL", 10},
	{"ITM-0003", "DUS", "BAL", 0.025},
	{"ITM-0003", "SLOP", "BAL", 8},
}

var sampleCustomers = []customerRow{
	{"CUST-001", "Toko Sumber Rejeki", "Jl. Pahlawan 12", "Surabaya", "GT", "NET30"},
	{"CUST-002", "CV Maju Bersama", "Jl. Diponegoro 88", "Malang", "MT", "NET14"},
	{"CUST-003", "UD Cahaya Abadi", "Jl. Veteran 5", "Kediri", "GT", "COD"},
	{"CUST-004", "PT Retail Nusantara", "Jl. Sudirman 101", "Jakarta", "MT", "NET30"},
}

func main() {
	var (
		onhandFile = flag.String("onhand", "", "Optional Excel workbook with onhand rows (sheet 1: sub, item, desc, qty, uom)")
		truncate   = flag.Bool("truncate", false, "Truncate tables before seeding")
		dryRun     = flag.Bool("dry-run", false, "Preview changes without modifying database")
		logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "meta"),
		getEnv("DB_PASSWORD", "meta_dev_2025"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "meta_inventory"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	onhand := sampleOnhand
	if *onhandFile != "" {
		loaded, err := loadOnhandWorkbook(*onhandFile)
		if err != nil {
			logger.Error("failed to load onhand workbook", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("loaded onhand rows from workbook",
			slog.String("file", *onhandFile),
			slog.Int("rows", len(loaded)))
		onhand = loaded
	}

	if *dryRun {
		fmt.Printf("[DRY RUN] would seed %d onhand rows, %d conversions, %d customers\n",
			len(onhand), len(sampleConversions), len(sampleCustomers))
		return
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if *truncate {
		for _, table := range []string{"onhand_quantities", "uom_conversions", "customers"} {
			if _, err := pool.Exec(ctx, "TRUNCATE TABLE "+table); err != nil {
				logger.Error("failed to truncate table",
					slog.String("table", table),
					slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
		logger.Info("tables truncated")
	}

	if err := seed(ctx, pool, onhand); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed",
		slog.Int("onhand_rows", len(onhand)),
		slog.Int("conversions", len(sampleConversions)),
		slog.Int("customers", len(sampleCustomers)))
}

func seed(ctx context.Context, pool *pgxpool.Pool, onhand []onhandRow) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	onhandRows := make([][]interface{}, 0, len(onhand))
	for _, r := range onhand {
		onhandRows = append(onhandRows, []interface{}{
			r.Subinventory, r.ItemCode, r.ItemDescription, r.Quantity, r.UomCode,
		})
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"onhand_quantities"},
		[]string{"subinventory_code", "item_code", "item_description", "quantity", "uom_code"},
		pgx.CopyFromRows(onhandRows),
	); err != nil {
		return fmt.Errorf("failed to copy onhand rows: %w", err)
	}

	for _, c := range sampleConversions {
		if _, err := tx.Exec(ctx,
			`INSERT INTO uom_conversions (item_code, source_uom, base_uom, conversion_rate)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (item_code, source_uom) DO UPDATE SET conversion_rate = EXCLUDED.conversion_rate`,
			c.ItemCode, c.SourceUom, c.BaseUom, c.Rate,
		); err != nil {
			return fmt.Errorf("failed to insert conversion %s/%s: %w", c.ItemCode, c.SourceUom, err)
		}
	}

	for _, c := range sampleCustomers {
		if _, err := tx.Exec(ctx,
			`INSERT INTO customers (customer_code, customer_name, address, city, channel, term_code, active)
			 VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			 ON CONFLICT (customer_code) DO UPDATE SET
			   customer_name = EXCLUDED.customer_name,
			   address       = EXCLUDED.address,
			   city          = EXCLUDED.city,
			   channel       = EXCLUDED.channel,
			   term_code     = EXCLUDED.term_code,
			   updated_at    = NOW()`,
			c.Code, c.Name, c.Address, c.City, c.Channel, c.Term,
		); err != nil {
			return fmt.Errorf("failed to insert customer %s: %w", c.Code, err)
		}
	}

	return tx.Commit(ctx)
}

// loadOnhandWorkbook reads onhand rows from the first sheet of an Excel
// workbook. The first row is treated as a header and skipped.
func loadOnhandWorkbook(path string) ([]onhandRow, error) {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	sheet := wb.Sheets[0]
	defer sheet.Close()

	var rows []onhandRow
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		if r.GetCoordinate() == 0 {
			return nil
		}
		get := func(i int) string {
			cell := r.GetCell(i)
			if cell == nil {
				return ""
			}
			return strings.TrimSpace(cell.Value)
		}
		sub, item := get(0), get(1)
		if sub == "" || item == "" {
			return nil
		}
		qty, err := strconv.ParseFloat(get(3), 64)
		if err != nil {
			return fmt.Errorf("row %d: invalid quantity %q", r.GetCoordinate()+1, get(3))
		}
		rows = append(rows, onhandRow{
			Subinventory:    sub,
			ItemCode:        item,
			ItemDescription: get(2),
			Quantity:        qty,
			UomCode:         get(4),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
