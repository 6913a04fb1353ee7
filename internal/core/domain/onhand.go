// internal/core/domain/onhand.go
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OnhandRow is a raw on-hand quantity row as returned by the inventory view.
// Quantity is always expressed in the item's base UOM.
type OnhandRow struct {
	SubinventoryCode string  `json:"subinventory_code"`
	ItemCode         string  `json:"item_code"`
	ItemDescription  string  `json:"item_description"`
	Quantity         float64 `json:"quantity"`
	UomCode          string  `json:"uom_code"`
}

// UomQuantity is a quantity expressed in a specific unit of measure.
type UomQuantity struct {
	UomCode  string  `json:"uom_code"`
	Quantity float64 `json:"quantity"`
}

// ItemOnhand is the on-hand quantity of one item within a subinventory,
// expanded across all known UOM conversions.
type ItemOnhand struct {
	ItemCode        string        `json:"item_code"`
	ItemDescription string        `json:"item_description"`
	Quantity        float64       `json:"quantity"`
	BaseUom         string        `json:"base_uom"`
	Conversions     []UomQuantity `json:"conversions"`
}

// SubinventoryOnhand groups on-hand items under one subinventory.
type SubinventoryOnhand struct {
	SubinventoryCode string       `json:"subinventory_code"`
	Items            []ItemOnhand `json:"items"`
}

// ConversionRate is read-only reference data: one base unit of the item
// equals Rate source units, i.e. sourceQuantity = baseQuantity / Rate.
type ConversionRate struct {
	ItemCode  string  `json:"item_code"`
	SourceUom string  `json:"source_uom"`
	BaseUom   string  `json:"base_uom"`
	Rate      float64 `json:"conversion_rate"`
}

// GroupOnhand folds a flat row set into a two-level grouping: subinventory,
// then item. Rows are consumed in the order received and both levels preserve
// first-seen order. A duplicate (subinventory, item) pair keeps the first
// occurrence; later duplicates are ignored, not summed.
func GroupOnhand(rows []OnhandRow) []SubinventoryOnhand {
	var groups []SubinventoryOnhand
	subIdx := make(map[string]int, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		gi, ok := subIdx[row.SubinventoryCode]
		if !ok {
			gi = len(groups)
			subIdx[row.SubinventoryCode] = gi
			groups = append(groups, SubinventoryOnhand{SubinventoryCode: row.SubinventoryCode})
		}

		pairKey := row.SubinventoryCode + "\x00" + row.ItemCode
		if _, dup := seen[pairKey]; dup {
			continue
		}
		seen[pairKey] = struct{}{}

		groups[gi].Items = append(groups[gi].Items, ItemOnhand{
			ItemCode:        row.ItemCode,
			ItemDescription: row.ItemDescription,
			Quantity:        row.Quantity,
			BaseUom:         row.UomCode,
		})
	}

	return groups
}

// ExpandConversions converts a base quantity into every UOM known for the
// item. The base UOM entry always comes first and the result is never empty.
// A rate applies only when its BaseUom matches baseUom exactly (this field is
// case-sensitive by convention of the source view); emitted UOM codes are
// de-duplicated case-insensitively, first occurrence wins. Each converted
// quantity is baseQuantity / rate rounded to 2 decimals, half up, exactly
// once at emission.
func ExpandConversions(baseQuantity float64, baseUom string, rates []ConversionRate) []UomQuantity {
	result := []UomQuantity{{UomCode: baseUom, Quantity: baseQuantity}}

	emitted := map[string]struct{}{strings.ToUpper(baseUom): {}}

	for _, rate := range rates {
		if rate.BaseUom != baseUom || rate.Rate <= 0 {
			continue
		}
		upper := strings.ToUpper(rate.SourceUom)
		if _, dup := emitted[upper]; dup {
			continue
		}
		emitted[upper] = struct{}{}

		qty := decimal.NewFromFloat(baseQuantity).
			DivRound(decimal.NewFromFloat(rate.Rate), 2)
		result = append(result, UomQuantity{
			UomCode:  rate.SourceUom,
			Quantity: qty.InexactFloat64(),
		})
	}

	return result
}
