// internal/pkg/report/onhand.go

// Package report builds spreadsheet reports from on-hand data. The same
// workbook builder serves the synchronous HTTP export and the background
// report worker.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/Nojorono/meta-service-sub001/internal/core/domain"
)

var onhandHeaders = []string{
	"Subinventory", "Item Code", "Item Description",
	"Quantity", "UOM", "Conversions",
}

// BuildOnhandWorkbook renders grouped on-hand data as an xlsx workbook and
// returns the serialized file.
func BuildOnhandWorkbook(groups []domain.SubinventoryOnhand) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Onhand")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range onhandHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, group := range groups {
		for _, item := range group.Items {
			row := sheet.AddRow()
			row.AddCell().Value = group.SubinventoryCode
			row.AddCell().Value = item.ItemCode
			row.AddCell().Value = item.ItemDescription
			row.AddCell().Value = strconv.FormatFloat(item.Quantity, 'f', -1, 64)
			row.AddCell().Value = item.BaseUom
			row.AddCell().Value = formatConversions(item.Conversions)
		}
	}

	for i := range onhandHeaders {
		sheet.SetColWidth(i+1, i+1, 18)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

// Filename returns a timestamped report name.
func Filename(now time.Time) string {
	return fmt.Sprintf("onhand_report_%s.xlsx", now.Format("20060102_150405"))
}

// formatConversions renders every secondary UOM quantity as "CODE=qty",
// comma separated. The base UOM already has its own columns and is skipped.
func formatConversions(conversions []domain.UomQuantity) string {
	var b bytes.Buffer
	for i, c := range conversions {
		if i == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.UomCode)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(c.Quantity, 'f', 2, 64))
	}
	return b.String()
}
