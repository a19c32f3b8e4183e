package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bundakue/titipan/internal/report"
)

const sheetName = "Laporan Penjualan"

// xlsxHeaders matches the spreadsheet the owner has been sharing with
// partners; column names stay in Indonesian.
var xlsxHeaders = []string{
	"Tanggal",
	"Pelanggan",
	"Kue",
	"Jumlah",
	"Terjual",
	"Retur",
	"Harga Satuan",
	"Total",
}

func writeXLSX(rep *report.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, h := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}

		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}

		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("styling header: %w", err)
		}
	}

	row := 2

	for _, r := range rep.Rows {
		values := []any{
			r.Date.Format(time.DateOnly),
			r.Partner,
			r.Product,
			r.Sent,
			r.Sold,
			r.Returned,
			r.UnitPrice,
			r.Revenue,
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}

			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
		row++
	}

	// Totals line after a blank row.
	row++

	totals := []any{
		"Total", "", "",
		"",
		rep.TotalSold,
		rep.TotalReturned,
		"",
		rep.TotalRevenue,
	}
	for i, v := range totals {
		if v == "" {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("totals cell: %w", err)
		}

		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("writing totals: %w", err)
		}

		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("styling totals: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}
