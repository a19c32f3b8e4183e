package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/bundakue/titipan/internal/report"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Tanggal", 22},
	{"Pelanggan", 38},
	{"Kue", 38},
	{"Jumlah", 16},
	{"Terjual", 16},
	{"Retur", 14},
	{"Harga", 22},
	{"Total", 24},
}

func writePDF(rep *report.Report, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Laporan Penjualan", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Laporan Penjualan", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Periode: %s | %s", periodLabel(rep.Filter.Period),
		rep.GeneratedAt.Format(time.DateOnly)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total Terjual: %d pcs    Total Retur: %d pcs    Total Pendapatan: Rp. %d",
		rep.TotalSold, rep.TotalReturned, rep.TotalRevenue), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)

	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)

	for _, r := range rep.Rows {
		cells := []string{
			r.Date.Format(time.DateOnly),
			r.Partner,
			r.Product,
			fmt.Sprintf("%d", r.Sent),
			fmt.Sprintf("%d", r.Sold),
			fmt.Sprintf("%d", r.Returned),
			fmt.Sprintf("%d", r.UnitPrice),
			fmt.Sprintf("%d", r.Revenue),
		}
		for i, cell := range cells {
			align := "L"
			if i >= 3 {
				align = "R"
			}

			pdf.CellFormat(pdfColumns[i].width, 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}

	return nil
}

func periodLabel(p report.Period) string {
	switch p {
	case report.PeriodDaily:
		return "Harian"
	case report.PeriodMonthly:
		return "Bulanan"
	case report.PeriodYearly:
		return "Tahunan"
	}

	return string(p)
}
