package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/consignment"
	"github.com/bundakue/titipan/internal/export"
	"github.com/bundakue/titipan/internal/report"
	"github.com/bundakue/titipan/internal/store/memory"
)

func newExportFixture(t *testing.T) *export.Service {
	t.Helper()

	ctx := context.Background()
	store := memory.New()
	catalogSvc := catalog.NewService(store)
	batchSvc := consignment.NewService(store)

	partner, err := catalogSvc.AddPartner(ctx, catalog.PartnerParams{Name: "Rumah Klapy"})
	require.NoError(t, err)

	product, err := catalogSvc.AddProduct(ctx, catalog.ProductParams{Name: "CALA ISI", Price: 2500})
	require.NoError(t, err)

	b, err := batchSvc.Create(ctx, consignment.CreateParams{
		PartnerID: partner.ID,
		ProductID: product.ID,
		Sent:      30,
	})
	require.NoError(t, err)

	_, err = batchSvc.SetReturned(ctx, b.ID, "5")
	require.NoError(t, err)

	return export.NewService(report.NewService(store, store))
}

func TestService_Export_XLSX(t *testing.T) {
	svc := newExportFixture(t)

	var buf bytes.Buffer
	err := svc.Export(context.Background(), report.Filter{
		PartnerID: report.AllPartners,
		Period:    report.PeriodDaily,
	}, export.FormatXLSX, &buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Laporan Penjualan")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)

	assert.Equal(t, []string{
		"Tanggal", "Pelanggan", "Kue", "Jumlah", "Terjual", "Retur", "Harga Satuan", "Total",
	}, rows[0])

	data := rows[1]
	assert.Equal(t, "Rumah Klapy", data[1])
	assert.Equal(t, "CALA ISI", data[2])
	assert.Equal(t, "30", data[3])
	assert.Equal(t, "25", data[4])
	assert.Equal(t, "5", data[5])
	assert.Equal(t, "62500", data[7])
}

func TestService_Export_PDF(t *testing.T) {
	svc := newExportFixture(t)

	var buf bytes.Buffer
	err := svc.Export(context.Background(), report.Filter{
		PartnerID: report.AllPartners,
		Period:    report.PeriodMonthly,
	}, export.FormatPDF, &buf)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestService_Export_UnknownFormat(t *testing.T) {
	svc := newExportFixture(t)

	var buf bytes.Buffer
	err := svc.Export(context.Background(), report.Filter{Period: report.PeriodDaily}, export.Format("docx"), &buf)
	assert.Error(t, err)
}

// blockingWriter stalls the first write until released, keeping the export
// slot occupied for the duration of the test.
type blockingWriter struct {
	entered chan struct{}
	release chan struct{}
	once    bool
}

func (w *blockingWriter) Write(p []byte) (int, error) {
	if !w.once {
		w.once = true
		close(w.entered)
		<-w.release
	}

	return len(p), nil
}

func TestService_Export_SecondCallRejected(t *testing.T) {
	svc := newExportFixture(t)

	w := &blockingWriter{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}

	filter := report.Filter{PartnerID: report.AllPartners, Period: report.PeriodDaily}

	done := make(chan error, 1)
	go func() {
		done <- svc.Export(context.Background(), filter, export.FormatXLSX, w)
	}()

	<-w.entered

	var buf bytes.Buffer
	err := svc.Export(context.Background(), filter, export.FormatXLSX, &buf)
	assert.ErrorIs(t, err, export.ErrBusy)

	close(w.release)
	require.NoError(t, <-done)

	// Once the first export finishes, the slot frees up again.
	require.NoError(t, svc.Export(context.Background(), filter, export.FormatXLSX, &buf))
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 8, 27, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "Laporan_Penjualan_2026-08-27.xlsx", export.Filename(export.FormatXLSX, at))
	assert.Equal(t, "Laporan_Penjualan_2026-08-27.pdf", export.Filename(export.FormatPDF, at))
}
