package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/consignment"
	"github.com/bundakue/titipan/internal/report"
	"github.com/bundakue/titipan/internal/store/memory"
)

type fixture struct {
	store       *memory.Store
	catalogSvc  *catalog.Service
	batchSvc    *consignment.Service
	reportSvc   *report.Service
	partner     *catalog.Partner
	product     *catalog.Product
	generatedAt time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	store := memory.New()
	catalogSvc := catalog.NewService(store)
	batchSvc := consignment.NewService(store)

	now := time.Now()
	reportSvc := report.NewService(store, store).WithNow(func() time.Time { return now })

	partner, err := catalogSvc.AddPartner(ctx, catalog.PartnerParams{Name: "Rumah Klapy"})
	require.NoError(t, err)

	product, err := catalogSvc.AddProduct(ctx, catalog.ProductParams{Name: "CALA ISI", Price: 2500})
	require.NoError(t, err)

	return &fixture{
		store:       store,
		catalogSvc:  catalogSvc,
		batchSvc:    batchSvc,
		reportSvc:   reportSvc,
		partner:     partner,
		product:     product,
		generatedAt: now,
	}
}

func TestService_Compute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	b, err := f.batchSvc.Create(ctx, consignment.CreateParams{
		PartnerID: f.partner.ID,
		ProductID: f.product.ID,
		Sent:      30,
	})
	require.NoError(t, err)

	_, err = f.batchSvc.SetReturned(ctx, b.ID, "5")
	require.NoError(t, err)

	rep, err := f.reportSvc.Compute(ctx, report.Filter{
		PartnerID: report.AllPartners,
		Period:    report.PeriodDaily,
	})
	require.NoError(t, err)

	require.Equal(t, 1, rep.Count)
	assert.Equal(t, 25, rep.TotalSold)
	assert.Equal(t, 5, rep.TotalReturned)
	assert.Equal(t, int64(62500), rep.TotalRevenue)

	row := rep.Rows[0]
	assert.Equal(t, "Rumah Klapy", row.Partner)
	assert.Equal(t, "CALA ISI", row.Product)
	assert.Equal(t, int64(2500), row.UnitPrice)
	assert.Equal(t, int64(62500), row.Revenue)
}

func TestService_Compute_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.batchSvc.Create(ctx, consignment.CreateParams{
		PartnerID: f.partner.ID,
		ProductID: f.product.ID,
		Sent:      10,
	})
	require.NoError(t, err)

	filter := report.Filter{PartnerID: report.AllPartners, Period: report.PeriodMonthly}

	first, err := f.reportSvc.Compute(ctx, filter)
	require.NoError(t, err)

	second, err := f.reportSvc.Compute(ctx, filter)
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, first.TotalRevenue, second.TotalRevenue)
}

func TestService_Compute_DeletedPartnerShowsUnknown(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.batchSvc.Create(ctx, consignment.CreateParams{
		PartnerID: f.partner.ID,
		ProductID: f.product.ID,
		Sent:      10,
	})
	require.NoError(t, err)

	require.NoError(t, f.catalogSvc.DeletePartner(ctx, f.partner.ID))

	rep, err := f.reportSvc.Compute(ctx, report.Filter{
		PartnerID: report.AllPartners,
		Period:    report.PeriodDaily,
	})
	require.NoError(t, err)

	require.Equal(t, 1, rep.Count)
	assert.Equal(t, report.UnknownLabel, rep.Rows[0].Partner)
	assert.Equal(t, "CALA ISI", rep.Rows[0].Product)
}

func TestService_Compute_DeletedProductHasZeroPrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.batchSvc.Create(ctx, consignment.CreateParams{
		PartnerID: f.partner.ID,
		ProductID: f.product.ID,
		Sent:      10,
	})
	require.NoError(t, err)

	require.NoError(t, f.catalogSvc.DeleteProduct(ctx, f.product.ID))

	rep, err := f.reportSvc.Compute(ctx, report.Filter{
		PartnerID: report.AllPartners,
		Period:    report.PeriodDaily,
	})
	require.NoError(t, err)

	require.Equal(t, 1, rep.Count)
	assert.Equal(t, report.UnknownLabel, rep.Rows[0].Product)
	assert.Equal(t, int64(0), rep.Rows[0].UnitPrice)
	assert.Equal(t, int64(0), rep.TotalRevenue)
}

func TestService_Compute_PriceEditRewritesHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	b, err := f.batchSvc.Create(ctx, consignment.CreateParams{
		PartnerID: f.partner.ID,
		ProductID: f.product.ID,
		Sent:      30,
	})
	require.NoError(t, err)

	_, err = f.batchSvc.SetReturned(ctx, b.ID, "5")
	require.NoError(t, err)

	filter := report.Filter{PartnerID: report.AllPartners, Period: report.PeriodDaily}

	before, err := f.reportSvc.Compute(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(62500), before.TotalRevenue)

	_, err = f.catalogSvc.EditProduct(ctx, f.product.ID, f.product.Name, 3000)
	require.NoError(t, err)

	after, err := f.reportSvc.Compute(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(75000), after.TotalRevenue)
}

func TestService_Compute_WindowExcludesOldBatches(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	lastYear := f.generatedAt.AddDate(-1, 0, 0)
	require.NoError(t, f.store.CreateBatch(ctx, &consignment.Batch{
		PartnerID: f.partner.ID,
		ProductID: f.product.ID,
		Sent:      10,
		Sold:      10,
		Status:    consignment.StatusPending,
		Date:      consignment.Today(lastYear),
	}))

	_, err := f.batchSvc.Create(ctx, consignment.CreateParams{
		PartnerID: f.partner.ID,
		ProductID: f.product.ID,
		Sent:      20,
	})
	require.NoError(t, err)

	rep, err := f.reportSvc.Compute(ctx, report.Filter{
		PartnerID: report.AllPartners,
		Period:    report.PeriodYearly,
	})
	require.NoError(t, err)

	require.Equal(t, 1, rep.Count)
	assert.Equal(t, 20, rep.Rows[0].Sent)
}

func TestService_Compute_PartnerFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	other, err := f.catalogSvc.AddPartner(ctx, catalog.PartnerParams{Name: "Toko Sebelah"})
	require.NoError(t, err)

	_, err = f.batchSvc.Create(ctx, consignment.CreateParams{
		PartnerID: f.partner.ID,
		ProductID: f.product.ID,
		Sent:      10,
	})
	require.NoError(t, err)

	_, err = f.batchSvc.Create(ctx, consignment.CreateParams{
		PartnerID: other.ID,
		ProductID: f.product.ID,
		Sent:      7,
	})
	require.NoError(t, err)

	rep, err := f.reportSvc.Compute(ctx, report.Filter{
		PartnerID: other.ID.String(),
		Period:    report.PeriodDaily,
	})
	require.NoError(t, err)

	require.Equal(t, 1, rep.Count)
	assert.Equal(t, "Toko Sebelah", rep.Rows[0].Partner)

	// A filter value that is not a partner id matches nothing.
	rep, err = f.reportSvc.Compute(ctx, report.Filter{
		PartnerID: "not-a-uuid",
		Period:    report.PeriodDaily,
	})
	require.NoError(t, err)
	assert.Zero(t, rep.Count)
}

func TestService_Overview(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for i := 0; i < 7; i++ {
		b, err := f.batchSvc.Create(ctx, consignment.CreateParams{
			PartnerID: f.partner.ID,
			ProductID: f.product.ID,
			Sent:      10,
		})
		require.NoError(t, err)

		if i == 0 {
			require.NoError(t, f.batchSvc.SetStatus(ctx, b.ID, consignment.StatusCompleted))
		}
	}

	ov, err := f.reportSvc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, ov.Partners)
	assert.Equal(t, 1, ov.Products)
	assert.Equal(t, 6, ov.ActiveBatches)
	assert.Equal(t, int64(7*10*2500), ov.TotalRevenue)
	assert.Len(t, ov.Recent, 5)
}
