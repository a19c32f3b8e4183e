package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/consignment"
	"github.com/bundakue/titipan/internal/store/memory"
)

func TestStore_Partners(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	p := &catalog.Partner{Name: "Rumah Klapy", Contact: "-"}
	require.NoError(t, store.CreatePartner(ctx, p))
	require.NotEmpty(t, p.ID)

	got, err := store.GetPartner(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rumah Klapy", got.Name)

	// Reads return copies; mutating one must not leak into the store.
	got.Name = "scribbled"

	again, err := store.GetPartner(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rumah Klapy", again.Name)

	require.NoError(t, store.DeletePartner(ctx, p.ID))

	_, err = store.GetPartner(ctx, p.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.DeletePartner(ctx, p.ID))
}

func TestStore_ListPartners_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	names := []string{"Rumah Klapy", "Toko Sebelah", "Warung Tetangga"}
	for _, name := range names {
		require.NoError(t, store.CreatePartner(ctx, &catalog.Partner{Name: name}))
	}

	partners, err := store.ListPartners(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 3)

	for i, p := range partners {
		assert.Equal(t, names[i], p.Name)
	}
}

func TestStore_Products(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	p := &catalog.Product{Name: "ZEBRA", Price: 2000, Category: "Bolu"}
	require.NoError(t, store.CreateProduct(ctx, p))

	p.Price = 2500
	require.NoError(t, store.UpdateProduct(ctx, p))

	got, err := store.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), got.Price)

	err = store.UpdateProduct(ctx, &catalog.Product{ID: uuid.New()})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	require.NoError(t, store.DeleteProduct(ctx, p.ID))

	products, err := store.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestStore_Batches(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	partnerID := uuid.New()
	today := consignment.Today(time.Now())

	b := &consignment.Batch{
		PartnerID: partnerID,
		ProductID: uuid.New(),
		Sent:      30,
		Sold:      30,
		Status:    consignment.StatusPending,
		Date:      today,
	}
	require.NoError(t, store.CreateBatch(ctx, b))

	require.NoError(t, store.UpdateQuantities(ctx, b.ID, 25, 5))
	require.NoError(t, store.UpdateStatus(ctx, b.ID, consignment.StatusInProgress))

	got, err := store.GetBatch(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, got.Sold)
	assert.Equal(t, 5, got.Returned)
	assert.Equal(t, consignment.StatusInProgress, got.Status)

	assert.ErrorIs(t, store.UpdateQuantities(ctx, uuid.New(), 1, 1), consignment.ErrNotFound)
	assert.ErrorIs(t, store.UpdateStatus(ctx, uuid.New(), consignment.StatusPending), consignment.ErrNotFound)
}

func TestStore_ListBatches_Filter(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	partnerA := uuid.New()
	partnerB := uuid.New()
	today := consignment.Today(time.Now())
	yesterday := today.AddDate(0, 0, -1)

	batches := []*consignment.Batch{
		{PartnerID: partnerA, Date: today},
		{PartnerID: partnerA, Date: yesterday},
		{PartnerID: partnerB, Date: today},
	}
	for _, b := range batches {
		require.NoError(t, store.CreateBatch(ctx, b))
	}

	byPartner, err := store.ListBatches(ctx, consignment.ListFilter{PartnerID: &partnerA})
	require.NoError(t, err)
	assert.Len(t, byPartner, 2)

	byDate, err := store.ListBatches(ctx, consignment.ListFilter{Date: &today})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	both, err := store.ListBatches(ctx, consignment.ListFilter{PartnerID: &partnerA, Date: &today})
	require.NoError(t, err)
	assert.Len(t, both, 1)
}
