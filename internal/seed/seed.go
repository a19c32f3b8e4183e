// Package seed loads the demo dataset so the dashboard never starts empty.
// State lives in memory only, so every boot reseeds from scratch.
package seed

import (
	"context"
	"fmt"

	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/consignment"
)

var demoProducts = []catalog.ProductParams{
	{Name: "CALA ISI", Price: 2500, Category: "Gorengan"},
	{Name: "KATRISOLO", Price: 2500, Category: "Kue Basah"},
	{Name: "ZEBRA", Price: 2000, Category: "Bolu"},
	{Name: "GABIN KUKUS", Price: 2500, Category: "Kue Basah"},
	{Name: "BALAPIS", Price: 2500, Category: "Kue Basah"},
	{Name: "COKLAT KRISPY", Price: 2500, Category: "Kue Kering"},
	{Name: "LUMPUR IJO", Price: 2500, Category: "Kue Basah"},
	{Name: "DADARA", Price: 2500, Category: "Kue Basah"},
	{Name: "NAGASARI BANDUNG", Price: 2000, Category: "Kue Basah"},
	{Name: "APANG COLO", Price: 2000, Category: "Kue Basah"},
	{Name: "PUDING ASTOR", Price: 2500, Category: "Puding"},
	{Name: "ANGKA", Price: 2500, Category: "Bolu"},
	{Name: "RISOLES", Price: 3000, Category: "Gorengan"},
}

// Load seeds the first partner, the bakery's standing catalog, and a couple
// of batches to demonstrate the reports.
func Load(ctx context.Context, catalogSvc *catalog.Service, consignmentSvc *consignment.Service) error {
	partner, err := catalogSvc.AddPartner(ctx, catalog.PartnerParams{
		Name:    "Rumah Klapy",
		Address: "Jl. Sam Ratulangi",
	})
	if err != nil {
		return fmt.Errorf("seeding partner: %w", err)
	}

	products := make([]*catalog.Product, 0, len(demoProducts))

	for _, params := range demoProducts {
		p, err := catalogSvc.AddProduct(ctx, params)
		if err != nil {
			return fmt.Errorf("seeding product %q: %w", params.Name, err)
		}

		products = append(products, p)
	}

	batches := []consignment.CreateParams{
		{PartnerID: partner.ID, ProductID: products[0].ID, Sent: 30},
		{PartnerID: partner.ID, ProductID: products[2].ID, Sent: 20},
	}
	for _, params := range batches {
		if _, err := consignmentSvc.Create(ctx, params); err != nil {
			return fmt.Errorf("seeding batch: %w", err)
		}
	}

	return nil
}
