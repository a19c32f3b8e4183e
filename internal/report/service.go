package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/consignment"
)

// Service computes sales reports from the current store snapshot. It borrows
// the repositories and keeps no data of its own, so two calls with no
// mutation in between return identical output.
type Service struct {
	catalog catalog.Repository
	batches consignment.Repository
	now     func() time.Time
}

func NewService(catalogRepo catalog.Repository, batchRepo consignment.Repository) *Service {
	return &Service{
		catalog: catalogRepo,
		batches: batchRepo,
		now:     time.Now,
	}
}

// WithNow overrides the clock used for window filtering.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Compute filters batches by partner and period, then totals units and
// revenue. Deleted partners and products show up as placeholders with a zero
// price, never as errors.
func (s *Service) Compute(ctx context.Context, filter Filter) (*Report, error) {
	batches, err := s.batches.ListBatches(ctx, s.partnerFilter(filter.PartnerID))
	if err != nil {
		return nil, fmt.Errorf("listing batches: %w", err)
	}

	partnerNames, productByID, err := s.lookups(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rep := &Report{
		Filter:      filter,
		GeneratedAt: now,
	}

	for _, b := range batches {
		if !inWindow(b.Date, now, filter.Period) {
			continue
		}

		row := project(b, partnerNames, productByID)

		rep.Rows = append(rep.Rows, row)
		rep.Count++
		rep.TotalSold += row.Sold
		rep.TotalReturned += row.Returned
		rep.TotalRevenue += row.Revenue
	}

	return rep, nil
}

// Overview aggregates the headline numbers for the dashboard landing screen:
// collection sizes, batches still out at partners, and all-time revenue.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	batches, err := s.batches.ListBatches(ctx, consignment.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing batches: %w", err)
	}

	partnerNames, productByID, err := s.lookups(ctx)
	if err != nil {
		return nil, err
	}

	ov := &Overview{
		Partners: len(partnerNames),
		Products: len(productByID),
	}

	for _, b := range batches {
		if isActive(b) {
			ov.ActiveBatches++
		}

		row := project(b, partnerNames, productByID)
		ov.TotalRevenue += row.Revenue

		ov.Recent = append(ov.Recent, row)
		if len(ov.Recent) > recentLimit {
			ov.Recent = ov.Recent[1:]
		}
	}

	return ov, nil
}

func (s *Service) partnerFilter(partnerID string) consignment.ListFilter {
	if partnerID == "" || partnerID == AllPartners {
		return consignment.ListFilter{}
	}

	id, err := uuid.Parse(partnerID)
	if err != nil {
		// Unknown filter values match nothing rather than failing.
		nilID := uuid.Nil
		return consignment.ListFilter{PartnerID: &nilID}
	}

	return consignment.ListFilter{PartnerID: &id}
}

func (s *Service) lookups(ctx context.Context) (map[uuid.UUID]string, map[uuid.UUID]*catalog.Product, error) {
	partners, err := s.catalog.ListPartners(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing partners: %w", err)
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing products: %w", err)
	}

	partnerNames := make(map[uuid.UUID]string, len(partners))
	for _, p := range partners {
		partnerNames[p.ID] = p.Name
	}

	productByID := make(map[uuid.UUID]*catalog.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	return partnerNames, productByID, nil
}

func project(b *consignment.Batch, partnerNames map[uuid.UUID]string, productByID map[uuid.UUID]*catalog.Product) Row {
	row := Row{
		Date:     b.Date,
		Partner:  UnknownLabel,
		Product:  UnknownLabel,
		Sent:     b.Sent,
		Sold:     b.Sold,
		Returned: b.Returned,
	}

	if name, ok := partnerNames[b.PartnerID]; ok {
		row.Partner = name
	}

	if p, ok := productByID[b.ProductID]; ok {
		row.Product = p.Name
		row.UnitPrice = p.Price
	}

	row.Revenue = int64(row.Sold) * row.UnitPrice

	return row
}
