// Package memory holds the whole dashboard state for one session. The three
// collections live in ordered slices behind one lock, so every mutation is
// observed full-before/full-after and nothing survives process exit.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/consignment"
)

type Store struct {
	mu sync.RWMutex

	partners []*catalog.Partner
	products []*catalog.Product
	batches  []*consignment.Batch
}

func New() *Store {
	return &Store{}
}

// Partners

func (s *Store) CreatePartner(_ context.Context, p *catalog.Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New()
	p.CreatedAt = time.Now()

	stored := *p
	s.partners = append(s.partners, &stored)

	return nil
}

func (s *Store) ListPartners(_ context.Context) ([]*catalog.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*catalog.Partner, len(s.partners))
	for i, p := range s.partners {
		cp := *p
		out[i] = &cp
	}

	return out, nil
}

func (s *Store) GetPartner(_ context.Context, id uuid.UUID) (*catalog.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.partners {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}

	return nil, catalog.ErrNotFound
}

func (s *Store) DeletePartner(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.partners {
		if p.ID == id {
			s.partners = append(s.partners[:i], s.partners[i+1:]...)
			return nil
		}
	}

	return nil
}

// Products

func (s *Store) CreateProduct(_ context.Context, p *catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New()
	p.CreatedAt = time.Now()

	stored := *p
	s.products = append(s.products, &stored)

	return nil
}

func (s *Store) ListProducts(_ context.Context) ([]*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*catalog.Product, len(s.products))
	for i, p := range s.products {
		cp := *p
		out[i] = &cp
	}

	return out, nil
}

func (s *Store) GetProduct(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}

	return nil, catalog.ErrNotFound
}

func (s *Store) UpdateProduct(_ context.Context, p *catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.products {
		if existing.ID == p.ID {
			cp := *p
			s.products[i] = &cp

			return nil
		}
	}

	return catalog.ErrNotFound
}

func (s *Store) DeleteProduct(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}

	return nil
}

// Batches

func (s *Store) CreateBatch(_ context.Context, b *consignment.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = uuid.New()
	b.CreatedAt = time.Now()

	stored := *b
	s.batches = append(s.batches, &stored)

	return nil
}

func (s *Store) GetBatch(_ context.Context, id uuid.UUID) (*consignment.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.batches {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}

	return nil, consignment.ErrNotFound
}

func (s *Store) ListBatches(_ context.Context, filter consignment.ListFilter) ([]*consignment.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*consignment.Batch

	for _, b := range s.batches {
		if filter.PartnerID != nil && b.PartnerID != *filter.PartnerID {
			continue
		}

		if filter.Date != nil && !sameDay(b.Date, *filter.Date) {
			continue
		}

		cp := *b
		out = append(out, &cp)
	}

	return out, nil
}

func (s *Store) UpdateQuantities(_ context.Context, id uuid.UUID, sold, returned int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.batches {
		if b.ID == id {
			b.Sold = sold
			b.Returned = returned

			return nil
		}
	}

	return consignment.ErrNotFound
}

func (s *Store) UpdateStatus(_ context.Context, id uuid.UUID, status consignment.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.batches {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}

	return consignment.ErrNotFound
}

func (s *Store) DeleteBatch(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.batches {
		if b.ID == id {
			s.batches = append(s.batches[:i], s.batches[i+1:]...)
			return nil
		}
	}

	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
