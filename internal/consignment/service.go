package consignment

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=consignment
type Repository interface {
	CreateBatch(ctx context.Context, b *Batch) error
	GetBatch(ctx context.Context, id uuid.UUID) (*Batch, error)
	ListBatches(ctx context.Context, filter ListFilter) ([]*Batch, error)

	// UpdateQuantities writes sold and returned together so no reader ever
	// observes the pair mid-update.
	UpdateQuantities(ctx context.Context, id uuid.UUID, sold, returned int) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteBatch(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	PartnerID uuid.UUID
	ProductID uuid.UUID
	Sent      int
}

type ListFilter struct {
	PartnerID *uuid.UUID
	Date      *time.Time // Exact calendar date match
}

// Create records a new drop-off. Everything counts as sold until the partner
// reports returns, so Sold starts at Sent and Returned at 0. The partner and
// product ids are taken as given; the store does not check them.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Batch, error) {
	sent := params.Sent
	if sent < 0 {
		sent = 0
	}

	b := &Batch{
		PartnerID: params.PartnerID,
		ProductID: params.ProductID,
		Sent:      sent,
		Sold:      sent,
		Returned:  0,
		Status:    StatusPending,
		Date:      Today(s.now()),
	}
	if err := s.repo.CreateBatch(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Batch, error) {
	return s.repo.GetBatch(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Batch, error) {
	return s.repo.ListBatches(ctx, filter)
}

// SetReturned reconciles a batch against the quantity the partner sent back.
// The raw value comes straight from the UI: non-numeric input counts as 0 and
// out-of-range values are clamped into [0, Sent], never rejected. Sold is
// re-derived as Sent - Returned; this is the only operation that writes it.
func (s *Service) SetReturned(ctx context.Context, id uuid.UUID, raw string) (*Batch, error) {
	b, err := s.repo.GetBatch(ctx, id)
	if err != nil {
		return nil, err
	}

	returned := clamp(parseQuantity(raw), 0, b.Sent)
	sold := b.Sent - returned

	if err := s.repo.UpdateQuantities(ctx, id, sold, returned); err != nil {
		return nil, err
	}

	b.Sold = sold
	b.Returned = returned

	return b, nil
}

// SetStatus overwrites the batch status. Any state is reachable from any
// other; an unknown status string is dropped silently like other bad input.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !status.Valid() {
		return nil
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteBatch(ctx, id)
}

// Today truncates t to midnight in its location.
func Today(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func parseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}

	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}

	if n > hi {
		return hi
	}

	return n
}
