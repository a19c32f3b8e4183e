package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	CreatePartner(ctx context.Context, p *Partner) error
	ListPartners(ctx context.Context) ([]*Partner, error)
	GetPartner(ctx context.Context, id uuid.UUID) (*Partner, error)
	DeletePartner(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, p *Product) error
	ListProducts(ctx context.Context) ([]*Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type PartnerParams struct {
	Name    string
	Address string
}

func (s *Service) AddPartner(ctx context.Context, params PartnerParams) (*Partner, error) {
	p := &Partner{
		Name:    params.Name,
		Address: params.Address,
		Contact: DefaultContact,
	}
	if err := s.repo.CreatePartner(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) ListPartners(ctx context.Context) ([]*Partner, error) {
	return s.repo.ListPartners(ctx)
}

func (s *Service) GetPartner(ctx context.Context, id uuid.UUID) (*Partner, error) {
	return s.repo.GetPartner(ctx, id)
}

// DeletePartner removes the partner. Batches referencing it are left alone;
// reads resolve the dangling reference to a placeholder name.
func (s *Service) DeletePartner(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePartner(ctx, id)
}

type ProductParams struct {
	Name     string
	Price    int64
	Category string
}

func (s *Service) AddProduct(ctx context.Context, params ProductParams) (*Product, error) {
	category := params.Category
	if category == "" {
		category = DefaultCategory
	}

	price := params.Price
	if price < 0 {
		price = 0
	}

	p := &Product{
		Name:     params.Name,
		Price:    price,
		Category: category,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// EditProduct replaces name and price by id. An absent id is a no-op: the
// edit form in the UI can race a delete, and losing that race is not an error.
func (s *Service) EditProduct(ctx context.Context, id uuid.UUID, name string, price int64) (*Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	if price < 0 {
		price = 0
	}

	p.Name = name
	p.Price = price

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProduct(ctx, id)
}
