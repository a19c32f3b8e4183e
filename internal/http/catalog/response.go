package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/bundakue/titipan/internal/catalog"
)

type partnerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}

func toPartnerResponse(p *catalog.Partner) partnerResponse {
	return partnerResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		Contact:   p.Contact,
		CreatedAt: p.CreatedAt,
	}
}

func toPartnerResponseList(partners []*catalog.Partner) []partnerResponse {
	resp := make([]partnerResponse, len(partners))
	for i, p := range partners {
		resp[i] = toPartnerResponse(p)
	}

	return resp
}

type productResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func toProductResponse(p *catalog.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
	}
}

func toProductResponseList(products []*catalog.Product) []productResponse {
	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}

	return resp
}
