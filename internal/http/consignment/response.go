package consignment

import (
	"time"

	"github.com/google/uuid"

	"github.com/bundakue/titipan/internal/consignment"
)

type batchResponse struct {
	ID        uuid.UUID          `json:"id"`
	PartnerID uuid.UUID          `json:"partner_id"`
	ProductID uuid.UUID          `json:"product_id"`
	Sent      int                `json:"sent"`
	Sold      int                `json:"sold"`
	Returned  int                `json:"returned"`
	Status    consignment.Status `json:"status"`
	Date      time.Time          `json:"date"`
	CreatedAt time.Time          `json:"created_at"`
}

func toResponse(b *consignment.Batch) batchResponse {
	return batchResponse{
		ID:        b.ID,
		PartnerID: b.PartnerID,
		ProductID: b.ProductID,
		Sent:      b.Sent,
		Sold:      b.Sold,
		Returned:  b.Returned,
		Status:    b.Status,
		Date:      b.Date,
		CreatedAt: b.CreatedAt,
	}
}

func toResponseList(batches []*consignment.Batch) []batchResponse {
	resp := make([]batchResponse, len(batches))
	for i, b := range batches {
		resp[i] = toResponse(b)
	}

	return resp
}
