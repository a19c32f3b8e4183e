package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a partner or product id is not in the store.
var ErrNotFound = errors.New("not found")

// DefaultContact is the placeholder contact assigned to new partners.
const DefaultContact = "-"

// DefaultCategory is the category assigned to products created without one.
const DefaultCategory = "General"

// Partner is a store that receives goods on consignment.
type Partner struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Contact   string
	CreatedAt time.Time
}

// Product is a catalog item with a unit price.
type Product struct {
	ID        uuid.UUID
	Name      string
	Price     int64 // Unit price in rupiah
	Category  string
	CreatedAt time.Time
}
