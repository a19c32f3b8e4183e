package consignment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a batch id is not in the store.
var ErrNotFound = errors.New("batch not found")

// Status represents the lifecycle state of a consignment batch. Transitions
// are free-form: the owner moves batches between states in any order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}

	return false
}

// Batch records goods sent to a partner on a given date.
//
// Invariant: Sold + Returned == Sent at all times after creation. Sold is
// never written directly; it is re-derived whenever Returned changes.
type Batch struct {
	ID        uuid.UUID
	PartnerID uuid.UUID
	ProductID uuid.UUID
	Sent      int
	Sold      int
	Returned  int
	Status    Status
	Date      time.Time // Calendar date of the drop-off, midnight local time
	CreatedAt time.Time
}
