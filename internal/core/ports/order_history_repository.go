package ports

import (
	"context"
	"time"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
)

// OrderRecord is one locally kept trace of an order this client placed.
// CollectedAt is nil until the pickup is confirmed.
type OrderRecord struct {
	SessionID    kernel.UUID
	OrderNumber  string
	Address      string
	Location     kernel.GeoPoint
	MedicationID string
	Quantity     int
	DroneID      string
	PlacedAt     time.Time
	CollectedAt  *time.Time
}

// OrderHistoryRepository is the append-only store of orders placed through
// this client. Writes are best-effort: a failed history write never fails
// the order operation it records.
type OrderHistoryRepository interface {
	// Add persists a new record after a successful order placement.
	Add(ctx context.Context, record OrderRecord) error

	// MarkCollected stamps the pickup time on an existing record.
	MarkCollected(ctx context.Context, orderNumber string, at time.Time) error

	// Get retrieves a record by order number.
	// Returns errs.ErrObjectNotFound when no such order was recorded.
	Get(ctx context.Context, orderNumber string) (OrderRecord, error)

	// List returns all records, most recently placed first.
	List(ctx context.Context) ([]OrderRecord, error)
}
