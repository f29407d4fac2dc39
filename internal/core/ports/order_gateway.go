package ports

import (
	"context"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
)

// CreateOrderRequest carries everything the server needs to accept an order.
// The precomputed path and the reserved drone are submitted back so the
// server does not recompute the plan and drift from what the customer saw.
type CreateOrderRequest struct {
	Address         string
	Location        kernel.GeoPoint
	MedicationID    string
	Quantity        int
	Path            []kernel.GeoPoint
	AssignedDroneID string
}

// OrderGateway submits order lifecycle actions to the portal server.
type OrderGateway interface {
	// CreateOrder places the order and returns the server-issued order number.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (string, error)

	// ConfirmPickup reports that the customer collected the order.
	ConfirmPickup(ctx context.Context, orderNumber string) error
}
