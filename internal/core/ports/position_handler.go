package ports

import (
	"context"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
)

// PositionHandler receives live drone-position events from the subscribed
// broadcast channel. The transport delivers events strictly in order and
// waits for each call to return before dispatching the next one.
type PositionHandler interface {
	HandlePosition(ctx context.Context, event session.PositionEvent) error
}
