package portal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/application/usecases/commands"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/medication"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/ports"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
)

// Default map center, used until an address is selected and restored on
// reset.
const (
	DefaultCenterLat = 55.9445
	DefaultCenterLng = -3.1892
)

// movedThresholdMeters is how far the confirmed point may drift from the
// originally geocoded one before the display address is re-resolved.
const movedThresholdMeters = 10

// Controller drives one customer's order session against the portal server.
// It owns the single OrderSession, the loaded service area, the current map
// center, and the medication catalog snapshot, and it is the only writer of
// all of them.
//
// A mutex serializes user actions against the position-event goroutine, so
// events are applied strictly in delivery order and never interleave with a
// half-finished user operation.
type Controller struct {
	geocoder ports.Geocoder
	boundary ports.BoundaryProvider
	catalog  ports.MedicationCatalog
	planner  ports.DeliveryPlanner
	orders   ports.OrderGateway
	history  ports.OrderHistoryRepository
	renderer ports.MapRenderer
	search   *addressSearch
	log      *slog.Logger

	mu          sync.Mutex
	session     *session.OrderSession
	area        kernel.ServiceArea
	mapCenter   kernel.GeoPoint
	medications []medication.Medication
}

// NewController creates a controller with a fresh Initial session centered
// on the default map position. All collaborators are required.
func NewController(
	geocoder ports.Geocoder,
	boundary ports.BoundaryProvider,
	catalog ports.MedicationCatalog,
	planner ports.DeliveryPlanner,
	orders ports.OrderGateway,
	history ports.OrderHistoryRepository,
	renderer ports.MapRenderer,
	searchDebounce time.Duration,
	logger *slog.Logger,
) (*Controller, error) {
	switch {
	case geocoder == nil:
		return nil, errs.NewValueIsRequiredError("geocoder")
	case boundary == nil:
		return nil, errs.NewValueIsRequiredError("boundary")
	case catalog == nil:
		return nil, errs.NewValueIsRequiredError("catalog")
	case planner == nil:
		return nil, errs.NewValueIsRequiredError("planner")
	case orders == nil:
		return nil, errs.NewValueIsRequiredError("orders")
	case history == nil:
		return nil, errs.NewValueIsRequiredError("history")
	case renderer == nil:
		return nil, errs.NewValueIsRequiredError("renderer")
	case logger == nil:
		return nil, errs.NewValueIsRequiredError("logger")
	}

	center, err := kernel.NewGeoPoint(DefaultCenterLat, DefaultCenterLng)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		geocoder:  geocoder,
		boundary:  boundary,
		catalog:   catalog,
		planner:   planner,
		orders:    orders,
		history:   history,
		renderer:  renderer,
		search:    newAddressSearch(geocoder, searchDebounce),
		log:       logger.With("component", "portal-controller"),
		session:   session.NewOrderSession(),
		mapCenter: center,
	}

	c.renderer.SetCenter(center)
	c.renderer.ApplyView(ViewFor(c.session.State()))
	return c, nil
}

// State returns the current lifecycle state.
func (c *Controller) State() session.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.State()
}

// OrderNumber returns the current order number, or "" before placement.
func (c *Controller) OrderNumber() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.OrderNumber()
}

// MapCenter returns the current map center.
func (c *Controller) MapCenter() kernel.GeoPoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mapCenter
}

// Medications returns the last loaded catalog snapshot.
func (c *Controller) Medications() []medication.Medication {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]medication.Medication, len(c.medications))
	copy(out, c.medications)
	return out
}

// LoadServiceArea fetches the delivery boundary and draws it. Best-effort:
// on failure the previously loaded area (or the fail-open empty one) stays
// in place and the error is only logged.
func (c *Controller) LoadServiceArea(ctx context.Context) {
	area, err := c.boundary.ServiceArea(ctx)
	if err != nil {
		c.log.Warn("service area load failed, keeping previous boundary", "error", err)
		return
	}

	c.mu.Lock()
	c.area = area
	c.mu.Unlock()

	c.renderer.ShowBoundary(area)
	c.log.Info("service area loaded", "vertices", len(area.Ring()))
}

// RefreshCatalog reloads the medication list from the server.
func (c *Controller) RefreshCatalog(ctx context.Context) error {
	items, err := c.catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("refresh medication catalog: %w", err)
	}

	c.mu.Lock()
	c.medications = items
	c.mu.Unlock()

	c.log.Info("medication catalog refreshed", "items", len(items))
	return nil
}

// Search runs a debounced address lookup. deliver receives only the results
// of the latest query; superseded searches are discarded.
func (c *Controller) Search(
	ctx context.Context,
	query string,
	deliver func(results []session.Address, err error),
) {
	c.search.Search(ctx, query, deliver)
}

// SelectAddress stores a geocoder candidate as the working delivery address
// and centers the map on it. The location is not yet confirmed; the
// customer may still adjust the point before confirming.
func (c *Controller) SelectAddress(cmd commands.SelectAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	candidate := cmd.Candidate()
	if err := c.session.SelectAddress(candidate); err != nil {
		return err
	}

	c.mapCenter = candidate.Point()
	c.renderer.SetCenter(candidate.Point())
	c.renderer.ShowDeliveryMarker(candidate)

	c.log.Info("address selected", "address", candidate.DisplayName())
	return nil
}

// AdjustLocation records a map drag: the center moves but nothing is
// confirmed yet.
func (c *Controller) AdjustLocation(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.mapCenter = point
	return nil
}

// ConfirmLocation fixes the current map center as the delivery point and
// transitions Initial -> Placing.
//
// If the center moved more than 10 meters from the originally geocoded
// point, the display address is re-resolved via reverse geocoding.
// Re-resolution is best-effort: on failure the prior address text is kept.
// The point must lie inside the service area; an out-of-area point is
// rejected with no state change.
func (c *Controller) ConfirmLocation(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	selected := c.session.SelectedAddress()
	if selected == nil {
		return session.ErrAddressIsNotSelected
	}

	final := c.mapCenter
	displayName := selected.DisplayName()

	moved, err := final.DistanceMeters(c.session.OriginalPoint())
	if err != nil {
		return err
	}

	if moved > movedThresholdMeters {
		resolved, err := c.geocoder.Reverse(ctx, final)
		if err != nil {
			c.log.Warn("reverse geocode failed, keeping prior address text", "error", err)
		} else {
			displayName = resolved.DisplayName()
		}
	}

	if err := c.session.ConfirmLocation(final, displayName, c.area); err != nil {
		return err
	}

	c.renderer.ShowDeliveryMarker(*c.session.SelectedAddress())
	c.renderer.ApplyView(ViewFor(c.session.State()))

	c.log.Info("location confirmed", "address", displayName,
		"moved_meters", moved, "state", c.session.State().String())
	return nil
}

// SelectMedication records the chosen catalog item and invalidates any
// previously computed plan.
func (c *Controller) SelectMedication(cmd commands.SelectMedicationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session.SelectMedication(cmd.MedicationID())
}

// ConfirmMedication asks the server for a delivery plan for the selected
// medication and the confirmed destination, then renders the preview path
// and the service-point marker. On failure the session is unchanged and the
// customer can retry.
func (c *Controller) ConfirmMedication(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.MedicationID() == "" {
		return session.ErrMedicationIsNotSelected
	}

	selected := c.session.SelectedAddress()
	if selected == nil {
		return session.ErrAddressIsNotSelected
	}

	plan, err := c.planner.CalculateDelivery(ctx, c.session.MedicationID(), selected.Point())
	if err != nil {
		return fmt.Errorf("calculate delivery: %w", err)
	}

	if err := c.session.AttachPlan(plan); err != nil {
		return err
	}

	c.renderer.ShowServicePointMarker(plan.ServicePointName(), plan.ServicePointLocation())
	c.renderer.ShowPreviewPath(plan.Path())

	c.log.Info("delivery plan received", "service_point", plan.ServicePointName(),
		"drone", plan.AssignedDroneID(), "eta_minutes", plan.EtaMinutes())
	return nil
}

// PlaceOrder submits the order with the precomputed path and the reserved
// drone, so the server does not recompute the plan the customer previewed.
// On success the session enters InTransit, the preview becomes the live
// tracking path, and the drone marker appears at the path start. On failure
// the session stays in Placing.
func (c *Controller) PlaceOrder(ctx context.Context, cmd commands.PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	plan := c.session.Plan()
	if plan == nil {
		return session.ErrDeliveryPlanIsMissing
	}

	selected := c.session.SelectedAddress()
	if selected == nil {
		return session.ErrAddressIsNotSelected
	}

	orderNumber, err := c.orders.CreateOrder(ctx, ports.CreateOrderRequest{
		Address:         selected.DisplayName(),
		Location:        selected.Point(),
		MedicationID:    c.session.MedicationID(),
		Quantity:        cmd.Quantity(),
		Path:            plan.Path(),
		AssignedDroneID: plan.AssignedDroneID(),
	})
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	record := ports.OrderRecord{
		SessionID:    c.session.ID(),
		OrderNumber:  orderNumber,
		Address:      selected.DisplayName(),
		Location:     selected.Point(),
		MedicationID: c.session.MedicationID(),
		Quantity:     cmd.Quantity(),
		DroneID:      plan.AssignedDroneID(),
		PlacedAt:     time.Now().UTC(),
	}

	if err := c.session.BeginTransit(orderNumber); err != nil {
		return err
	}

	flight := c.session.Flight()
	start := flight.Start()
	c.renderer.ShowProgressPath(flight.Advance(start))
	c.renderer.ShowDroneMarker(c.session.AssignedDroneID(), start)
	c.renderer.ApplyView(ViewFor(c.session.State()))

	if err := c.history.Add(ctx, record); err != nil {
		c.log.Warn("order history write failed", "order", orderNumber, "error", err)
	}

	c.log.Info("order placed", "order", orderNumber,
		"drone", c.session.AssignedDroneID(), "quantity", cmd.Quantity())
	return nil
}

// HandlePosition applies one live broadcast. Foreign and stale events are
// dropped silently per the session's filter; an accepted event moves the
// drone marker, updates the progress indicator, re-renders the faded path
// split, and either follows the drone or, on arrival, switches the view.
//
// Implements ports.PositionHandler.
func (c *Controller) HandlePosition(ctx context.Context, event session.PositionEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	split, arrived, err := c.session.ApplyPosition(event)
	if err != nil {
		if errors.Is(err, session.ErrEventNotApplicable) {
			c.log.Debug("position event dropped",
				"event_order", event.OrderNumber(), "state", c.session.State().String())
			return nil
		}
		return err
	}

	c.renderer.ShowDroneMarker(event.DroneID(), event.Point())
	c.renderer.ShowProgress(event.PercentComplete())
	c.renderer.ShowProgressPath(split)

	if arrived {
		c.renderer.ApplyView(ViewFor(c.session.State()))
		c.log.Info("drone arrived", "order", c.session.OrderNumber(),
			"drone", event.DroneID())
		return nil
	}

	c.mapCenter = event.Point()
	c.renderer.SetCenter(event.Point())
	return nil
}

// ConfirmPickup reports the pickup to the server and transitions
// Arrived -> Collected. The drone and path overlays are removed; the return
// flight is not shown. On failure the session stays in Arrived.
func (c *Controller) ConfirmPickup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	orderNumber := c.session.OrderNumber()
	if orderNumber == "" {
		return session.ErrOrderNumberIsRequired
	}

	if c.session.State() != session.Arrived {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%s is not a valid state to confirm pickup", c.session.State()))
	}

	if err := c.orders.ConfirmPickup(ctx, orderNumber); err != nil {
		return fmt.Errorf("confirm pickup: %w", err)
	}

	if err := c.session.CompletePickup(); err != nil {
		return err
	}

	c.renderer.ClearFlightOverlays()
	c.renderer.ApplyView(ViewFor(c.session.State()))

	if err := c.history.MarkCollected(ctx, orderNumber, time.Now().UTC()); err != nil {
		c.log.Warn("order history update failed", "order", orderNumber, "error", err)
	}

	c.log.Info("pickup confirmed", "order", orderNumber)
	return nil
}

// Reset tears the session down from any state: a fresh Initial session, the
// default map center, every overlay except the boundary removed, and any
// pending address search cancelled.
func (c *Controller) Reset() {
	c.search.Cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = session.NewOrderSession()
	center, _ := kernel.NewGeoPoint(DefaultCenterLat, DefaultCenterLng)
	c.mapCenter = center

	c.renderer.Clear()
	c.renderer.SetCenter(center)
	c.renderer.ApplyView(ViewFor(c.session.State()))

	c.log.Info("session reset")
}
