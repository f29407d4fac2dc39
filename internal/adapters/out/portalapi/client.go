// Package portalapi is the HTTP adapter for the drone-delivery portal
// server. One client implements every outbound port the session controller
// needs: geocoding, the service-area boundary, the medication catalog,
// delivery-plan computation, and the order gateway.
package portalapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/medication"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/ports"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// httpStatusError reports a non-2xx portal response.
type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("portal returned %d: %s", e.Code, e.Body)
}

// Client talks to the portal server. Safe for concurrent use.
type Client struct {
	baseURL      string
	boundaryFile string
	session      *http.Client
	log          *slog.Logger
}

var (
	_ ports.Geocoder          = (*Client)(nil)
	_ ports.BoundaryProvider  = (*Client)(nil)
	_ ports.MedicationCatalog = (*Client)(nil)
	_ ports.DeliveryPlanner   = (*Client)(nil)
	_ ports.OrderGateway      = (*Client)(nil)
)

// NewClient creates a portal client. boundaryFile is the name of the
// published service-area file under /data/. A nil httpClient gets a default
// with a 10 s timeout.
func NewClient(baseURL, boundaryFile string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if boundaryFile == "" {
		return nil, errs.NewValueIsRequiredError("boundaryFile")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		boundaryFile: boundaryFile,
		session:      httpClient,
		log:          logger.With("component", "portal-api"),
	}, nil
}

// Search implements ports.Geocoder.
func (c *Client) Search(ctx context.Context, query string) ([]session.Address, error) {
	q := url.Values{"query": {query}}

	var dtos []geocodeResultDTO
	if err := c.getJSON(ctx, "/geocode", q, &dtos); err != nil {
		return nil, fmt.Errorf("geocode search: %w", err)
	}

	addresses := make([]session.Address, 0, len(dtos))
	for _, dto := range dtos {
		addr, err := dto.toAddress()
		if err != nil {
			c.log.Warn("skipping malformed geocode result",
				"display_name", dto.DisplayName, "error", err)
			continue
		}
		addresses = append(addresses, addr)
	}

	return addresses, nil
}

// Reverse implements ports.Geocoder.
func (c *Client) Reverse(ctx context.Context, point kernel.GeoPoint) (session.Address, error) {
	q := url.Values{
		"lat": {strconv.FormatFloat(point.Lat(), 'f', -1, 64)},
		"lng": {strconv.FormatFloat(point.Lng(), 'f', -1, 64)},
	}

	var dto reverseGeocodeDTO
	if err := c.getJSON(ctx, "/reverse-geocode", q, &dto); err != nil {
		return session.Address{}, fmt.Errorf("reverse geocode: %w", err)
	}

	return session.NewAddress(dto.DisplayName, point)
}

// ServiceArea implements ports.BoundaryProvider. The published boundary file
// is an ordered ring of [longitude, latitude] pairs.
func (c *Client) ServiceArea(ctx context.Context) (kernel.ServiceArea, error) {
	var pairs [][2]float64
	if err := c.getJSON(ctx, "/data/"+c.boundaryFile, nil, &pairs); err != nil {
		return kernel.ServiceArea{}, fmt.Errorf("load boundary: %w", err)
	}

	ring := make([]kernel.GeoPoint, 0, len(pairs))
	for _, pair := range pairs {
		point, err := kernel.NewGeoPoint(pair[1], pair[0])
		if err != nil {
			return kernel.ServiceArea{}, fmt.Errorf("boundary vertex: %w", err)
		}
		ring = append(ring, point)
	}

	return kernel.NewServiceArea(ring)
}

// List implements ports.MedicationCatalog.
func (c *Client) List(ctx context.Context) ([]medication.Medication, error) {
	var dtos []medicationDTO
	if err := c.getJSON(ctx, "/medications", nil, &dtos); err != nil {
		return nil, fmt.Errorf("load medications: %w", err)
	}

	items := make([]medication.Medication, 0, len(dtos))
	for _, dto := range dtos {
		item, err := medication.NewMedication(dto.ID, dto.Name, dto.Description, dto.StockQuantity)
		if err != nil {
			c.log.Warn("skipping malformed catalog entry", "id", dto.ID, "error", err)
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// CalculateDelivery implements ports.DeliveryPlanner.
func (c *Client) CalculateDelivery(
	ctx context.Context,
	medicationID string,
	target kernel.GeoPoint,
) (session.DeliveryPlan, error) {
	q := url.Values{
		"medicationId": {medicationID},
		"targetLat":    {strconv.FormatFloat(target.Lat(), 'f', -1, 64)},
		"targetLng":    {strconv.FormatFloat(target.Lng(), 'f', -1, 64)},
	}

	var dto calculateDeliveryDTO
	if err := c.postJSON(ctx, "/calculate-delivery", q, nil, &dto); err != nil {
		return session.DeliveryPlan{}, fmt.Errorf("calculate delivery: %w", err)
	}

	if !dto.Success {
		return session.DeliveryPlan{}, &ServerError{Message: dto.Error}
	}

	return dto.toDeliveryPlan()
}

// CreateOrder implements ports.OrderGateway.
func (c *Client) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (string, error) {
	body := createOrderRequestDTO{
		Address:         req.Address,
		Lat:             req.Location.Lat(),
		Lng:             req.Location.Lng(),
		MedicationID:    req.MedicationID,
		Quantity:        req.Quantity,
		CalculatedPath:  toPathDTO(req.Path),
		AssignedDroneID: req.AssignedDroneID,
	}

	var dto createOrderResponseDTO
	if err := c.postJSON(ctx, "/create-with-address", nil, body, &dto); err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	if !dto.Success {
		return "", &ServerError{Message: dto.Error}
	}

	c.log.Info("order created", "order", dto.OrderNumber)
	return dto.OrderNumber, nil
}

// ConfirmPickup implements ports.OrderGateway.
func (c *Client) ConfirmPickup(ctx context.Context, orderNumber string) error {
	q := url.Values{"orderNumber": {orderNumber}}

	var dto confirmPickupResponseDTO
	if err := c.postJSON(ctx, "/confirm-pickup-by-order", q, nil, &dto); err != nil {
		return fmt.Errorf("confirm pickup: %w", err)
	}

	if !dto.Success {
		return &ServerError{Message: dto.Error}
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}

	return c.doJSON(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, query, reader)
	if err != nil {
		return err
	}

	return c.doJSON(req, out)
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body io.Reader,
) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	started := time.Now()

	resp, err := c.session.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	c.log.Debug("portal request",
		"method", req.Method, "path", req.URL.Path,
		"status", resp.StatusCode, "took", time.Since(started))
	return nil
}
