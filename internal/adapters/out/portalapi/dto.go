package portalapi

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
)

// ServerError carries the error text of a success:false response. The server
// is the authority on why an action failed; its text is surfaced verbatim.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected request: %s", e.Message)
}

// geocodeResultDTO is one search hit. The geocoding backend serializes
// coordinates as strings, so they are parsed here rather than decoded as
// numbers.
type geocodeResultDTO struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (d geocodeResultDTO) toAddress() (session.Address, error) {
	lat, err := strconv.ParseFloat(d.Lat, 64)
	if err != nil {
		return session.Address{}, fmt.Errorf("parse geocode latitude %q: %w", d.Lat, err)
	}

	lon, err := strconv.ParseFloat(d.Lon, 64)
	if err != nil {
		return session.Address{}, fmt.Errorf("parse geocode longitude %q: %w", d.Lon, err)
	}

	point, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		return session.Address{}, err
	}

	return session.NewAddress(d.DisplayName, point)
}

// reverseGeocodeDTO is the reverse-geocode response body.
type reverseGeocodeDTO struct {
	DisplayName string `json:"display_name"`
}

// medicationDTO is one catalog entry.
type medicationDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	StockQuantity int    `json:"stockQuantity"`
}

// pathPointDTO is one coordinate of a flight path.
type pathPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (d pathPointDTO) toGeoPoint() (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(d.Lat, d.Lng)
}

func toPathDTO(path []kernel.GeoPoint) []pathPointDTO {
	return lo.Map(path, func(p kernel.GeoPoint, _ int) pathPointDTO {
		return pathPointDTO{Lat: p.Lat(), Lng: p.Lng()}
	})
}

func toGeoPoints(dtos []pathPointDTO) ([]kernel.GeoPoint, error) {
	points := make([]kernel.GeoPoint, 0, len(dtos))
	for _, d := range dtos {
		p, err := d.toGeoPoint()
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// servicePointDTO names the dispatching pharmacy hub.
type servicePointDTO struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// calculateDeliveryDTO is the delivery-plan computation response.
type calculateDeliveryDTO struct {
	Success               bool            `json:"success"`
	ServicePoint          servicePointDTO `json:"servicePoint"`
	AssignedDrone         string          `json:"assignedDrone"`
	RequiresRefrigeration bool            `json:"requiresRefrigeration"`
	DistanceKm            float64         `json:"distanceKm"`
	EtaMinutes            float64         `json:"etaMinutes"`
	Path                  []pathPointDTO  `json:"path"`
	Error                 string          `json:"error"`
}

func (d calculateDeliveryDTO) toDeliveryPlan() (session.DeliveryPlan, error) {
	origin, err := kernel.NewGeoPoint(d.ServicePoint.Lat, d.ServicePoint.Lng)
	if err != nil {
		return session.DeliveryPlan{}, err
	}

	path, err := toGeoPoints(d.Path)
	if err != nil {
		return session.DeliveryPlan{}, err
	}

	return session.NewDeliveryPlan(
		d.ServicePoint.Name,
		origin,
		d.AssignedDrone,
		path,
		d.RequiresRefrigeration,
		d.DistanceKm,
		d.EtaMinutes,
	)
}

// createOrderRequestDTO is the create-with-address request body. The
// precomputed path and drone go back to the server so it does not recompute
// the plan the customer previewed.
type createOrderRequestDTO struct {
	Address         string         `json:"address"`
	Lat             float64        `json:"lat"`
	Lng             float64        `json:"lng"`
	MedicationID    string         `json:"medicationId"`
	Quantity        int            `json:"quantity"`
	CalculatedPath  []pathPointDTO `json:"calculatedPath"`
	AssignedDroneID string         `json:"assignedDroneId"`
}

// createOrderResponseDTO is the order creation response.
type createOrderResponseDTO struct {
	Success     bool   `json:"success"`
	OrderNumber string `json:"orderNumber"`
	Error       string `json:"error"`
}

// confirmPickupResponseDTO is the pickup confirmation response.
type confirmPickupResponseDTO struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
