// Package historyrepo persists the append-only history of orders this
// client placed. It implements the repository pattern over GORM, converting
// between port-level records and the relational representation.
package historyrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/kernel"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/ports"
)

// OrderRecordDTO is the database row for one placed order. The order number
// is the natural key the server issued; collected_at stays NULL until the
// pickup is confirmed.
type OrderRecordDTO struct {
	OrderNumber  string    `gorm:"primaryKey"`
	SessionID    uuid.UUID `gorm:"type:uuid;index"`
	Address      string
	Lat          float64
	Lng          float64
	MedicationID string
	Quantity     int
	DroneID      string
	PlacedAt     time.Time `gorm:"index"`
	CollectedAt  *time.Time
}

// TableName overrides GORM's default naming to use "order_history".
func (OrderRecordDTO) TableName() string {
	return "order_history"
}

func fromRecord(record ports.OrderRecord) OrderRecordDTO {
	return OrderRecordDTO{
		OrderNumber:  record.OrderNumber,
		SessionID:    record.SessionID.Bytes(),
		Address:      record.Address,
		Lat:          record.Location.Lat(),
		Lng:          record.Location.Lng(),
		MedicationID: record.MedicationID,
		Quantity:     record.Quantity,
		DroneID:      record.DroneID,
		PlacedAt:     record.PlacedAt,
		CollectedAt:  record.CollectedAt,
	}
}

func toRecord(dto OrderRecordDTO) (ports.OrderRecord, error) {
	sessionID, err := kernel.UUIDFromBytes(dto.SessionID[:])
	if err != nil {
		return ports.OrderRecord{}, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return ports.OrderRecord{}, err
	}

	return ports.OrderRecord{
		SessionID:    sessionID,
		OrderNumber:  dto.OrderNumber,
		Address:      dto.Address,
		Location:     location,
		MedicationID: dto.MedicationID,
		Quantity:     dto.Quantity,
		DroneID:      dto.DroneID,
		PlacedAt:     dto.PlacedAt,
		CollectedAt:  dto.CollectedAt,
	}, nil
}
