package ports

import (
	"context"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/medication"
)

// MedicationCatalog lists the medications available for drone delivery.
type MedicationCatalog interface {
	List(ctx context.Context) ([]medication.Medication, error)
}
