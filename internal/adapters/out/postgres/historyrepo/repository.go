package historyrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/ports"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/pkg/errs"
)

// GormOrderHistoryRepository implements ports.OrderHistoryRepository using
// GORM.
type GormOrderHistoryRepository struct {
	db *gorm.DB
}

var _ ports.OrderHistoryRepository = (*GormOrderHistoryRepository)(nil)

// NewGormOrderHistoryRepository creates a new GORM history repository.
func NewGormOrderHistoryRepository(db *gorm.DB) (*GormOrderHistoryRepository, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}

	return &GormOrderHistoryRepository{db: db}, nil
}

// Migrate creates or updates the order_history table.
func (r *GormOrderHistoryRepository) Migrate() error {
	return r.db.AutoMigrate(&OrderRecordDTO{})
}

// Add saves a new history record.
func (r *GormOrderHistoryRepository) Add(ctx context.Context, record ports.OrderRecord) error {
	if record.OrderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	dto := fromRecord(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// MarkCollected stamps the pickup time on an existing record.
func (r *GormOrderHistoryRepository) MarkCollected(ctx context.Context, orderNumber string, at time.Time) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	result := r.db.WithContext(ctx).
		Model(&OrderRecordDTO{}).
		Where("order_number = ?", orderNumber).
		Update("collected_at", at)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderNumber", orderNumber)
	}

	return nil
}

// Get retrieves a record by order number.
func (r *GormOrderHistoryRepository) Get(ctx context.Context, orderNumber string) (ports.OrderRecord, error) {
	if orderNumber == "" {
		return ports.OrderRecord{}, errs.NewValueIsRequiredError("orderNumber")
	}

	var dto OrderRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.OrderRecord{}, errs.NewObjectNotFoundError("orderNumber", orderNumber)
		}
		return ports.OrderRecord{}, err
	}

	return toRecord(dto)
}

// List returns all records, most recently placed first.
func (r *GormOrderHistoryRepository) List(ctx context.Context) ([]ports.OrderRecord, error) {
	var dtos []OrderRecordDTO
	if err := r.db.WithContext(ctx).Order("placed_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]ports.OrderRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toRecord(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
