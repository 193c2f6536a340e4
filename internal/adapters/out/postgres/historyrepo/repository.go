package historyrepo

import (
	"context"

	"dotrack/internal/core/domain/model/history"
	"dotrack/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
// The ledger is append-only, so the repository exposes no update or delete.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append saves a new ledger entry to the database.
func (r *GormHistoryRepository) Append(ctx context.Context, entry *history.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByDeliveryOrder retrieves all ledger entries for a delivery order,
// ordered by performedAt ascending with insertion order as the tiebreaker.
func (r *GormHistoryRepository) GetByDeliveryOrder(
	ctx context.Context,
	deliveryOrderID kernel.UUID,
) ([]*history.Entry, error) {
	if err := deliveryOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Where("do_id = ?", deliveryOrderID.Bytes()).
		Order("performed_at ASC, seq ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*history.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
