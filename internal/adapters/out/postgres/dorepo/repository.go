package dorepo

import (
	"context"
	"errors"
	"fmt"

	"dotrack/internal/core/domain/model/deliveryorder"
	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryOrderRepository implements DeliveryOrderRepository using GORM.
type GormDeliveryOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryOrderRepository creates a new GORM delivery order repository.
func NewGormDeliveryOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryOrderRepository {
	return &GormDeliveryOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery order to the database. A unique index on the DO
// number turns concurrent inserts of the same number into a duplicate error.
func (r *GormDeliveryOrderRepository) Add(ctx context.Context, aggregate *deliveryorder.DeliveryOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateNumberErrorWithCause(aggregate.Number().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery order to the database. The write is
// conditional on the stage the caller observed when it loaded the aggregate.
// A concurrent transition changes the stored stage, the condition matches
// nothing, and the caller gets a storage conflict instead of a lost update.
func (r *GormDeliveryOrderRepository) Update(
	ctx context.Context,
	aggregate *deliveryorder.DeliveryOrder,
	observedStage deliveryorder.Stage,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryOrderDTO{}).
		Where("id = ? AND current_stage = ?", dto.ID, observedStage.String()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStorageConflictError(aggregate.Number().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery order by ID.
func (r *GormDeliveryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryorder.DeliveryOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves a delivery order by its business number.
func (r *GormDeliveryOrderRepository) GetByNumber(
	ctx context.Context,
	number deliveryorder.Number,
) (*deliveryorder.DeliveryOrder, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "do_number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryOrder", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// NextSequence returns the next free sequence for the given year by counting
// the numbers already issued for that year. The count runs inside the caller's
// transaction; if two allocations race, the loser fails on the unique number
// index rather than both succeeding.
func (r *GormDeliveryOrderRepository) NextSequence(ctx context.Context, year int) (int, error) {
	var count int64
	pattern := fmt.Sprintf("DO-%04d-%%", year)
	if err := r.db.WithContext(ctx).Model(&DeliveryOrderDTO{}).
		Where("do_number LIKE ?", pattern).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count) + 1, nil
}
