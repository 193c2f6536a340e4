package partyrepo

import (
	"context"
	"errors"

	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/domain/model/party"
	"dotrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartyRepository implements PartyRepository using GORM.
type GormPartyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartyRepository creates a new GORM party repository.
func NewGormPartyRepository(db *gorm.DB, tracker aggregateTracker) *GormPartyRepository {
	return &GormPartyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new party to the database. The unique index on the party number
// turns a second insert of the same number into a duplicate error.
func (r *GormPartyRepository) Add(ctx context.Context, aggregate *party.Party) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateNumberErrorWithCause(aggregate.Number(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a party by ID.
func (r *GormPartyRepository) Get(ctx context.Context, id kernel.UUID) (*party.Party, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("party", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all parties ordered by name.
func (r *GormPartyRepository) GetAll(ctx context.Context) ([]*party.Party, error) {
	var dtos []PartyDTO
	if err := r.db.WithContext(ctx).Order("party_name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	parties := make([]*party.Party, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parties = append(parties, p)
	}

	return parties, nil
}
