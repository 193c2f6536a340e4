// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: the delivery order
// mutation and its workflow history entry commit or roll back together, which
// is what keeps the ledger and the aggregate state consistent.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.DeliveryOrderRepository().Add(ctx, order); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//	if err := uow.HistoryRepository().Append(ctx, entry); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets its own unit of work instance; instances are
// not safe for concurrent use.
package postgres

import (
	"context"

	"dotrack/internal/adapters/out/postgres/dorepo"
	"dotrack/internal/adapters/out/postgres/historyrepo"
	"dotrack/internal/adapters/out/postgres/partyrepo"
	"dotrack/internal/adapters/out/postgres/tokenrepo"
	"dotrack/internal/adapters/out/postgres/userrepo"
	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each Create call returns a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions across the repositories
// and records which aggregates the transaction touched.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Repeated calls on the same instance are safe and do not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns an error if no transaction is active or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns an error if no transaction is active or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction if one exists, the base connection
// otherwise.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// DeliveryOrderRepository provides delivery order persistence bound to the
// current transaction.
func (uow *GormUnitOfWork) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	return dorepo.NewGormDeliveryOrderRepository(uow.conn(), uow)
}

// HistoryRepository provides workflow ledger persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn())
}

// PartyRepository provides party persistence bound to the current transaction.
func (uow *GormUnitOfWork) PartyRepository() ports.PartyRepository {
	return partyrepo.NewGormPartyRepository(uow.conn(), uow)
}

// UserRepository provides user persistence bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// ResetTokenRepository provides reset token persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) ResetTokenRepository() ports.ResetTokenRepository {
	return tokenrepo.NewGormResetTokenRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
