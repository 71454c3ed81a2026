// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: it hands out
// repositories bound to the same database transaction, tracks the aggregates
// they touch, and publishes the status change events of committed orders.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gorm.io/gorm"

	"partsflow/internal/adapters/out/postgres/ledgerrepo"
	"partsflow/internal/adapters/out/postgres/orderrepo"
	"partsflow/internal/adapters/out/postgres/rotationrepo"
	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/core/ports"
)

// trackedAggregate is an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
}

// NewGormUnitOfWorkFactory creates a unit of work factory. The publisher
// receives order status change events after successful commits; pass nil to
// disable publication.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, publisher: publisher}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
	}
}

// GormUnitOfWork coordinates a database transaction and tracks aggregate
// changes. Repositories obtained from it run inside the transaction once
// Begin has been called.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.EventPublisher

	trackedAggregates []trackedAggregate
}

// Begin starts the database transaction. Calling Begin again on an instance
// with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes the status change
// events recorded by committed order aggregates. Publication is best-effort
// and cannot fail the commit.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	uow.publishEvents(ctx)
	return nil
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is open, which callers using defer uow.Rollback(ctx) after a
// successful commit are expected to ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// LedgerRepository returns a refund ledger repository bound to the current
// transaction.
func (uow *GormUnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewGormLedgerRepository(uow.conn(), uow)
}

// RotationRepository returns an agent rotation repository bound to the
// current transaction.
func (uow *GormUnitOfWork) RotationRepository() ports.RotationRepository {
	return rotationrepo.NewGormRotationRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Called by the repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishEvents(ctx context.Context) {
	if uow.publisher == nil {
		return
	}

	for _, tracked := range uow.trackedAggregates {
		aggregate, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		for _, event := range aggregate.Events() {
			_ = uow.publisher.PublishStatusChanged(ctx, event)
		}
		aggregate.ClearEvents()
	}
	uow.trackedAggregates = nil
}
