package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
	"partsflow/internal/pkg/errs"
)

// isUniqueViolation reports whether the error is a postgres unique constraint
// violation. The connection is opened through lib/pq, so driver errors
// surface as *pq.Error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("order", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The write is guarded by a
// compare-and-swap on the order's version; a stale aggregate fails with a
// ConflictError so the caller can reload and retry.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", fmt.Sprintf(
			"%s was modified concurrently, loaded version %d is stale",
			aggregate.ID(), loadedVersion))
	}

	if err := r.saveVendors(ctx, dto); err != nil {
		return err
	}
	if err := r.saveNotes(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// saveVendors upserts the order's vendor quote rows. Quotes are never removed
// from an order, so no delete pass is needed.
func (r *GormOrderRepository) saveVendors(ctx context.Context, dto OrderDTO) error {
	if len(dto.Vendors) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto.Vendors).Error
}

// saveNotes rewrites the order's note rows. Notes are append-only in the
// domain; replacing the set wholesale keeps the persistence simple without
// tracking which rows are new.
func (r *GormOrderRepository) saveNotes(ctx context.Context, dto OrderDTO) error {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&NoteDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Notes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&dto.Notes).Error
}

// Get retrieves an order by ID with its vendor quotes and notes.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Vendors", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return r.getAll(ctx, "status = ?", int(status))
}

// GetAllUnassigned retrieves all orders with no agent assigned.
func (r *GormOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	return r.getAll(ctx, "agent_id IS NULL")
}

func (r *GormOrderRepository) getAll(ctx context.Context, cond string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Vendors", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		Order("created_at").
		Find(&dtos, append([]any{cond}, args...)...).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
