package rotationrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/rotation"
	"partsflow/internal/pkg/errs"
)

// GormRotationRepository implements RotationRepository using GORM.
type GormRotationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRotationRepository creates a new GORM rotation repository.
func NewGormRotationRepository(db *gorm.DB, tracker aggregateTracker) *GormRotationRepository {
	return &GormRotationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rotation to the database.
func (r *GormRotationRepository) Add(ctx context.Context, aggregate *rotation.AgentRotation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the rotation. Guarded by a compare-and-swap on the version,
// like order updates, so concurrent assignment runs cannot both advance the
// cursor from the same starting point.
func (r *GormRotationRepository) Update(ctx context.Context, aggregate *rotation.AgentRotation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version

	result := r.db.WithContext(ctx).Model(&AgentRotationDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Updates(map[string]any{
			"cursor":  dto.Cursor,
			"version": loadedVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("rotation", fmt.Sprintf(
			"%s was modified concurrently, loaded version %d is stale",
			aggregate.ID(), loadedVersion))
	}

	// The pool is small; rewrite it wholesale rather than diffing positions.
	if err := r.db.WithContext(ctx).
		Where("rotation_id = ?", dto.ID).
		Delete(&RotationAgentDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Agents) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Agents).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves the rotation aggregate. The system keeps exactly one.
func (r *GormRotationRepository) Get(ctx context.Context) (*rotation.AgentRotation, error) {
	var dto AgentRotationDTO
	err := r.db.WithContext(ctx).
		Preload("Agents", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rotation", "singleton")
		}
		return nil, err
	}

	return toDomain(dto)
}
