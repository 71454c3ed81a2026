package ledgerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/ledger"
	"partsflow/internal/pkg/errs"
)

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB, tracker aggregateTracker) *GormLedgerRepository {
	return &GormLedgerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ledger entry to the database.
func (r *GormLedgerRepository) Add(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Update saves changes to an existing ledger entry.
func (r *GormLedgerRepository) Update(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	result := r.db.WithContext(ctx).Model(&EntryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ledger entry", entry.ID().String())
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Get retrieves a ledger entry by ID.
func (r *GormLedgerRepository) Get(ctx context.Context, id kernel.UUID) (*ledger.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ledger entry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves all entries recorded against the given order.
func (r *GormLedgerRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*ledger.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.getAll(ctx, "order_id = ?", orderID.Bytes())
}

// GetAllPending retrieves all entries still awaiting a vendor refund.
func (r *GormLedgerRepository) GetAllPending(ctx context.Context) ([]*ledger.Entry, error) {
	return r.getAll(ctx, "payment_status = ?", int(ledger.RefundPending))
}

func (r *GormLedgerRepository) getAll(ctx context.Context, cond string, args ...any) ([]*ledger.Entry, error) {
	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, append([]any{cond}, args...)...).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*ledger.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
