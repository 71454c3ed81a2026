// Package ledgerrepo provides data transfer objects and mapping functions for
// refund ledger persistence.
package ledgerrepo

import (
	"time"

	"github.com/google/uuid"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/ledger"
)

// EntryDTO represents the database structure for refund ledger entries.
// Vendor terms are denormalized at cancellation time, so rows stay meaningful
// even after the quote itself is edited or the order moves on.
type EntryDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorID uuid.UUID `gorm:"type:uuid;not null;index"`

	VendorBusinessName string `gorm:"type:varchar(255);not null"`
	AmountCents        int64  `gorm:"not null"`
	CancellationReason string `gorm:"not null"`

	PaymentStatus int `gorm:"index"`

	CreatedAt time.Time
	PaidAt    *time.Time
}

// TableName overrides GORM's default naming to use "ledger_entries".
func (EntryDTO) TableName() string {
	return "ledger_entries"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *ledger.Entry) EntryDTO {
	return EntryDTO{
		ID:                 entry.ID().Bytes(),
		OrderID:            entry.OrderID().Bytes(),
		VendorID:           entry.VendorID().Bytes(),
		VendorBusinessName: entry.VendorBusinessName(),
		AmountCents:        entry.Amount().Cents(),
		CancellationReason: entry.CancellationReason(),
		PaymentStatus:      int(entry.PaymentStatus()),
		CreatedAt:          entry.CreatedAt(),
		PaidAt:             entry.PaidAt(),
	}
}

// toDomain converts a database DTO to a ledger entry using RestoreEntry.
func toDomain(dto EntryDTO) (*ledger.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromCents(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	return ledger.RestoreEntry(
		id, orderID, vendorID,
		dto.VendorBusinessName,
		amount,
		dto.CancellationReason,
		ledger.PaymentStatus(dto.PaymentStatus),
		dto.CreatedAt,
		dto.PaidAt,
	)
}
