package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var ErrConfirmRefundCommandIsNotConstructed = errors.New(
	"ConfirmRefundCommand must be created via NewConfirmRefundCommand constructor",
)

// ConfirmRefundCommand represents recording receipt of a vendor refund.
type ConfirmRefundCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmRefundCommand creates a command to mark a refund ledger entry paid.
func NewConfirmRefundCommand(entryID kernel.UUID) (ConfirmRefundCommand, error) {
	if err := entryID.Validate(); err != nil {
		return ConfirmRefundCommand{}, err
	}

	return ConfirmRefundCommand{
		entryID: entryID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmRefundCommand) Validate() error {
	return c.guard.Validate(ErrConfirmRefundCommandIsNotConstructed)
}

// EntryID returns the ledger entry to mark paid.
func (c ConfirmRefundCommand) EntryID() kernel.UUID { return c.entryID }
