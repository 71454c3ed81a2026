package commands

import (
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/pkg/guard"
)

var (
	ErrMarkPicturesCommandIsNotConstructed = errors.New(
		"MarkPicturesCommand must be created via NewMarkPicturesCommand constructor",
	)
	ErrPictureStageIsInvalid = errors.New("picture stage must be received or sent")
)

// PictureStage identifies which leg of the picture exchange is being recorded.
type PictureStage string

const (
	// PicturesReceived marks part pictures as received from the yard.
	PicturesReceived PictureStage = "received"

	// PicturesSent marks part pictures as forwarded to the customer.
	PicturesSent PictureStage = "sent"
)

// MarkPicturesCommand represents recording picture exchange progress.
// Both stages are monotonic flags on the order.
type MarkPicturesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	stage   PictureStage

	guard guard.ConstructorGuard
}

// NewMarkPicturesCommand creates a command to record picture exchange progress.
func NewMarkPicturesCommand(orderID kernel.UUID, stage PictureStage) (MarkPicturesCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkPicturesCommand{}, err
	}
	if stage != PicturesReceived && stage != PicturesSent {
		return MarkPicturesCommand{}, ErrPictureStageIsInvalid
	}

	return MarkPicturesCommand{
		orderID: orderID,
		stage:   stage,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPicturesCommand) Validate() error {
	return c.guard.Validate(ErrMarkPicturesCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c MarkPicturesCommand) OrderID() kernel.UUID { return c.orderID }

// Stage returns which picture flag to set.
func (c MarkPicturesCommand) Stage() PictureStage { return c.stage }
