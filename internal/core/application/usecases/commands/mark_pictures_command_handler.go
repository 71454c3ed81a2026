package commands

import (
	"context"

	"partsflow/internal/core/domain/model/order"
)

// MarkPicturesCommandHandler sets the monotonic picture exchange flags.
type MarkPicturesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkPicturesCommandHandler creates a handler for picture progress updates.
func NewMarkPicturesCommandHandler(uowFactory OrderUoWFactory) MarkPicturesCommandHandler {
	return MarkPicturesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the picture progress command.
func (h MarkPicturesCommandHandler) Handle(ctx context.Context, cmd MarkPicturesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		if cmd.Stage() == PicturesReceived {
			return aggregate.MarkPicturesReceived()
		}
		return aggregate.MarkPicturesSent()
	})
}
