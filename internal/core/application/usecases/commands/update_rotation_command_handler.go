package commands

import (
	"context"
	"errors"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/rotation"
	"partsflow/internal/pkg/errs"
)

// UpdateRotationCommandHandler adds or removes agents in the rotation.
// The rotation aggregate is created on the first add.
type UpdateRotationCommandHandler struct {
	uowFactory RotationUoWFactory
}

// NewUpdateRotationCommandHandler creates a handler for rotation pool changes.
func NewUpdateRotationCommandHandler(uowFactory RotationUoWFactory) UpdateRotationCommandHandler {
	return UpdateRotationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rotation mutation command.
func (h UpdateRotationCommandHandler) Handle(ctx context.Context, cmd UpdateRotationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rotationRepo := uow.RotationRepository()
	agentRotation, err := rotationRepo.Get(ctx)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if cmd.Action() == RotationRemove {
			return err
		}
		agentRotation, err = rotation.NewAgentRotation(kernel.NewUUID(), nil)
		if err != nil {
			return err
		}
		if err = agentRotation.AddAgent(cmd.AgentID()); err != nil {
			return err
		}
		if err = rotationRepo.Add(ctx, agentRotation); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if cmd.Action() == RotationAdd {
			err = agentRotation.AddAgent(cmd.AgentID())
		} else {
			err = agentRotation.RemoveAgent(cmd.AgentID())
		}
		if err != nil {
			return err
		}
		if err = rotationRepo.Update(ctx, agentRotation); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
