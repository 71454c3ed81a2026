package commands

import (
	"context"
	"errors"

	"partsflow/internal/core/domain/services"
	"partsflow/internal/pkg/errs"
)

// ErrNoRotationConfigured is returned when the lead sweep runs before any
// agent rotation was created.
var ErrNoRotationConfigured = errors.New("no agent rotation configured")

// AssignLeadsCommandHandler distributes unassigned orders across sales agents
// in round-robin order. Orders and the rotation cursor commit in a single
// transaction so a retry after a crash never skips or double-books an agent.
//
// Example:
//
//	handler := NewAssignLeadsCommandHandler(uowFactory)
//	err := handler.Handle(ctx, NewAssignLeadsCommand())
//	switch {
//	case errors.Is(err, ErrNoRotationConfigured):
//	    log.Println("No rotation set up yet")
//	case err != nil:
//	    log.Printf("Lead assignment failed: %v", err)
//	}
type AssignLeadsCommandHandler struct {
	uowFactory OrderRotationUoWFactory
}

// NewAssignLeadsCommandHandler creates a handler for lead assignment sweeps.
func NewAssignLeadsCommandHandler(uowFactory OrderRotationUoWFactory) AssignLeadsCommandHandler {
	return AssignLeadsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lead assignment sweep.
// An empty rotation pool makes the sweep a no-op rather than an error: orders
// simply stay unassigned until agents join.
func (h AssignLeadsCommandHandler) Handle(ctx context.Context, cmd AssignLeadsCommand) error {
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
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoRotationConfigured
	}
	if err != nil {
		return err
	}
	if len(agentRotation.Agents()) == 0 {
		return nil
	}

	orderRepo := uow.OrderRepository()
	unassigned, err := orderRepo.GetAllUnassigned(ctx)
	if err != nil {
		return err
	}
	if len(unassigned) == 0 {
		return nil
	}

	distributor := services.NewLeadDistributor()
	for _, aggregate := range unassigned {
		if _, err = distributor.Distribute(aggregate, agentRotation); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = rotationRepo.Update(ctx, agentRotation); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
