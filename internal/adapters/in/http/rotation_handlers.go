package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"partsflow/internal/core/application/usecases/commands"
	"partsflow/internal/core/domain/model/kernel"
)

// UpdateRotation handles POST /api/v1/rotation/agents - adds an agent to or
// removes one from the round-robin lead rotation.
func (s *Server) UpdateRotation(ctx echo.Context) error {
	var request UpdateRotationRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	agentID, err := kernel.UUIDFromString(request.AgentID)
	if err != nil {
		return respondBadRequest(ctx, "invalid agent id")
	}

	cmd, err := commands.NewUpdateRotationCommand(agentID, commands.RotationAction(request.Action))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err := s.commands.UpdateRotation.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignLeads handles POST /api/v1/rotation/assignments - distributes every
// unassigned order across the rotation in round-robin order.
func (s *Server) AssignLeads(ctx echo.Context) error {
	cmd := commands.NewAssignLeadsCommand()

	if err := s.commands.AssignLeads.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
