package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/mission"
	"dronedelivery/internal/core/domain/services"
)

// CreateMissionCommandHandler stores a mission flown by the requester. The
// order must exist; its status and owner are not checked.
type CreateMissionCommandHandler struct {
	uowFactory UoWFactory
	access     services.AccessPolicy
}

func NewCreateMissionCommandHandler(uowFactory UoWFactory) CreateMissionCommandHandler {
	return CreateMissionCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessPolicy(),
	}
}

func (h *CreateMissionCommandHandler) Handle(ctx context.Context, cmd CreateMissionCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	requester := cmd.Requester()
	if err := h.access.RequirePilot(requester, "create mission"); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := mission.NewMission(kernel.NewUUID(), cmd.OrderID(), requester.ID, cmd.Status())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.MissionRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
