package commands

import (
	"context"

	"dronedelivery/internal/core/domain/services"
)

type DeleteMissionCommandHandler struct {
	uowFactory UoWFactory
	access     services.AccessPolicy
}

func NewDeleteMissionCommandHandler(uowFactory UoWFactory) DeleteMissionCommandHandler {
	return DeleteMissionCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessPolicy(),
	}
}

func (h *DeleteMissionCommandHandler) Handle(ctx context.Context, cmd DeleteMissionCommand) error {
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

	missionRepo := uow.MissionRepository()

	aggregate, err := missionRepo.GetForUpdate(ctx, cmd.MissionID())
	if err != nil {
		return err
	}

	if err = h.access.RequireAssignedPilot(cmd.Requester(), aggregate, "delete"); err != nil {
		return err
	}

	if err = missionRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
