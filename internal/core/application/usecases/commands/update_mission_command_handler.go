package commands

import (
	"context"

	"dronedelivery/internal/core/domain/services"
)

type UpdateMissionCommandHandler struct {
	uowFactory UoWFactory
	access     services.AccessPolicy
}

func NewUpdateMissionCommandHandler(uowFactory UoWFactory) UpdateMissionCommandHandler {
	return UpdateMissionCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessPolicy(),
	}
}

// Handle stores the new status. Reaching the completed status stamps the
// completion time once. The mission row stays locked from read to write.
func (h *UpdateMissionCommandHandler) Handle(ctx context.Context, cmd UpdateMissionCommand) error {
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

	if err = h.access.RequireAssignedPilot(cmd.Requester(), aggregate, "update"); err != nil {
		return err
	}

	if err = aggregate.UpdateStatus(cmd.Status()); err != nil {
		return err
	}

	if err = missionRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
