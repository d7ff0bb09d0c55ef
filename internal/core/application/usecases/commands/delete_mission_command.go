package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

// DeleteMissionCommand removes a mission. Only the assigned pilot may run it.
type DeleteMissionCommand struct { //nolint:recvcheck //using for validation
	requester identity.Requester
	missionID kernel.UUID

	guard guard.ConstructorGuard
}

var ErrDeleteMissionCommandIsNotConstructed = errors.New(
	"DeleteMissionCommand must be created via NewDeleteMissionCommand constructor",
)

func NewDeleteMissionCommand(requester identity.Requester, missionID kernel.UUID) (DeleteMissionCommand, error) {
	if err := errors.Join(requester.Validate(), missionID.Validate()); err != nil {
		return DeleteMissionCommand{}, err
	}

	return DeleteMissionCommand{
		requester: requester,
		missionID: missionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMissionCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMissionCommandIsNotConstructed)
}

func (c DeleteMissionCommand) Requester() identity.Requester {
	return c.requester
}

func (c DeleteMissionCommand) MissionID() kernel.UUID {
	return c.missionID
}
