package commands

import (
	"errors"
	"strings"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// UpdateMissionCommand sets a new status on a mission. Only the assigned
// pilot may run it.
type UpdateMissionCommand struct { //nolint:recvcheck //using for validation
	requester identity.Requester
	missionID kernel.UUID
	status    string

	guard guard.ConstructorGuard
}

var ErrUpdateMissionCommandIsNotConstructed = errors.New(
	"UpdateMissionCommand must be created via NewUpdateMissionCommand constructor",
)

func NewUpdateMissionCommand(requester identity.Requester, missionID kernel.UUID, status string) (UpdateMissionCommand, error) {
	var statusErr error
	if strings.TrimSpace(status) == "" {
		statusErr = errs.NewValueIsRequiredError("missionStatus")
	}

	if err := errors.Join(requester.Validate(), missionID.Validate(), statusErr); err != nil {
		return UpdateMissionCommand{}, err
	}

	return UpdateMissionCommand{
		requester: requester,
		missionID: missionID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMissionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMissionCommandIsNotConstructed)
}

func (c UpdateMissionCommand) Requester() identity.Requester {
	return c.requester
}

func (c UpdateMissionCommand) MissionID() kernel.UUID {
	return c.missionID
}

func (c UpdateMissionCommand) Status() string {
	return c.status
}
