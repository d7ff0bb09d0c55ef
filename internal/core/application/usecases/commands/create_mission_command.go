package commands

import (
	"errors"
	"strings"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/mission"
	"dronedelivery/internal/pkg/guard"
)

// CreateMissionCommand assigns the requesting pilot to an order.
// An empty status defaults to mission.DefaultStatus.
type CreateMissionCommand struct { //nolint:recvcheck //using for validation
	requester identity.Requester
	orderID   kernel.UUID
	status    string

	guard guard.ConstructorGuard
}

var ErrCreateMissionCommandIsNotConstructed = errors.New(
	"CreateMissionCommand must be created via NewCreateMissionCommand constructor",
)

func NewCreateMissionCommand(requester identity.Requester, orderID kernel.UUID, status string) (CreateMissionCommand, error) {
	if err := errors.Join(requester.Validate(), orderID.Validate()); err != nil {
		return CreateMissionCommand{}, err
	}

	if strings.TrimSpace(status) == "" {
		status = mission.DefaultStatus
	}

	return CreateMissionCommand{
		requester: requester,
		orderID:   orderID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMissionCommand) Validate() error {
	return c.guard.Validate(ErrCreateMissionCommandIsNotConstructed)
}

func (c CreateMissionCommand) Requester() identity.Requester {
	return c.requester
}

func (c CreateMissionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateMissionCommand) Status() string {
	return c.status
}
