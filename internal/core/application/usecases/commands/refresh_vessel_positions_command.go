package commands

import (
	"errors"

	"dronedelivery/internal/pkg/guard"
)

// RefreshVesselPositionsCommand stores the latest vessel position on every
// open mission whose customer registered a vessel. It is run by the vessel
// tracking job.
type RefreshVesselPositionsCommand struct {
	guard guard.ConstructorGuard
}

var ErrRefreshVesselPositionsCommandIsNotConstructed = errors.New(
	"RefreshVesselPositionsCommand must be created via NewRefreshVesselPositionsCommand constructor",
)

func NewRefreshVesselPositionsCommand() RefreshVesselPositionsCommand {
	return RefreshVesselPositionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *RefreshVesselPositionsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshVesselPositionsCommandIsNotConstructed)
}
