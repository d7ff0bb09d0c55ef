package commands_test

import (
	"errors"
	"testing"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/mission"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func openMission(t *testing.T) *mission.Mission {
	t.Helper()
	m, err := mission.NewMission(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "")
	require.NoError(t, err)
	return m
}

func TestRefreshVesselPositionsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	known, unknown, closed := openMission(t), openMission(t), openMission(t)
	position, err := kernel.NewPosition(47.6062, -122.3321)
	require.NoError(t, err)

	missions := new(MockMissionRepository)
	provider := new(MockPositionProvider)
	uow := new(MockUoW)
	uow.On("MissionRepository").Return(missions)
	mock.InOrder(
		missions.On("GetAllTrackable", ctx).Return([]ports.TrackedMission{
			{Mission: known, VesselCallsign: "SEA-1"},
			{Mission: unknown, VesselCallsign: "GHOST"},
			{Mission: closed, VesselCallsign: "SEA-2"},
		}, nil).Once(),
		provider.On("Position", ctx, "SEA-1").Return(position, nil).Once(),
		provider.On("Position", ctx, "GHOST").
			Return(kernel.Position{}, errs.NewObjectNotFoundError("vessel", "GHOST")).Once(),
		provider.On("Position", ctx, "SEA-2").Return(position, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		missions.On("UpdateDestination", ctx, known).Return(nil).Once(),
		missions.On("UpdateDestination", ctx, closed).
			Return(errs.NewConflictError("mission", "is completed or deleted")).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshVesselPositionsCommandHandler(factory, provider, nil)
	updated, err := h.Handle(ctx, commands.NewRefreshVesselPositionsCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	require.NotNil(t, known.Destination())
	assert.InDelta(t, 47.6062, known.Destination().Position.Latitude(), 1e-9)
	assert.Nil(t, unknown.Destination())
	missions.AssertExpectations(t)
	missions.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	provider.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRefreshVesselPositionsCommandHandler_Handle_NothingLocated(t *testing.T) {
	ctx := t.Context()
	m := openMission(t)

	missions := new(MockMissionRepository)
	missions.On("GetAllTrackable", ctx).Return([]ports.TrackedMission{{Mission: m, VesselCallsign: "GHOST"}}, nil)

	provider := new(MockPositionProvider)
	provider.On("Position", ctx, "GHOST").Return(kernel.Position{}, errs.NewObjectNotFoundError("vessel", "GHOST"))

	uow := new(MockUoW)
	uow.On("MissionRepository").Return(missions)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRefreshVesselPositionsCommandHandler(factory, provider, nil)
	updated, err := h.Handle(ctx, commands.NewRefreshVesselPositionsCommand())

	require.NoError(t, err)
	assert.Zero(t, updated)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestRefreshVesselPositionsCommandHandler_Handle_ProviderError(t *testing.T) {
	ctx := t.Context()
	m := openMission(t)

	missions := new(MockMissionRepository)
	missions.On("GetAllTrackable", ctx).Return([]ports.TrackedMission{{Mission: m, VesselCallsign: "SEA-1"}}, nil)

	provider := new(MockPositionProvider)
	provider.On("Position", ctx, "SEA-1").Return(kernel.Position{}, errors.New("timeout"))

	uow := new(MockUoW)
	uow.On("MissionRepository").Return(missions)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRefreshVesselPositionsCommandHandler(factory, provider, nil)
	_, err := h.Handle(ctx, commands.NewRefreshVesselPositionsCommand())

	require.EqualError(t, err, "timeout")
	missions.AssertNotCalled(t, "UpdateDestination", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRefreshVesselPositionsCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.RefreshVesselPositionsCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrRefreshVesselPositionsCommandIsNotConstructed)
}
