package commands_test

import (
	"testing"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/mission"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.DeleteOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrDeleteOrderCommandIsNotConstructed)
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	owner := customer()
	cart := pendingOrder(t, owner, map[kernel.UUID]int{kernel.NewUUID(): 1})
	cmd, err := commands.NewDeleteOrderCommand(owner, cart.ID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, cart.ID()).Return(cart, nil).Once(),
		orders.On("DeletePending", ctx, cart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)

	require.NoError(t, h.Handle(ctx, cmd))
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_Rejected(t *testing.T) {
	ctx := t.Context()
	owner := customer()

	completed := pendingOrder(t, owner, nil)
	require.NoError(t, completed.Checkout())

	tests := []struct {
		name   string
		cmd    func() commands.DeleteOrderCommand
		target error
	}{
		{
			name: "completed order",
			cmd: func() commands.DeleteOrderCommand {
				cmd, _ := commands.NewDeleteOrderCommand(owner, completed.ID())
				return cmd
			},
			target: errs.ErrConflict,
		},
		{
			name: "someone else's order",
			cmd: func() commands.DeleteOrderCommand {
				cmd, _ := commands.NewDeleteOrderCommand(customer(), completed.ID())
				return cmd
			},
			target: errs.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(MockOrderRepository)
			orders.On("GetForUpdate", ctx, completed.ID()).Return(completed, nil)

			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil)
			uow.On("OrderRepository").Return(orders)
			uow.On("Rollback", ctx).Return(nil)

			factory := new(MockUoWFactory)
			factory.On("Create").Return(uow)

			h := commands.NewDeleteOrderCommandHandler(factory)

			require.ErrorIs(t, h.Handle(ctx, tt.cmd()), tt.target)
			orders.AssertNotCalled(t, "DeletePending", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestDeleteMissionCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	requester := pilot()
	m, err := mission.NewMission(kernel.NewUUID(), kernel.NewUUID(), requester.ID, "")
	require.NoError(t, err)

	missions := new(MockMissionRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missions).Once(),
		missions.On("GetForUpdate", ctx, m.ID()).Return(m, nil).Once(),
		missions.On("Delete", ctx, m.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewDeleteMissionCommand(requester, m.ID())
	require.NoError(t, err)

	h := commands.NewDeleteMissionCommandHandler(factory)

	require.NoError(t, h.Handle(ctx, cmd))
	missions.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteMissionCommandHandler_Handle_OtherPilotForbidden(t *testing.T) {
	ctx := t.Context()
	m, err := mission.NewMission(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	missions := new(MockMissionRepository)
	missions.On("GetForUpdate", ctx, m.ID()).Return(m, nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("MissionRepository").Return(missions)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewDeleteMissionCommand(pilot(), m.ID())
	require.NoError(t, err)

	h := commands.NewDeleteMissionCommandHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	missions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteMissionCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.DeleteMissionCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrDeleteMissionCommandIsNotConstructed)
}
