package commands_test

import (
	"errors"
	"testing"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/catalog"
	"dronedelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand_NameRequired(t *testing.T) {
	_, err := commands.NewCreateProductCommand(" ", "", decimal.NewFromInt(1), 1)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand("Life jacket", "Adult size", decimal.RequireFromString("49.90"), 12)
	require.NoError(t, err)

	var stored *catalog.Product
	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*catalog.Product")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*catalog.Product) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, id.IsEqual(stored.ID()))
	assert.Equal(t, "Life jacket", stored.Name())
	assert.Equal(t, 12, stored.Stock())
	assert.True(t, decimal.RequireFromString("49.90").Equal(stored.Price()))
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_InvalidValues(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand("Rope", "", decimal.NewFromInt(-1), -3)
	require.NoError(t, err)

	factory := new(MockProductUoWFactory)
	h := commands.NewCreateProductCommandHandler(factory)

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateProductCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand("Rope", "", decimal.NewFromInt(3), 1)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
