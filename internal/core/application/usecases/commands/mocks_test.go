package commands_test

import (
	"context"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/catalog"
	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/mission"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*identity.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Taken(ctx context.Context, username, email string) (bool, bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) Lock(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) (int, error) {
	args := m.Called(ctx, id, quantity)
	return args.Int(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetOldestPending(ctx context.Context, customerID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, customerID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) AddItemQuantity(
	ctx context.Context, o *order.Order, productID kernel.UUID, quantity int,
) error {
	args := m.Called(ctx, o, productID, quantity)
	return args.Error(0)
}

func (m *MockOrderRepository) CompleteIfPending(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) DeletePending(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockMissionRepository struct{ mock.Mock }

func (m *MockMissionRepository) Add(ctx context.Context, ms *mission.Mission) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MockMissionRepository) Update(ctx context.Context, ms *mission.Mission) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MockMissionRepository) Get(ctx context.Context, id kernel.UUID) (*mission.Mission, error) {
	args := m.Called(ctx, id)
	ms, _ := args.Get(0).(*mission.Mission)
	return ms, args.Error(1)
}

func (m *MockMissionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*mission.Mission, error) {
	args := m.Called(ctx, id)
	ms, _ := args.Get(0).(*mission.Mission)
	return ms, args.Error(1)
}

func (m *MockMissionRepository) UpdateDestination(ctx context.Context, ms *mission.Mission) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MockMissionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMissionRepository) GetAllTrackable(ctx context.Context) ([]ports.TrackedMission, error) {
	args := m.Called(ctx)
	tracked, _ := args.Get(0).([]ports.TrackedMission)
	return tracked, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MissionRepository() ports.MissionRepository {
	args := m.Called()
	return args.Get(0).(ports.MissionRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) PlaceOrder(ctx context.Context, s ports.OrderSubmission) (ports.Confirmation, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(ports.Confirmation), args.Error(1)
}

type MockPositionProvider struct{ mock.Mock }

func (m *MockPositionProvider) Position(ctx context.Context, vesselID string) (kernel.Position, error) {
	args := m.Called(ctx, vesselID)
	return args.Get(0).(kernel.Position), args.Error(1)
}

func customer() identity.Requester {
	return identity.Requester{ID: kernel.NewUUID(), Role: identity.RoleCustomer}
}

func pilot() identity.Requester {
	return identity.Requester{ID: kernel.NewUUID(), Role: identity.RolePilot}
}

func newProduct(stock int) *catalog.Product {
	p, err := catalog.NewProduct(kernel.NewUUID(), "Rope", "", decimal.RequireFromString("9.99"), stock)
	if err != nil {
		panic(err)
	}
	return p
}
