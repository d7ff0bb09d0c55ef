package cmd

import (
	"log/slog"

	httpin "dronedelivery/internal/adapters/in/http"
	"dronedelivery/internal/adapters/out/external"
	"dronedelivery/internal/adapters/out/storage"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *storage.GormUnitOfWorkFactory
	gateway    ports.OrderGateway
	positions  ports.PositionProvider
	visibility services.MissionVisibility
	logger     *slog.Logger
}

type Option func(*CompositionRoot)

// WithOrderGateway replaces the sequential stub gateway.
func WithOrderGateway(gateway ports.OrderGateway) Option {
	return func(c *CompositionRoot) { c.gateway = gateway }
}

// WithPositionProvider replaces the fixed stub position provider.
func WithPositionProvider(provider ports.PositionProvider) Option {
	return func(c *CompositionRoot) { c.positions = provider }
}

// NewCompositionRoot expects a validated Config.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger, opts ...Option) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	policy, _ := services.ParseVisibilityPolicy(cfg.MissionVisibility)

	c := CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: storage.NewGormUnitOfWorkFactory(gormDB),
		gateway:    external.NewSequentialOrderGateway(external.WithRejection(cfg.GatewayReject)),
		positions:  external.NewFixedPositionProvider(nil),
		visibility: services.NewMissionVisibility(policy),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSignupCommandHandler() commands.SignupCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignupCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.uow(), c.gateway, c.logger)
}

func (c *CompositionRoot) CreateCreateMissionCommandHandler() commands.CreateMissionCommandHandler {
	return commands.NewCreateMissionCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateUpdateMissionCommandHandler() commands.UpdateMissionCommandHandler {
	return commands.NewUpdateMissionCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDeleteMissionCommandHandler() commands.DeleteMissionCommandHandler {
	return commands.NewDeleteMissionCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateRefreshVesselPositionsCommandHandler() commands.RefreshVesselPositionsCommandHandler {
	return commands.NewRefreshVesselPositionsCommandHandler(c.uow(), c.positions, c.logger)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMissionsQueryHandler() queries.ListMissionsQueryHandler {
	return queries.NewListMissionsQueryHandler(c.gormDB, c.visibility)
}

func (c *CompositionRoot) CreateGetMissionQueryHandler() queries.GetMissionQueryHandler {
	return queries.NewGetMissionQueryHandler(c.gormDB, c.visibility)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		Signup:        c.CreateSignupCommandHandler(),
		AddToCart:     c.CreateAddToCartCommandHandler(),
		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		Checkout:      c.CreateCheckoutCommandHandler(),
		CreateMission: c.CreateCreateMissionCommandHandler(),
		UpdateMission: c.CreateUpdateMissionCommandHandler(),
		DeleteOrder:   c.CreateDeleteOrderCommandHandler(),
		DeleteMission: c.CreateDeleteMissionCommandHandler(),
		GetProfile:    c.CreateGetProfileQueryHandler(),
		ListProducts:  c.CreateListProductsQueryHandler(),
		GetProduct:    c.CreateGetProductQueryHandler(),
		ListOrders:    c.CreateListOrdersQueryHandler(),
		GetOrder:      c.CreateGetOrderQueryHandler(),
		ListMissions:  c.CreateListMissionsQueryHandler(),
		GetMission:    c.CreateGetMissionQueryHandler(),
	})
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(httpin.RouterConfig{
		Server:    c.CreateHTTPServer(),
		JWTSecret: c.cfg.JWTSecret,
		Logger:    c.logger,
	})
}

// CreateJobManager schedules vessel tracking unless its schedule is empty.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var scheduled []jobs.Job
	if c.cfg.VesselTrackingSchedule != "" {
		handler := c.CreateRefreshVesselPositionsCommandHandler()
		scheduled = append(scheduled, jobs.NewVesselTrackingJob(c.cfg.VesselTrackingSchedule, &handler, c.logger))
	}
	return jobs.NewJobManager(c.logger, scheduled...)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
