package http

import (
	"net/http"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	statusItemAdded      = "item added to cart"
	statusOrderCompleted = "order completed"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	Signup        commands.SignupCommandHandler
	AddToCart     commands.AddToCartCommandHandler
	CreateOrder   commands.CreateOrderCommandHandler
	Checkout      commands.CheckoutCommandHandler
	CreateMission commands.CreateMissionCommandHandler
	UpdateMission commands.UpdateMissionCommandHandler
	DeleteOrder   commands.DeleteOrderCommandHandler
	DeleteMission commands.DeleteMissionCommandHandler

	GetProfile   queries.GetProfileQueryHandler
	ListProducts queries.ListProductsQueryHandler
	GetProduct   queries.GetProductQueryHandler
	ListOrders   queries.ListOrdersQueryHandler
	GetOrder     queries.GetOrderQueryHandler
	ListMissions queries.ListMissionsQueryHandler
	GetMission   queries.GetMissionQueryHandler
}

// Server implements servers.ServerInterface on top of the use cases.
// Errors are returned to echo and rendered by ErrorHandler.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// Signup handles POST /api/v1/signup.
func (s *Server) Signup(ctx echo.Context) error {
	var body servers.SignupRequest
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSignupCommand(body.Username, body.Email, body.Password, body.Role, deref(body.VesselCallsign))
	if err != nil {
		return err
	}

	id, err := s.h.Signup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResponse{Id: id.Bytes()})
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetProfileQuery(requester.ID)
	if err != nil {
		return err
	}
	profile, err := s.h.GetProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Profile{
		Username:       profile.Username,
		Email:          profile.Email,
		Role:           profile.Role.String(),
		VesselCallsign: profile.VesselCallsign,
	})
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.h.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = toProduct(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productId uuid.UUID) error {
	id, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return err
	}
	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return err
	}

	product, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toProduct(product))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(requester)
	if err != nil {
		return err
	}
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders and answers with the stored order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductId[:])
		if idErr != nil {
			return idErr
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(requester, lines)
	if err != nil {
		return err
	}
	orderID, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusCreated, orderID)
}

// AddToCart handles POST /api/v1/orders/cart.
func (s *Server) AddToCart(ctx echo.Context) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CartItem
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	productID, err := kernel.UUIDFromBytes(body.ProductId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddToCartCommand(requester, productID, body.Quantity)
	if err != nil {
		return err
	}
	if _, err = s.h.AddToCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.StatusResponse{Status: statusItemAdded})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId uuid.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusOK, id)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId uuid.UUID) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(requester, id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckoutOrder handles POST /api/v1/orders/{orderId}/checkout.
func (s *Server) CheckoutOrder(ctx echo.Context, orderId uuid.UUID) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewCheckoutCommand(requester, id)
	if err != nil {
		return err
	}
	if err = s.h.Checkout.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.StatusResponse{Status: statusOrderCompleted})
}

// ListMissions handles GET /api/v1/missions.
func (s *Server) ListMissions(ctx echo.Context) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListMissionsQuery(requester)
	if err != nil {
		return err
	}
	missions, err := s.h.ListMissions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Mission, len(missions))
	for i, m := range missions {
		response[i] = toMission(m)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMission handles POST /api/v1/missions.
func (s *Server) CreateMission(ctx echo.Context) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.NewMission
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	orderID, err := kernel.UUIDFromBytes(body.OrderId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateMissionCommand(requester, orderID, deref(body.MissionStatus))
	if err != nil {
		return err
	}
	missionID, err := s.h.CreateMission.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return s.respondMission(ctx, http.StatusCreated, missionID)
}

// GetMission handles GET /api/v1/missions/{missionId}.
func (s *Server) GetMission(ctx echo.Context, missionId uuid.UUID) error {
	id, err := kernel.UUIDFromBytes(missionId[:])
	if err != nil {
		return err
	}
	return s.respondMission(ctx, http.StatusOK, id)
}

// UpdateMission handles PATCH /api/v1/missions/{missionId}.
func (s *Server) UpdateMission(ctx echo.Context, missionId uuid.UUID) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromBytes(missionId[:])
	if err != nil {
		return err
	}

	var body servers.MissionUpdate
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateMissionCommand(requester, id, body.MissionStatus)
	if err != nil {
		return err
	}
	if err = s.h.UpdateMission.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondMission(ctx, http.StatusOK, id)
}

// DeleteMission handles DELETE /api/v1/missions/{missionId}.
func (s *Server) DeleteMission(ctx echo.Context, missionId uuid.UUID) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromBytes(missionId[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteMissionCommand(requester, id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteMission.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(requester, orderID)
	if err != nil {
		return err
	}
	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toOrder(o))
}

func (s *Server) respondMission(ctx echo.Context, status int, missionID kernel.UUID) error {
	requester, err := requesterFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetMissionQuery(requester, missionID)
	if err != nil {
		return err
	}
	m, err := s.h.GetMission.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toMission(m))
}
