package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dronedelivery/cmd"
	httpin "dronedelivery/internal/adapters/in/http"
	"dronedelivery/internal/adapters/out/storage"
	"dronedelivery/internal/adapters/out/storage/storagetest"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/generated/servers"
	"dronedelivery/internal/pkg/errs"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	jwtSecret      = "test-secret"
	strongPassword = "Str0ng!Pass"
)

type user struct {
	id    uuid.UUID
	token string
}

type HTTPTestSuite struct {
	suite.Suite
	db   *gorm.DB
	root cmd.CompositionRoot
	e    *echo.Echo
}

func (s *HTTPTestSuite) SetupTest() {
	s.db = storagetest.NewSQLite(s.T())
	s.build("legacy")
}

func (s *HTTPTestSuite) build(visibility string) {
	cfg := cmd.Config{
		HTTPPort:          "8080",
		DBDriver:          storage.DriverSQLite,
		JWTSecret:         jwtSecret,
		MissionVisibility: visibility,
		LogLevel:          "error",
	}
	s.root = cmd.NewCompositionRoot(cfg, s.db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e, err := s.root.CreateRouter()
	s.Require().NoError(err)
	s.e = e
}

func token(id uuid.UUID, role string) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  id.String(),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(jwtSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

func (s *HTTPTestSuite) do(method, path, bearer string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](s *HTTPTestSuite, rec *httptest.ResponseRecorder) T {
	var v T
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *HTTPTestSuite) signup(username, role string, callsign *string) user {
	rec := s.do(http.MethodPost, "/api/v1/signup", "", servers.SignupRequest{
		Username:       username,
		Email:          username + "@example.com",
		Password:       strongPassword,
		Role:           role,
		VesselCallsign: callsign,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[servers.CreatedResponse](s, rec)
	return user{id: created.Id, token: token(created.Id, role)}
}

func (s *HTTPTestSuite) product(name string, stock int) uuid.UUID {
	create, err := commands.NewCreateProductCommand(name, "", decimal.RequireFromString("12.5"), stock)
	s.Require().NoError(err)

	handler := s.root.CreateCreateProductCommandHandler()
	id, err := handler.Handle(s.T().Context(), create)
	s.Require().NoError(err)
	return id.Bytes()
}

func (s *HTTPTestSuite) errorBody(rec *httptest.ResponseRecorder, status int) servers.Error {
	s.Require().Equal(status, rec.Code, rec.Body.String())
	body := decode[servers.Error](s, rec)
	s.Equal(status, body.Code)
	s.NotEmpty(body.Message)
	return body
}

func (s *HTTPTestSuite) TestHealthAndSwagger() {
	rec := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())

	rec = s.do(http.MethodGet, "/swagger/doc.json", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"openapi"`)
}

func (s *HTTPTestSuite) TestUnknownRoute() {
	s.errorBody(s.do(http.MethodGet, "/api/v1/unknown", "", nil), http.StatusNotFound)
}

func (s *HTTPTestSuite) TestSignup() {
	callsign := "MV-OCEAN"
	customer := s.signup("alice", "customer", &callsign)

	rec := s.do(http.MethodGet, "/api/v1/profile", customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	profile := decode[servers.Profile](s, rec)
	s.Equal("alice", profile.Username)
	s.Equal("alice@example.com", profile.Email)
	s.Equal("customer", profile.Role)
	s.Require().NotNil(profile.VesselCallsign)
	s.Equal(callsign, *profile.VesselCallsign)

	pilot := s.signup("bob", "pilot", &callsign)
	rec = s.do(http.MethodGet, "/api/v1/profile", pilot.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Nil(decode[servers.Profile](s, rec).VesselCallsign)
}

func (s *HTTPTestSuite) TestSignup_Errors() {
	s.signup("alice", "customer", nil)

	duplicate := servers.SignupRequest{Username: "alice", Email: "other@example.com", Password: strongPassword, Role: "customer"}
	s.errorBody(s.do(http.MethodPost, "/api/v1/signup", "", duplicate), http.StatusConflict)

	weak := servers.SignupRequest{Username: "carol", Email: "carol@example.com", Password: "password", Role: "customer"}
	s.errorBody(s.do(http.MethodPost, "/api/v1/signup", "", weak), http.StatusBadRequest)

	badEmail := servers.SignupRequest{Username: "carol", Email: "not-an-email", Password: strongPassword, Role: "customer"}
	s.errorBody(s.do(http.MethodPost, "/api/v1/signup", "", badEmail), http.StatusBadRequest)

	badRole := servers.SignupRequest{Username: "carol", Email: "carol@example.com", Password: strongPassword, Role: "admin"}
	s.errorBody(s.do(http.MethodPost, "/api/v1/signup", "", badRole), http.StatusBadRequest)

	missing := map[string]string{"username": "carol", "password": strongPassword, "role": "customer"}
	s.errorBody(s.do(http.MethodPost, "/api/v1/signup", "", missing), http.StatusBadRequest)
}

func (s *HTTPTestSuite) TestAuthentication() {
	s.errorBody(s.do(http.MethodGet, "/api/v1/orders", "", nil), http.StatusUnauthorized)
	s.errorBody(s.do(http.MethodGet, "/api/v1/orders", "garbage", nil), http.StatusUnauthorized)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": uuid.NewString(), "role": "customer"})
	signed, err := forged.SignedString([]byte("other-secret"))
	s.Require().NoError(err)
	s.errorBody(s.do(http.MethodGet, "/api/v1/orders", signed, nil), http.StatusUnauthorized)

	s.errorBody(s.do(http.MethodGet, "/api/v1/orders", token(uuid.New(), "admin"), nil), http.StatusUnauthorized)

	s.errorBody(s.do(http.MethodGet, "/api/v1/profile", token(uuid.New(), "customer"), nil), http.StatusNotFound)
}

func (s *HTTPTestSuite) TestProducts() {
	s.product("Zebra", 1)
	apple := s.product("Apple", 3)

	rec := s.do(http.MethodGet, "/api/v1/products", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	products := decode[[]servers.Product](s, rec)
	s.Require().Len(products, 2)
	s.Equal("Apple", products[0].Name)
	s.Equal("12.50", products[0].Price)

	rec = s.do(http.MethodGet, "/api/v1/products/"+apple.String(), "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(3, decode[servers.Product](s, rec).Stock)

	s.errorBody(s.do(http.MethodGet, "/api/v1/products/"+uuid.NewString(), "", nil), http.StatusNotFound)
	s.errorBody(s.do(http.MethodGet, "/api/v1/products/not-a-uuid", "", nil), http.StatusBadRequest)
}

func (s *HTTPTestSuite) TestCartAndCheckout() {
	customer := s.signup("alice", "customer", nil)
	productID := s.product("Water", 10)

	for range 2 {
		rec := s.do(http.MethodPost, "/api/v1/orders/cart", customer.token, servers.CartItem{ProductId: productID, Quantity: 1})
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Equal("item added to cart", decode[servers.StatusResponse](s, rec).Status)
	}

	rec := s.do(http.MethodGet, "/api/v1/orders", customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	orders := decode[[]servers.Order](s, rec)
	s.Require().Len(orders, 1)
	cart := orders[0]
	s.Equal("pending", cart.Status)
	s.Require().Len(cart.Items, 1)
	s.Equal(2, cart.Items[0].Quantity)
	s.Equal(productID, cart.Items[0].Product.Id)

	rec = s.do(http.MethodPost, "/api/v1/orders/"+cart.Id.String()+"/checkout", customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("order completed", decode[servers.StatusResponse](s, rec).Status)

	s.errorBody(s.do(http.MethodPost, "/api/v1/orders/"+cart.Id.String()+"/checkout", customer.token, nil), http.StatusConflict)

	rec = s.do(http.MethodGet, "/api/v1/products/"+productID.String(), "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(8, decode[servers.Product](s, rec).Stock)

	rec = s.do(http.MethodGet, "/api/v1/orders/"+cart.Id.String(), customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("completed", decode[servers.Order](s, rec).Status)

	// A completed cart is never reused.
	rec = s.do(http.MethodPost, "/api/v1/orders/cart", customer.token, servers.CartItem{ProductId: productID, Quantity: 1})
	s.Require().Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodGet, "/api/v1/orders", customer.token, nil)
	s.Len(decode[[]servers.Order](s, rec), 2)
}

func (s *HTTPTestSuite) TestCart_Errors() {
	customer := s.signup("alice", "customer", nil)
	pilot := s.signup("bob", "pilot", nil)
	productID := s.product("Water", 10)

	s.errorBody(s.do(http.MethodPost, "/api/v1/orders/cart", pilot.token,
		servers.CartItem{ProductId: productID, Quantity: 1}), http.StatusForbidden)
	s.errorBody(s.do(http.MethodPost, "/api/v1/orders/cart", customer.token,
		servers.CartItem{ProductId: productID, Quantity: 0}), http.StatusBadRequest)
	s.errorBody(s.do(http.MethodPost, "/api/v1/orders/cart", customer.token,
		servers.CartItem{ProductId: uuid.New(), Quantity: 1}), http.StatusNotFound)
}

func (s *HTTPTestSuite) TestCreateOrder() {
	customer := s.signup("alice", "customer", nil)
	other := s.signup("carol", "customer", nil)
	a := s.product("A", 5)
	b := s.product("B", 5)

	rec := s.do(http.MethodPost, "/api/v1/orders", customer.token, servers.NewOrder{Items: []servers.NewOrderItem{
		{ProductId: a, Quantity: 1},
		{ProductId: b, Quantity: 2},
		{ProductId: a, Quantity: 3},
	}})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[servers.Order](s, rec)
	s.Equal("pending", created.Status)
	s.Equal(customer.id, created.CustomerId)

	quantities := map[uuid.UUID]int{}
	for _, item := range created.Items {
		quantities[item.Product.Id] = item.Quantity
	}
	s.Equal(map[uuid.UUID]int{a: 4, b: 2}, quantities)

	s.errorBody(s.do(http.MethodGet, "/api/v1/orders/"+created.Id.String(), other.token, nil), http.StatusForbidden)
	s.errorBody(s.do(http.MethodPost, "/api/v1/orders/"+created.Id.String()+"/checkout", other.token, nil), http.StatusForbidden)
	s.errorBody(s.do(http.MethodGet, "/api/v1/orders/"+uuid.NewString(), customer.token, nil), http.StatusNotFound)
	s.errorBody(s.do(http.MethodPost, "/api/v1/orders/"+uuid.NewString()+"/checkout", customer.token, nil), http.StatusNotFound)

	s.errorBody(s.do(http.MethodPost, "/api/v1/orders", customer.token, servers.NewOrder{Items: []servers.NewOrderItem{
		{ProductId: uuid.New(), Quantity: 1},
	}}), http.StatusNotFound)
}

func (s *HTTPTestSuite) orderFor(customer user) uuid.UUID {
	rec := s.do(http.MethodPost, "/api/v1/orders", customer.token, servers.NewOrder{Items: []servers.NewOrderItem{}})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.Order](s, rec).Id
}

func (s *HTTPTestSuite) createMission(pilot user, orderID uuid.UUID) servers.Mission {
	rec := s.do(http.MethodPost, "/api/v1/missions", pilot.token, servers.NewMission{OrderId: orderID})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.Mission](s, rec)
}

func (s *HTTPTestSuite) missionIDs(requester user) []uuid.UUID {
	rec := s.do(http.MethodGet, "/api/v1/missions", requester.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var ids []uuid.UUID
	for _, m := range decode[[]servers.Mission](s, rec) {
		ids = append(ids, m.Id)
	}
	return ids
}

func (s *HTTPTestSuite) TestMissions_LegacyVisibility() {
	owner := s.signup("alice", "customer", nil)
	stranger := s.signup("carol", "customer", nil)
	pilotA := s.signup("bob", "pilot", nil)
	pilotB := s.signup("dave", "pilot", nil)

	m := s.createMission(pilotA, s.orderFor(owner))
	s.Equal("Pending", m.MissionStatus)
	s.Equal(pilotA.id, m.PilotId)
	s.Nil(m.CompletedAt)

	s.Equal([]uuid.UUID{m.Id}, s.missionIDs(pilotA))
	s.Empty(s.missionIDs(pilotB))
	s.Equal([]uuid.UUID{m.Id}, s.missionIDs(owner))
	s.Equal([]uuid.UUID{m.Id}, s.missionIDs(stranger))

	s.errorBody(s.do(http.MethodGet, "/api/v1/missions/"+m.Id.String(), pilotB.token, nil), http.StatusForbidden)
	rec := s.do(http.MethodGet, "/api/v1/missions/"+m.Id.String(), stranger.token, nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HTTPTestSuite) TestMissions_ScopedVisibility() {
	s.build("scoped")
	owner := s.signup("alice", "customer", nil)
	stranger := s.signup("carol", "customer", nil)
	pilot := s.signup("bob", "pilot", nil)

	m := s.createMission(pilot, s.orderFor(owner))

	s.Equal([]uuid.UUID{m.Id}, s.missionIDs(owner))
	s.Empty(s.missionIDs(stranger))
	s.errorBody(s.do(http.MethodGet, "/api/v1/missions/"+m.Id.String(), stranger.token, nil), http.StatusForbidden)
}

func (s *HTTPTestSuite) TestMissions_CreateErrors() {
	customer := s.signup("alice", "customer", nil)
	pilot := s.signup("bob", "pilot", nil)
	orderID := s.orderFor(customer)

	s.errorBody(s.do(http.MethodPost, "/api/v1/missions", customer.token, servers.NewMission{OrderId: orderID}), http.StatusForbidden)
	s.errorBody(s.do(http.MethodPost, "/api/v1/missions", pilot.token, servers.NewMission{OrderId: uuid.New()}), http.StatusNotFound)
	s.errorBody(s.do(http.MethodGet, "/api/v1/missions/"+uuid.NewString(), pilot.token, nil), http.StatusNotFound)
}

func (s *HTTPTestSuite) TestMissions_Update() {
	customer := s.signup("alice", "customer", nil)
	pilot := s.signup("bob", "pilot", nil)
	other := s.signup("dave", "pilot", nil)
	m := s.createMission(pilot, s.orderFor(customer))
	path := "/api/v1/missions/" + m.Id.String()

	s.errorBody(s.do(http.MethodPatch, path, other.token, servers.MissionUpdate{MissionStatus: "Completed"}), http.StatusForbidden)
	s.errorBody(s.do(http.MethodPatch, path, pilot.token, servers.MissionUpdate{MissionStatus: ""}), http.StatusBadRequest)

	rec := s.do(http.MethodPatch, path, pilot.token, servers.MissionUpdate{MissionStatus: "In Flight"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Nil(decode[servers.Mission](s, rec).CompletedAt)

	rec = s.do(http.MethodPatch, path, pilot.token, servers.MissionUpdate{MissionStatus: "completed"})
	s.Require().Equal(http.StatusOK, rec.Code)
	completed := decode[servers.Mission](s, rec)
	s.Require().NotNil(completed.CompletedAt)

	rec = s.do(http.MethodPatch, path, pilot.token, servers.MissionUpdate{MissionStatus: "Pending"})
	s.Require().Equal(http.StatusOK, rec.Code)
	reverted := decode[servers.Mission](s, rec)
	s.Equal("Pending", reverted.MissionStatus)
	s.Require().NotNil(reverted.CompletedAt)
	s.True(completed.CompletedAt.Equal(*reverted.CompletedAt))
}

func (s *HTTPTestSuite) TestOrders_Delete() {
	customer := s.signup("alice", "customer", nil)
	other := s.signup("carol", "customer", nil)
	pilot := s.signup("bob", "pilot", nil)
	productID := s.product("Water", 10)

	rec := s.do(http.MethodPost, "/api/v1/orders/cart", customer.token, servers.CartItem{ProductId: productID, Quantity: 3})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	rec = s.do(http.MethodGet, "/api/v1/orders", customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	cart := decode[[]servers.Order](s, rec)[0]
	m := s.createMission(pilot, cart.Id)
	path := "/api/v1/orders/" + cart.Id.String()

	s.errorBody(s.do(http.MethodDelete, path, "", nil), http.StatusUnauthorized)
	s.errorBody(s.do(http.MethodDelete, path, other.token, nil), http.StatusForbidden)
	s.errorBody(s.do(http.MethodDelete, path, pilot.token, nil), http.StatusForbidden)
	s.errorBody(s.do(http.MethodDelete, "/api/v1/orders/"+uuid.NewString(), customer.token, nil), http.StatusNotFound)

	rec = s.do(http.MethodDelete, path, customer.token, nil)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	s.Empty(rec.Body.String())

	s.errorBody(s.do(http.MethodGet, path, customer.token, nil), http.StatusNotFound)
	s.errorBody(s.do(http.MethodGet, "/api/v1/missions/"+m.Id.String(), pilot.token, nil), http.StatusNotFound)
	s.Empty(s.missionIDs(pilot))

	rec = s.do(http.MethodGet, "/api/v1/products/"+productID.String(), "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(10, decode[servers.Product](s, rec).Stock)
}

func (s *HTTPTestSuite) TestOrders_DeleteCompletedConflicts() {
	customer := s.signup("alice", "customer", nil)
	orderID := s.orderFor(customer)
	path := "/api/v1/orders/" + orderID.String()

	rec := s.do(http.MethodPost, path+"/checkout", customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	s.errorBody(s.do(http.MethodDelete, path, customer.token, nil), http.StatusConflict)

	rec = s.do(http.MethodGet, path, customer.token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("completed", decode[servers.Order](s, rec).Status)
}

func (s *HTTPTestSuite) TestMissions_Delete() {
	customer := s.signup("alice", "customer", nil)
	pilot := s.signup("bob", "pilot", nil)
	other := s.signup("dave", "pilot", nil)
	orderID := s.orderFor(customer)
	m := s.createMission(pilot, orderID)
	path := "/api/v1/missions/" + m.Id.String()

	s.errorBody(s.do(http.MethodDelete, path, other.token, nil), http.StatusForbidden)
	s.errorBody(s.do(http.MethodDelete, path, customer.token, nil), http.StatusForbidden)

	rec := s.do(http.MethodDelete, path, pilot.token, nil)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	s.errorBody(s.do(http.MethodGet, path, pilot.token, nil), http.StatusNotFound)
	s.errorBody(s.do(http.MethodDelete, path, pilot.token, nil), http.StatusNotFound)

	rec = s.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), customer.token, nil)
	s.Equal(http.StatusOK, rec.Code)
}

func TestHTTPTestSuite(t *testing.T) {
	suite.Run(t, new(HTTPTestSuite))
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"joined validation", errors.Join(errs.NewValueIsInvalidError("email"), errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100)), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("order", uuid.New()), http.StatusNotFound},
		{"forbidden", errs.NewForbiddenError("checkout"), http.StatusForbidden},
		{"conflict", errs.NewConflictError("order", "is already completed"), http.StatusConflict},
		{"wrapped conflict", fmt.Errorf("checkout: %w", errs.NewConflictError("order", "lost race")), http.StatusConflict},
		{"unauthorized", fmt.Errorf("%w: expired", httpin.ErrUnauthorized), http.StatusUnauthorized},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed},
		{"unknown", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpin.StatusCode(tt.err))
		})
	}
}

func TestTokenVerifier_FromHeader(t *testing.T) {
	verifier := httpin.NewTokenVerifier(jwtSecret)
	id := uuid.New()

	requester, err := verifier.FromHeader("Bearer " + token(id, "Pilot"))
	require.NoError(t, err)
	assert.True(t, requester.IsPilot())
	assert.Equal(t, id, requester.ID.Bytes())

	_, err = verifier.FromHeader("Basic abc")
	require.ErrorIs(t, err, httpin.ErrUnauthorized)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  id.String(),
		"role": "pilot",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	_, err = verifier.Verify(signed)
	require.ErrorIs(t, err, httpin.ErrUnauthorized)

	_, err = httpin.NewTokenVerifier("").Verify(token(id, "pilot"))
	require.ErrorIs(t, err, httpin.ErrUnauthorized)
}
