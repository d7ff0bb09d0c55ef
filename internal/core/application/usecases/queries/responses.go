package queries

import (
	"time"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// OrderItemResponse embeds the ordered product.
type OrderItemResponse struct {
	ID       kernel.UUID
	Product  ProductResponse
	Quantity int
}

type OrderResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     string
	Items      []OrderItemResponse
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type DestinationResponse struct {
	Latitude   float64
	Longitude  float64
	ObservedAt time.Time
}

type MissionResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	PilotID     kernel.UUID
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
	Destination *DestinationResponse
}

// ProfileResponse carries VesselCallsign only for customers who registered one.
type ProfileResponse struct {
	ID             kernel.UUID
	Username       string
	Email          string
	Role           identity.Role
	VesselCallsign *string
}
