package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
)

// OrderSubmissionLine is one product forwarded to the fulfilment partner.
type OrderSubmissionLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// OrderSubmission is a completed order forwarded after checkout.
type OrderSubmission struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	Lines      []OrderSubmissionLine
}

// Confirmation is the partner's acknowledgement of a submission.
type Confirmation struct {
	Number string
}

// OrderGateway places completed orders with the external fulfilment partner.
type OrderGateway interface {
	PlaceOrder(ctx context.Context, submission OrderSubmission) (Confirmation, error)
}
