package external

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"
)

// ErrOrderRejected is returned by a gateway configured to reject.
var ErrOrderRejected = errors.New("order rejected by partner")

var _ ports.OrderGateway = (*SequentialOrderGateway)(nil)

// SequentialOrderGateway confirms orders with numbers WM0001, WM0002, ...
// in call order.
type SequentialOrderGateway struct {
	mu     sync.Mutex
	next   int
	reject bool
}

type OrderGatewayOption func(*SequentialOrderGateway)

// WithRejection makes every PlaceOrder call fail with ErrOrderRejected.
func WithRejection(reject bool) OrderGatewayOption {
	return func(g *SequentialOrderGateway) {
		g.reject = reject
	}
}

func NewSequentialOrderGateway(opts ...OrderGatewayOption) *SequentialOrderGateway {
	g := &SequentialOrderGateway{next: 1}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *SequentialOrderGateway) PlaceOrder(ctx context.Context, submission ports.OrderSubmission) (ports.Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return ports.Confirmation{}, err
	}
	if err := submission.OrderID.Validate(); err != nil {
		return ports.Confirmation{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if g.reject {
		return ports.Confirmation{}, ErrOrderRejected
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	number := fmt.Sprintf("WM%04d", g.next)
	g.next++

	return ports.Confirmation{Number: number}, nil
}
