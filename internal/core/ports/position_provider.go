package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
)

// PositionProvider reports the current position of a vessel by callsign.
// Unknown vessels yield an ObjectNotFoundError.
type PositionProvider interface {
	Position(ctx context.Context, vesselID string) (kernel.Position, error)
}
