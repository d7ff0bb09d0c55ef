package external

import (
	"context"
	"strings"
	"sync"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"
)

var _ ports.PositionProvider = (*FixedPositionProvider)(nil)

// FixedPositionProvider answers from a static table keyed by vessel callsign.
// Callsigns are matched case-insensitively.
type FixedPositionProvider struct {
	mu        sync.RWMutex
	positions map[string]kernel.Position
}

func NewFixedPositionProvider(positions map[string]kernel.Position) *FixedPositionProvider {
	p := &FixedPositionProvider{positions: make(map[string]kernel.Position, len(positions))}
	for vessel, position := range positions {
		p.positions[normalizeVessel(vessel)] = position
	}
	return p
}

// Set registers or moves a vessel.
func (p *FixedPositionProvider) Set(vesselID string, position kernel.Position) error {
	if err := position.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.positions[normalizeVessel(vesselID)] = position

	return nil
}

func (p *FixedPositionProvider) Position(ctx context.Context, vesselID string) (kernel.Position, error) {
	if err := ctx.Err(); err != nil {
		return kernel.Position{}, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	position, ok := p.positions[normalizeVessel(vesselID)]
	if !ok {
		return kernel.Position{}, errs.NewObjectNotFoundError("vessel", vesselID)
	}

	return position, nil
}

func normalizeVessel(vesselID string) string {
	return strings.ToUpper(strings.TrimSpace(vesselID))
}
