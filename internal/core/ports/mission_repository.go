package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/mission"
)

// TrackedMission is an open mission whose order's customer registered a vessel.
type TrackedMission struct {
	Mission        *mission.Mission
	VesselCallsign string
}

type MissionRepository interface {
	Add(ctx context.Context, aggregate *mission.Mission) error
	Update(ctx context.Context, aggregate *mission.Mission) error
	Get(ctx context.Context, id kernel.UUID) (*mission.Mission, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// GetForUpdate is Get with the mission row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*mission.Mission, error)

	// UpdateDestination stores only the tracked destination, and only while
	// the stored mission has no completion time. A ConflictError is returned
	// otherwise.
	UpdateDestination(ctx context.Context, aggregate *mission.Mission) error

	// GetAllTrackable returns missions without a completion time whose
	// customer has a vessel callsign.
	GetAllTrackable(ctx context.Context) ([]TrackedMission, error)
}
