package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dronedelivery/internal/core/domain/model/mission"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"
)

// RefreshVesselPositionsCommandHandler asks the PositionProvider for every
// trackable mission. Vessels the provider does not know are skipped; any
// other provider error aborts the run without storing anything.
//
// The provider is called outside any transaction. Positions are then stored
// in one short transaction, and missions completed in the meantime are left
// untouched.
type RefreshVesselPositionsCommandHandler struct {
	uowFactory UoWFactory
	provider   ports.PositionProvider
	logger     *slog.Logger
	now        func() time.Time
}

func NewRefreshVesselPositionsCommandHandler(
	uowFactory UoWFactory,
	provider ports.PositionProvider,
	logger *slog.Logger,
) RefreshVesselPositionsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return RefreshVesselPositionsCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		logger:     logger.With("component", "vessel_tracking"),
		now:        time.Now,
	}
}

// Handle returns the number of missions whose destination was updated.
func (h *RefreshVesselPositionsCommandHandler) Handle(ctx context.Context, cmd RefreshVesselPositionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()

	tracked, err := uow.MissionRepository().GetAllTrackable(ctx)
	if err != nil {
		return 0, err
	}

	located, err := h.locate(ctx, tracked)
	if err != nil {
		return 0, err
	}
	if len(located) == 0 {
		return 0, nil
	}

	return h.store(ctx, uow, located)
}

// locate moves every mission whose vessel the provider knows to the
// reported position.
func (h *RefreshVesselPositionsCommandHandler) locate(
	ctx context.Context,
	tracked []ports.TrackedMission,
) ([]*mission.Mission, error) {
	located := make([]*mission.Mission, 0, len(tracked))
	for _, t := range tracked {
		position, err := h.provider.Position(ctx, t.VesselCallsign)
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.DebugContext(ctx, "vessel is not tracked",
				"mission_id", t.Mission.ID().String(),
				"vessel", t.VesselCallsign,
			)
			continue
		}
		if err != nil {
			return nil, err
		}

		if err = t.Mission.TrackDestination(position, h.now()); err != nil {
			return nil, err
		}
		located = append(located, t.Mission)
	}

	return located, nil
}

func (h *RefreshVesselPositionsCommandHandler) store(ctx context.Context, uow UoW, located []*mission.Mission) (int, error) {
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	missionRepo := uow.MissionRepository()

	updated := 0
	for _, m := range located {
		err := missionRepo.UpdateDestination(ctx, m)
		if errors.Is(err, errs.ErrConflict) {
			h.logger.DebugContext(ctx, "mission closed while locating vessel",
				"mission_id", m.ID().String(),
			)
			continue
		}
		if err != nil {
			return 0, err
		}
		updated++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
