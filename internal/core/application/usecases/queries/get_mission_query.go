package queries

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetMissionQueryIsNotConstructed = errors.New(
	"GetMissionQuery must be created via NewGetMissionQuery constructor",
)

type GetMissionQuery struct {
	requester identity.Requester
	missionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMissionQuery(requester identity.Requester, missionID kernel.UUID) (GetMissionQuery, error) {
	if err := errors.Join(requester.Validate(), missionID.Validate()); err != nil {
		return GetMissionQuery{}, err
	}
	return GetMissionQuery{requester: requester, missionID: missionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMissionQuery) Validate() error {
	return q.guard.Validate(ErrGetMissionQueryIsNotConstructed)
}

func (q GetMissionQuery) Requester() identity.Requester {
	return q.requester
}

func (q GetMissionQuery) MissionID() kernel.UUID {
	return q.missionID
}

// GetMissionQueryHandler applies the same visibility rule as the list, so a
// mission missing from a requester's list is Forbidden here.
type GetMissionQueryHandler struct {
	db         *gorm.DB
	visibility services.MissionVisibility
}

func NewGetMissionQueryHandler(db *gorm.DB, visibility services.MissionVisibility) GetMissionQueryHandler {
	return GetMissionQueryHandler{db: db, visibility: visibility}
}

func (h GetMissionQueryHandler) Handle(ctx context.Context, query GetMissionQuery) (MissionResponse, error) {
	if err := query.Validate(); err != nil {
		return MissionResponse{}, err
	}

	resp, ownerID, err := h.find(ctx, query.MissionID())
	if err != nil {
		return MissionResponse{}, err
	}

	aggregate, err := toMission(resp)
	if err != nil {
		return MissionResponse{}, err
	}

	if err = h.visibility.Authorize(query.Requester(), aggregate, ownerID); err != nil {
		return MissionResponse{}, err
	}

	return resp, nil
}

func (h GetMissionQueryHandler) find(ctx context.Context, missionID kernel.UUID) (MissionResponse, kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT"+missionColumns+missionsFrom+" WHERE m.id = ?",
		missionID.Bytes(),
	).Rows()
	if err != nil {
		return MissionResponse{}, kernel.UUID{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return MissionResponse{}, kernel.UUID{}, err
		}
		return MissionResponse{}, kernel.UUID{}, errs.NewObjectNotFoundError("mission", missionID.String())
	}

	return scanMission(rows)
}
