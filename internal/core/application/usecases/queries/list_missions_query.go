package queries

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListMissionsQueryIsNotConstructed = errors.New(
	"ListMissionsQuery must be created via NewListMissionsQuery constructor",
)

type ListMissionsQuery struct {
	requester identity.Requester

	guard guard.ConstructorGuard
}

func NewListMissionsQuery(requester identity.Requester) (ListMissionsQuery, error) {
	if err := requester.Validate(); err != nil {
		return ListMissionsQuery{}, err
	}
	return ListMissionsQuery{requester: requester, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMissionsQuery) Validate() error {
	return q.guard.Validate(ErrListMissionsQueryIsNotConstructed)
}

func (q ListMissionsQuery) Requester() identity.Requester {
	return q.requester
}

// ListMissionsQueryHandler translates the mission visibility policy into a
// WHERE clause.
//
//	legacy: pilots see missions they fly, every other requester sees all
//	scoped: a requester sees missions they fly or whose order they own
type ListMissionsQueryHandler struct {
	db         *gorm.DB
	visibility services.MissionVisibility
}

func NewListMissionsQueryHandler(db *gorm.DB, visibility services.MissionVisibility) ListMissionsQueryHandler {
	return ListMissionsQueryHandler{db: db, visibility: visibility}
}

// Handle returns the visible missions, newest first.
func (h ListMissionsQueryHandler) Handle(ctx context.Context, query ListMissionsQuery) ([]MissionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requester := query.Requester()
	requesterID := requester.ID.Bytes()

	stmt := "SELECT" + missionColumns + missionsFrom
	var args []any
	switch {
	case h.visibility.Policy() == services.VisibilityScoped:
		stmt += " WHERE m.pilot_id = ? OR o.customer_id = ?"
		args = append(args, requesterID, requesterID)
	case requester.IsPilot():
		stmt += " WHERE m.pilot_id = ?"
		args = append(args, requesterID)
	}
	stmt += " ORDER BY m.created_at DESC, m.id"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	missions := make([]MissionResponse, 0)
	for rows.Next() {
		resp, _, scanErr := scanMission(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		missions = append(missions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return missions, nil
}
