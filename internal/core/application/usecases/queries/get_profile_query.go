package queries

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

type GetProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProfileQuery(userID kernel.UUID) (GetProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProfileQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	return GetProfileQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

func (q GetProfileQuery) UserID() kernel.UUID {
	return q.userID
}

type GetProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle never exposes a callsign stored for a non-customer.
func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ProfileResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			email,
			role,
			vessel_callsign
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return ProfileResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProfileResponse{}, err
		}
		return ProfileResponse{}, errs.NewObjectNotFoundError("user", query.UserID().String())
	}

	var (
		resp     ProfileResponse
		id       uuid.UUID
		role     string
		callsign *string
	)
	if err = rows.Scan(&id, &resp.Username, &resp.Email, &role, &callsign); err != nil {
		return ProfileResponse{}, err
	}

	if resp.ID, err = toUUID(id); err != nil {
		return ProfileResponse{}, err
	}
	if resp.Role, err = identity.ParseRole(role); err != nil {
		return ProfileResponse{}, err
	}
	if resp.Role == identity.RoleCustomer && callsign != nil && *callsign != "" {
		resp.VesselCallsign = callsign
	}

	return resp, nil
}
