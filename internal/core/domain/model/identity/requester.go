package identity

import (
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
)

// Requester is the authenticated caller of an operation. It is passed
// explicitly to every use case.
type Requester struct {
	ID   kernel.UUID
	Role Role
}

func NewRequester(id kernel.UUID, role Role) (Requester, error) {
	if err := id.Validate(); err != nil {
		return Requester{}, errs.NewValueIsRequiredErrorWithCause("requester", err)
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Requester{}, err
	}
	return Requester{ID: id, Role: role}, nil
}

func (r Requester) Validate() error {
	_, err := NewRequester(r.ID, r.Role)
	return err
}

func (r Requester) IsCustomer() bool {
	return r.Role == RoleCustomer
}

func (r Requester) IsPilot() bool {
	return r.Role == RolePilot
}
