package services

import (
	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/mission"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

// AccessPolicy holds the role and ownership checks shared by the use cases.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

func (AccessPolicy) RequireCustomer(requester identity.Requester, action string) error {
	if !requester.IsCustomer() {
		return errs.NewForbiddenError(action + " requires the customer role")
	}
	return nil
}

func (AccessPolicy) RequirePilot(requester identity.Requester, action string) error {
	if !requester.IsPilot() {
		return errs.NewForbiddenError(action + " requires the pilot role")
	}
	return nil
}

// RequireOrderOwner rejects everyone but the customer who placed o.
func (AccessPolicy) RequireOrderOwner(requester identity.Requester, o *order.Order, action string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.IsOwnedBy(requester.ID) {
		return errs.NewForbiddenError(action + " order " + o.ID().String())
	}
	return nil
}

// RequireAssignedPilot rejects everyone but the pilot flying m.
func (AccessPolicy) RequireAssignedPilot(requester identity.Requester, m *mission.Mission, action string) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !requester.IsPilot() || !m.IsAssignedTo(requester.ID) {
		return errs.NewForbiddenError(action + " mission " + m.ID().String())
	}
	return nil
}
