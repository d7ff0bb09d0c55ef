package services

import (
	"fmt"
	"strings"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/mission"
	"dronedelivery/internal/pkg/errs"
)

// VisibilityPolicy selects the mission read rule.
type VisibilityPolicy string

const (
	// VisibilityLegacy: pilots see their own missions, every other requester sees all missions.
	VisibilityLegacy VisibilityPolicy = "legacy"
	// VisibilityScoped: a requester sees missions they fly or whose order they own.
	VisibilityScoped VisibilityPolicy = "scoped"
)

// ParseVisibilityPolicy defaults to legacy on empty input.
func ParseVisibilityPolicy(s string) (VisibilityPolicy, error) {
	switch p := VisibilityPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return VisibilityLegacy, nil
	case VisibilityLegacy, VisibilityScoped:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("mission visibility", fmt.Errorf("%q is not one of legacy, scoped", s))
	}
}

// MissionVisibility applies a VisibilityPolicy uniformly to lists and single reads.
type MissionVisibility struct {
	policy VisibilityPolicy
}

func NewMissionVisibility(policy VisibilityPolicy) MissionVisibility {
	if policy == "" {
		policy = VisibilityLegacy
	}
	return MissionVisibility{policy: policy}
}

func (v MissionVisibility) Policy() VisibilityPolicy {
	if v.policy == "" {
		return VisibilityLegacy
	}
	return v.policy
}

// CanSee reports whether requester may read m. orderOwnerID is the customer
// who owns the mission's order.
func (v MissionVisibility) CanSee(requester identity.Requester, m *mission.Mission, orderOwnerID kernel.UUID) bool {
	if m.IsAssignedTo(requester.ID) {
		return true
	}
	switch v.Policy() {
	case VisibilityScoped:
		return orderOwnerID.IsEqual(requester.ID)
	default:
		return !requester.IsPilot()
	}
}

// Authorize is CanSee returning a Forbidden error.
func (v MissionVisibility) Authorize(requester identity.Requester, m *mission.Mission, orderOwnerID kernel.UUID) error {
	if !v.CanSee(requester, m, orderOwnerID) {
		return errs.NewForbiddenError("read mission " + m.ID().String())
	}
	return nil
}
