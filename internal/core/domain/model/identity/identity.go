package identity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"dronedelivery/internal/pkg/errs"
)

const MaxVesselCallsignLength = 20

// Identity is the role-specific part of a User. Implementations are Customer
// and Pilot.
type Identity interface {
	Role() Role
	isIdentity()
}

// Customer places orders and may receive deliveries on a vessel.
type Customer struct {
	vesselCallsign string
}

// NewCustomer trims the callsign; an empty callsign means none.
func NewCustomer(vesselCallsign string) (Customer, error) {
	callsign := strings.TrimSpace(vesselCallsign)
	if n := utf8.RuneCountInString(callsign); n > MaxVesselCallsignLength {
		return Customer{}, errs.NewValueIsOutOfRangeError("vesselCallsign length", n, 0, MaxVesselCallsignLength)
	}
	return Customer{vesselCallsign: callsign}, nil
}

func (Customer) Role() Role { return RoleCustomer }

// VesselCallsign returns the callsign and whether one is set.
func (c Customer) VesselCallsign() (string, bool) {
	return c.vesselCallsign, c.vesselCallsign != ""
}

func (Customer) isIdentity() {}

// Pilot flies delivery missions.
type Pilot struct{}

func (Pilot) Role() Role { return RolePilot }

func (Pilot) isIdentity() {}

// NewIdentity builds the variant for role. The callsign is kept for customers
// and dropped for pilots.
func NewIdentity(role Role, vesselCallsign string) (Identity, error) {
	switch role {
	case RoleCustomer:
		return NewCustomer(vesselCallsign)
	case RolePilot:
		return Pilot{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not one of customer, pilot", role))
	}
}
