package identity

import (
	"fmt"

	"dronedelivery/internal/pkg/errs"
)

// Role is the persisted discriminator of an Identity.
type Role string

const (
	RoleCustomer Role = "customer"
	RolePilot    Role = "pilot"
)

// ParseRole accepts only the known roles.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RolePilot:
		return r, nil
	case "":
		return "", errs.NewValueIsRequiredError("role")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not one of customer, pilot", s))
	}
}

func (r Role) String() string {
	return string(r)
}
