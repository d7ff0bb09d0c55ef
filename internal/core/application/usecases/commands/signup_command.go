package commands

import (
	"errors"
	"strings"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var ErrSignupCommandIsNotConstructed = errors.New("SignupCommand must be created via NewSignupCommand constructor")

// SignupCommand registers a new customer or pilot. Field formats and the
// password policy are checked by the identity aggregate in the handler.
type SignupCommand struct { //nolint:recvcheck //using for validation
	username       string
	email          string
	password       string
	role           identity.Role
	vesselCallsign string

	guard guard.ConstructorGuard
}

func NewSignupCommand(username, email, password, role, vesselCallsign string) (SignupCommand, error) {
	cmd := SignupCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		required("username", username),
		required("email", email),
		required("password", password),
		cmd.setRole(role),
	); err != nil {
		return SignupCommand{}, err
	}

	cmd.username = strings.TrimSpace(username)
	cmd.email = strings.TrimSpace(email)
	cmd.password = password
	cmd.vesselCallsign = vesselCallsign

	return cmd, nil
}

func (c SignupCommand) Validate() error {
	return c.guard.Validate(ErrSignupCommandIsNotConstructed)
}

func (c SignupCommand) Username() string {
	return c.username
}

func (c SignupCommand) Email() string {
	return c.email
}

func (c SignupCommand) Password() string {
	return c.password
}

func (c SignupCommand) Role() identity.Role {
	return c.role
}

func (c SignupCommand) VesselCallsign() string {
	return c.vesselCallsign
}

func (c *SignupCommand) setRole(role string) error {
	r, err := identity.ParseRole(strings.TrimSpace(role))
	if err != nil {
		return err
	}
	c.role = r
	return nil
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
