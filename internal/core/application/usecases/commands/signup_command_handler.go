package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
)

// SignupCommandHandler creates users. Duplicate usernames and emails are
// rejected by a pre-check and, for concurrent signups, by unique indexes.
type SignupCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewSignupCommandHandler(uowFactory UserUoWFactory) SignupCommandHandler {
	return SignupCommandHandler{uowFactory: uowFactory}
}

// Handle returns the id of the new user. No credentials are issued.
func (h *SignupCommandHandler) Handle(ctx context.Context, cmd SignupCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	ident, err := identity.NewIdentity(cmd.Role(), cmd.VesselCallsign())
	if err != nil {
		return kernel.UUID{}, err
	}

	user, err := identity.NewUser(kernel.NewUUID(), cmd.Username(), cmd.Email(), cmd.Password(), ident)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	usernameTaken, emailTaken, err := userRepo.Taken(ctx, user.Username(), user.Email())
	if err != nil {
		return kernel.UUID{}, err
	}
	if usernameTaken {
		return kernel.UUID{}, errs.NewConflictError("username", "already exists")
	}
	if emailTaken {
		return kernel.UUID{}, errs.NewConflictError("email", "already exists")
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return user.ID(), nil
}
